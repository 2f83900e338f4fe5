// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand"
	"sync"
	"time"
)

// the base seed used when no explicit seed is given
var baseSeed int64

func init() {
	baseSeed = time.Now().UnixNano()
}

// Random is a seeded random number generator. It is safe to use from more
// than one goroutine.
type Random struct {
	crit sync.Mutex
	rng  *rand.Rand
	seed int64

	// use a seed of zero rather than the random base seed when the seed is
	// zero. this is only really useful when random numbers must be
	// predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed int64) *Random {
	rnd := &Random{}
	rnd.Reseed(seed)
	return rnd
}

// Reseed restarts the sequence of numbers with a new seed.
func (rnd *Random) Reseed(seed int64) {
	rnd.crit.Lock()
	defer rnd.crit.Unlock()

	if seed == 0 && !rnd.ZeroSeed {
		seed = baseSeed
	}
	rnd.seed = seed
	rnd.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed in use. A sequence started with a seed of zero can be
// repeated by reseeding with this value.
func (rnd *Random) Seed() int64 {
	rnd.crit.Lock()
	defer rnd.crit.Unlock()
	return rnd.seed
}

// Byte returns a random value in the range 0 to 255 inclusive.
func (rnd *Random) Byte() uint8 {
	rnd.crit.Lock()
	defer rnd.crit.Unlock()
	return uint8(rnd.rng.Intn(256))
}

// Intn returns a random value in the range 0 to n-1 inclusive.
func (rnd *Random) Intn(n int) int {
	rnd.crit.Lock()
	defer rnd.crit.Unlock()
	return rnd.rng.Intn(n)
}
