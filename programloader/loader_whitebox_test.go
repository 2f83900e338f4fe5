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

package programloader

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

func TestReadWhole(t *testing.T) {
	data, err := readWhole(strings.NewReader("abcd"), "test", 4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(data), "abcd")

	// reader has fewer bytes than expected
	_, err = readWhole(strings.NewReader("ab"), "test", 4)
	test.ExpectSuccess(t, curated.Is(err, ShortRead))
	test.ExpectEquality(t, err.Error(), "programloader: short read of test (2 of 4 bytes)")

	_, err = readWhole(strings.NewReader(""), "test", 4)
	test.ExpectSuccess(t, curated.Is(err, ShortRead))
}
