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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal errors returned by Load().
const (
	FileOpenError     = "programloader: cannot open %s: %v"
	ShortRead         = "programloader: short read of %s (%d of %d bytes)"
	UnexpectedHash    = "programloader: unexpected hash value for %s"
	UnsupportedScheme = "programloader: unsupported URL scheme (%s)"
	ProgramNotLoaded  = "programloader: program has not been loaded"
)

// Loader is used to specify the program image to use when Attach()ing to the
// machine.
type Loader struct {
	// filename of the program to load. can be a local file or an HTTP URL
	Filename string

	// expected hash of the loaded program. an empty string indicates that the
	// hash is unknown and need not be validated. after a successful Load()
	// the field will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

func (pl Loader) String() string {
	return pl.Filename
}

// ShortName returns the filename without the path and without the extension.
func (pl Loader) ShortName() string {
	name := path.Base(pl.Filename)
	return strings.TrimSuffix(name, path.Ext(pl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (pl Loader) HasLoaded() bool {
	return pl.Data != nil
}

// Load the program data. Filenames with an HTTP scheme are fetched over the
// network. All other filenames are treated as local files.
//
// The data is checked against the capacity of memory before it is read.
// Calling Load() after a successful load does nothing.
func (pl *Loader) Load() error {
	if pl.HasLoaded() {
		return nil
	}

	scheme := ""
	if u, err := url.Parse(pl.Filename); err == nil {
		scheme = strings.ToLower(u.Scheme)
	}

	var data []uint8
	var err error

	switch scheme {
	case "http", "https":
		data, err = pl.loadHTTP()
	case "file", "":
		data, err = pl.loadFile()
	default:
		err = curated.Errorf(UnsupportedScheme, scheme)
	}
	if err != nil {
		return err
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if pl.Hash != "" && pl.Hash != hash {
		return curated.Errorf(UnexpectedHash, pl.Filename)
	}

	pl.Hash = hash
	pl.Data = data

	logger.Logf(logger.Allow, "programloader", "%s (%d bytes) [%s]", pl.ShortName(), len(pl.Data), pl.Hash)

	return nil
}

func (pl *Loader) loadFile() ([]uint8, error) {
	filename := strings.TrimPrefix(pl.Filename, "file://")

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(FileOpenError, filename, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, curated.Errorf(FileOpenError, filename, err)
	}
	if fi.IsDir() {
		return nil, curated.Errorf(FileOpenError, filename, "is a directory")
	}

	size := fi.Size()
	if size > int64(memory.ProgramCapacity) {
		return nil, curated.Errorf(memory.ProgramTooLarge, size, memory.ProgramOrigin, memory.ProgramCapacity)
	}

	return readWhole(f, filename, size)
}

// readWhole reads exactly size bytes from r. the file may have been
// truncated since the size was taken so fewer bytes is a ShortRead error
func readWhole(r io.Reader, name string, size int64) ([]uint8, error) {
	data := make([]uint8, size)
	n, err := io.ReadFull(r, data)
	if err != nil {
		return nil, curated.Errorf(ShortRead, name, n, size)
	}
	return data, nil
}

func (pl *Loader) loadHTTP() ([]uint8, error) {
	resp, err := http.Get(pl.Filename)
	if err != nil {
		return nil, curated.Errorf(FileOpenError, pl.Filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, curated.Errorf(FileOpenError, pl.Filename, resp.Status)
	}

	if resp.ContentLength > int64(memory.ProgramCapacity) {
		return nil, curated.Errorf(memory.ProgramTooLarge, resp.ContentLength, memory.ProgramOrigin, memory.ProgramCapacity)
	}

	// read one byte more than the capacity so that oversized data without a
	// content length can be detected
	data, err := io.ReadAll(io.LimitReader(resp.Body, int64(memory.ProgramCapacity)+1))
	if err != nil {
		return nil, curated.Errorf("programloader: %v", err)
	}
	if len(data) > memory.ProgramCapacity {
		return nil, curated.Errorf(memory.ProgramTooLarge, len(data), memory.ProgramOrigin, memory.ProgramCapacity)
	}
	if resp.ContentLength >= 0 && int64(len(data)) < resp.ContentLength {
		return nil, curated.Errorf(ShortRead, pl.Filename, len(data), resp.ContentLength)
	}

	return data, nil
}

// Attach resets the machine and copies the loaded data into memory at the
// program origin.
func (pl Loader) Attach(m *hardware.Machine) error {
	if !pl.HasLoaded() {
		return curated.Errorf(ProgramNotLoaded)
	}
	m.Reset()
	return m.LoadProgram(pl.Data)
}
