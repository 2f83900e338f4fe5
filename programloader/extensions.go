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
	"path"
	"strings"
)

// FileExtensions is the list of file extensions that are recognised by the
// programloader package. Files with other extensions can still be loaded.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// HasRecognisedExtension returns true if the filename ends with one of the
// extensions in FileExtensions. The comparison is case insensitive.
func HasRecognisedExtension(filename string) bool {
	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
