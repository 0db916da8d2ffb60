// This file is part of GopherChip.
//
// GopherChip is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. Note that the function does not
// test for this.
//
// Used to generate filenames for WAV recordings and state dumps. The
// programName argument is the filename of the loaded program. Any extension
// is removed before it is used.
func UniqueFilename(prepend string, programName string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	p := strings.TrimSpace(filepath.Base(programName))
	p = strings.TrimSuffix(p, filepath.Ext(p))

	if len(p) > 0 && p != "." {
		return fmt.Sprintf("%s_%s_%s", prepend, p, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
