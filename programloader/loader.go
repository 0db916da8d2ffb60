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

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/jetsetilly/gopherchip/archivefs"
	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/hardware/platform"
)

// AutoPlatform indicates that the platform should be guessed from the
// filename extension.
const AutoPlatform = "AUTO"

// FileExtensions is the list of file extensions that are recognised.
var FileExtensions = [...]string{".CH8", ".SC8", ".XO8"}

// Loader specifies the program to load.
type Loader struct {
	// filename of program to load. can be a URL
	Filename string

	// name of the platform. one of the names accepted by
	// platform.ParseMode() or AutoPlatform
	Platform string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The platform argument should be an empty string or AutoPlatform if the
// platform is to be guessed from the filename.
func NewLoader(filename string, plt string) Loader {
	ld := Loader{
		Filename: filename,
		Platform: AutoPlatform,
	}

	plt = strings.TrimSpace(strings.ToUpper(plt))
	if plt != AutoPlatform && plt != "" {
		ld.Platform = plt
		return ld
	}

	switch strings.ToUpper(path.Ext(filename)) {
	case ".SC8":
		ld.Platform = "SCHIP"
	case ".XO8":
		ld.Platform = "XOCHIP"
	default:
		ld.Platform = "CHIP8"
	}

	return ld
}

// Mode returns the platform mode for the loader.
func (ld Loader) Mode() (platform.Mode, error) {
	return platform.ParseMode(ld.Platform)
}

// ShortName returns a shortened version of the Filename field. Path and
// extension are removed. Archive extensions are removed first.
func (ld Loader) ShortName() string {
	s := archivefs.TrimArchiveExt(path.Base(ld.Filename))
	return strings.TrimSuffix(s, path.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data. Calling Load() when the data has already been
// loaded does nothing.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	// filenames that can't be parsed as a URL are treated as paths
	var scheme string

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("programloader: %v", resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}

	case "file":
		ld.Data, err = archivefs.ReadFile(u.Path)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}

	case "":
		ld.Data, err = archivefs.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}

	default:
		return curated.Errorf("programloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(ld.Data) == 0 {
		return curated.Errorf("programloader: %v", "empty program")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf("programloader: %v", "unexpected hash value")
	}
	ld.Hash = hash

	return nil
}
