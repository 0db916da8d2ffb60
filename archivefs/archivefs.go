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

// Package archivefs allows files inside zip archives to be opened as though
// the archive was a directory. For example:
//
//	programs/collection.zip/games/pong.ch8
//
// If the path ends at the archive and the archive contains exactly one file
// then that file is opened.
package archivefs

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ArchiveExtensions is the list of file extensions for the supported archive
// types.
var ArchiveExtensions = [...]string{".ZIP"}

// IsArchive returns true if the filename has the extension of a supported
// archive type.
func IsArchive(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range ArchiveExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// TrimArchiveExt removes the file extension of any supported archive type from
// the end of the string.
func TrimArchiveExt(s string) string {
	if IsArchive(s) {
		return strings.TrimSuffix(s, filepath.Ext(s))
	}
	return s
}

// split the filename into the path to an archive and the path inside the
// archive. if the filename does not pass through an archive then the archive
// string is empty.
func split(filename string) (string, string, error) {
	parts := strings.Split(filepath.Clean(filename), string(filepath.Separator))

	// strings.Split() removes a leading separator
	if parts[0] == "" {
		parts[0] = string(filepath.Separator)
	}

	var pth string
	for i, p := range parts {
		pth = filepath.Join(pth, p)

		fi, err := os.Stat(pth)
		if err != nil {
			return "", "", err
		}
		if fi.IsDir() {
			continue
		}

		if IsArchive(pth) {
			return pth, path.Join(parts[i+1:]...), nil
		}

		if i < len(parts)-1 {
			return "", "", fmt.Errorf("%s is not a directory", pth)
		}
	}

	return "", "", nil
}

// ReadFile returns the contents of the named file. The file can be inside an
// archive.
func ReadFile(filename string) ([]byte, error) {
	archive, inside, err := split(filename)
	if err != nil {
		return nil, fmt.Errorf("archivefs: %w", err)
	}

	if archive == "" {
		b, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("archivefs: %w", err)
		}
		return b, nil
	}

	zr, err := zip.OpenReader(archive)
	if err != nil {
		return nil, fmt.Errorf("archivefs: %s: %w", archive, err)
	}
	defer zr.Close()

	if inside == "" {
		inside, err = onlyFile(&zr.Reader)
		if err != nil {
			return nil, fmt.Errorf("archivefs: %s: %w", archive, err)
		}
	}

	f, err := zr.Open(inside)
	if err != nil {
		return nil, fmt.Errorf("archivefs: %s: %w", archive, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("archivefs: %s: %w", archive, err)
	}

	return b, nil
}

// List returns the names of the files in the archive, in the order they
// appear in the archive. Directories are not included.
func List(archive string) ([]string, error) {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return nil, fmt.Errorf("archivefs: %w", err)
	}
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		if !f.FileInfo().IsDir() {
			names = append(names, f.Name)
		}
	}
	return names, nil
}

func onlyFile(zr *zip.Reader) (string, error) {
	var name string
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if name != "" {
			return "", fmt.Errorf("archive contains more than one file")
		}
		name = f.Name
	}
	if name == "" {
		return "", fmt.Errorf("archive is empty")
	}
	return name, nil
}
