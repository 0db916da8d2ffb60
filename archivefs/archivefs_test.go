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

package archivefs_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherchip/archivefs"
	"github.com/jetsetilly/gopherchip/test"
)

func createArchive(t *testing.T, filename string, files map[string]string) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		test.DemandSuccess(t, err)
		_, err = w.Write([]byte(content))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())
}

func TestExtensions(t *testing.T) {
	test.ExpectSuccess(t, archivefs.IsArchive("foo.zip"))
	test.ExpectSuccess(t, archivefs.IsArchive("foo.ZIP"))
	test.ExpectFailure(t, archivefs.IsArchive("foo.ch8"))
	test.ExpectEquality(t, archivefs.TrimArchiveExt("foo.zip"), "foo")
	test.ExpectEquality(t, archivefs.TrimArchiveExt("foo.ch8"), "foo.ch8")
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.ch8")
	test.DemandSuccess(t, os.WriteFile(plain, []byte("plain"), 0o600))

	b, err := archivefs.ReadFile(plain)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "plain")

	multi := filepath.Join(dir, "multi.zip")
	createArchive(t, multi, map[string]string{
		"games/pong.ch8":   "pong",
		"games/tetris.ch8": "tetris",
	})

	b, err = archivefs.ReadFile(filepath.Join(multi, "games", "tetris.ch8"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "tetris")

	// more than one file in the archive
	_, err = archivefs.ReadFile(multi)
	test.ExpectFailure(t, err)

	// no such file in the archive
	_, err = archivefs.ReadFile(filepath.Join(multi, "games", "missing.ch8"))
	test.ExpectFailure(t, err)

	single := filepath.Join(dir, "single.zip")
	createArchive(t, single, map[string]string{"breakout.sc8": "breakout"})

	b, err = archivefs.ReadFile(single)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "breakout")

	names, err := archivefs.List(multi)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(names), 2)

	// file used as a directory
	_, err = archivefs.ReadFile(filepath.Join(plain, "foo"))
	test.ExpectFailure(t, err)

	_, err = archivefs.ReadFile(filepath.Join(dir, "missing.ch8"))
	test.ExpectFailure(t, err)
}
