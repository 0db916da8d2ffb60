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

// Package modalflag wraps the flag package of the Go standard library. It adds
// program modes to the command line, each mode having its own set of flags.
//
// Arguments are given to the Modes type with NewArgs() and then parsed with
// Parse(). Flags are added with the Add*() functions:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TERMINAL", "HEADLESS")
//	p, err := md.Parse()
//
// After the first Parse() the Mode() function returns the selected mode. The
// mode is the first non-flag argument if it matches one of the sub-modes
// (case insensitive). If it does not match, the first sub-mode is the default
// and the argument is left for later parsing.
//
// For each mode, NewMode() resets the flag set so that mode specific flags can
// be added and the remaining arguments parsed again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddInt("scale", 7, "window scaling")
//		p, err := md.Parse()
//		...
//	}
//
// Parse() returns ParseHelp if the -help flag was given. The help message has
// already been written to Output in that case and the program should exit.
package modalflag
