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

// Package platform describes the variant of CHIP-8 being emulated. A Platform
// is the Mode (CHIP-8, SUPER-CHIP or XO-CHIP), the set of Quirks and the speed
// of emulation measured in instructions per frame.
//
// The mode and the quirks are data. The CPU consults them in a single
// dispatch function rather than being specialised for each platform.
//
// The Preferences type allows the quirks and speed settings to be persisted
// to disk with the prefs package.
package platform
