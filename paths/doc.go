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

// Package paths contains functions to prepare paths to gopherchip resources.
//
// The ResourcePath() function returns the path to a resource file, prepended
// with the appropriate config directory. For example, the following returns
// the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// The directory is created if it does not exist.
//
// For development builds the base path is ".gopherchip" in the current
// directory. For release builds (built with the "release" tag) the user's
// config directory is used, as reported by os.UserConfigDir(). On a modern
// Linux system that would be:
//
//	/home/user/.config/gopherchip/preferences
package paths
