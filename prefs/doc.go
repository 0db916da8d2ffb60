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

// Package prefs facilitates the storage of preferential values in the
// application. It wraps Go types in a way that makes it easy to associate
// them with a key and to save them to disk.
//
// The Bool, Int, Float and String types are safe to use from more than one
// goroutine. Each type supports a pre-hook and a post-hook, called before and
// after a new value is stored. An error from the pre-hook prevents the value
// from being stored.
//
// Values are associated with a key when they are added to a Disk instance.
// The file written by Disk.Save() is a sequence of lines of the form:
//
//	key :: value
//
// Keys for unrelated values may be stored in the same file. Saving a Disk
// instance preserves the lines of the file it does not know about.
//
// Values can be overridden by the command line stack. A prefs string pushed
// with PushCommandLineStack() takes priority over the value loaded from disk
// for the lifetime of that stack entry.
package prefs
