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

package logger

// Permission is implemented by any type that can decide whether a log entry
// should be made. The decision is made at the time of the Log() call.
type Permission interface {
	AllowLogging() bool
}

type allowed struct{}

func (allowed) AllowLogging() bool {
	return true
}

type denied struct{}

func (denied) AllowLogging() bool {
	return false
}

// Allow is the Permission to use when the entry should always be made.
var Allow Permission = allowed{}

// Deny is the Permission to use when the entry should never be made. Useful
// for types that forward a Permission to components they own.
var Deny Permission = denied{}
