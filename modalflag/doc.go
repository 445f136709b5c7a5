// This file is part of ls8.
//
// ls8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ls8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ls8.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It allows a command line to be split into modes and sub-modes,
// each with their own set of flags.
//
// For example, the ls8 command line might look like this:
//
//	ls8 PROFILE -csv out.csv program.ls8
//
// The first call to Parse() with the sub-modes RUN, DEBUG, DISASM and PROFILE
// will find PROFILE. After a call to NewMode() the flags for the PROFILE mode
// can be added and a second call to Parse() will process the -csv flag and
// leave program.ls8 as a remaining argument.
//
// If no sub-mode is found on the command line the first sub-mode in the list
// is used as the default.
package modalflag
