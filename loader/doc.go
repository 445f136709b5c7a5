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

// Package loader is used to specify and load the program to be attached to
// the LS-8.
//
// LS-8 programs are text files. Each line is either blank, a comment
// beginning with the # character, or an eight digit binary number. A binary
// number can be followed by a comment. For example:
//
//	# print the number 8
//	10011001 # LDI R0,8
//	00000000
//	00001000
//	01000011 # PRN R0
//	00000000
//	00000001 # HLT
//
// Anything else is an error. Programs longer than the LS-8 memory are also an
// error.
//
// Programs can be loaded from the local filesystem or from an HTTP URL.
package loader
