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

// Package memory implements the 256 bytes of memory in the LS-8. There is a
// single flat address space and no memory mapped devices. The layout of the
// address space is described by the constants in the addresses package.
//
// The RAM type implements the bus.Memory interface, which is how the CPU
// accesses memory. Access outside of the address space results in an
// OutOfBounds error rather than any wrapping or clamping of the address.
package memory
