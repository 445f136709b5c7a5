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

// Package instructions defines the LS-8 instruction set. Each opcode in the
// instruction set has a Definition, which is looked up with the Decode()
// function.
//
// An LS-8 opcode has the form AABCDDDD. The two most significant bits (AA)
// are the number of operands that follow the opcode in memory. This number is
// used by the CPU to fetch operands and to advance the program counter and
// the package checks at initialisation that every definition agrees with it.
//
// The remaining bits are the instruction identifier. The definitions are the
// wire format for LS-8 programs and must not change.
package instructions
