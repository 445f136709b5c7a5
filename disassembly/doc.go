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

// Package disassembly coordinates the disassembly of LS-8 programs.
//
// LS-8 programs are disassembled linearly from address zero. Every byte that
// decodes to an instruction is treated as an instruction and the following
// operand bytes are consumed. Bytes that are not instructions are recorded as
// data. This is good enough for most programs because the instruction set has
// no variable length operands.
//
// For quick disassemblies the FromProgram() function can be used. The monitor
// will probably find it more useful to disassemble from the memory of an
// already instantiated LS8 with the FromMemory() function. Entries are marked
// as executed by the ExecutedEntry() function, which is suitable for use with
// the instruction hook of the LS8 type.
package disassembly
