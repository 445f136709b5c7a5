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

// Package cpu emulates the LS-8 processor. The bulk of the work is done by
// the ExecuteInstruction() function which fetches, decodes and executes a
// single instruction. After every completed instruction the CPU checks for
// pending interrupts and delivers the lowest numbered unmasked line.
//
// Register logic is implemented by the Register type in the registers
// sub-package. Arithmetic is delegated to the alu sub-package and instruction
// definitions are found in the instructions sub-package.
//
// Faults (unknown instructions, stack overflow, division by zero, etc.) halt
// the CPU. A faulting instruction has no effect on registers, memory or the
// program counter. The error returned by ExecuteInstruction() is also
// available in the Fault field and in LastResult.
package cpu
