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

// Package registers implements the three types of register found in the
// LS-8 CPU: the general purpose Register, the ProgramCounter and the Flags
// register.
//
// Registers do no arithmetic of their own. Values are computed by the ALU and
// loaded into registers by the CPU. For example:
//
//	res, err := alu.Compute(alu.Add, r0.Value(), r1.Value())
//	if err != nil {
//		return err
//	}
//	r0.Load(res.Value)
//
// The program counter is 16 bits wide even though the LS-8 address space is
// only 256 bytes. This is so that an attempt to execute past the end of memory
// can be detected.
package registers
