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

package instructions

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ls8/hardware/cpu/alu"
)

// Operator identifies the operation of an instruction.
type Operator int

// List of valid Operator values. One for each mnemonic.
const (
	Nop Operator = iota
	Hlt
	Ldi
	Ld
	St
	Prn
	Pra
	Add
	Sub
	Mul
	Div
	Mod
	Inc
	Dec
	Cmp
	And
	Or
	Xor
	Not
	Push
	Pop
	Call
	Ret
	Jmp
	Jeq
	Jne
	Jgt
	Jlt
	Int
	Iret
)

// Category of an instruction describes its effect.
type Category int

// List of valid Category values.
const (
	// no effect other than advancing the program counter
	Control Category = iota

	// moves values between registers and memory
	Load
	Store

	// writes to the output side-channel
	Output

	// delegates to the ALU
	ALU

	// push and pop
	Stack

	// the following categories affect the program counter directly
	Flow
	Subroutine
	Interrupt
)

func (c Category) String() string {
	switch c {
	case Control:
		return "Control"
	case Load:
		return "Load"
	case Store:
		return "Store"
	case Output:
		return "Output"
	case ALU:
		return "ALU"
	case Stack:
		return "Stack"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown"
}

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	OpCode   uint8
	Mnemonic string
	Operands int
	Operator Operator
	Category Category

	// SetsPC is true if the instruction can load the program counter. For
	// conditional jumps this only happens when the condition is met
	SetsPC bool

	// the ALU operation for instructions in the ALU category
	ALU alu.Operation
}

// Bytes returns the number of bytes taken by the instruction, including the
// opcode.
func (defn Definition) Bytes() int {
	return 1 + defn.Operands
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%08b %s +%dbytes [category=%s setspc=%t]", defn.OpCode, defn.Mnemonic, defn.Bytes(), defn.Category, defn.SetsPC)
}

// Format returns the instruction as it would be written in LS-8 assembly. For
// example, "LDI R0,8" or "HLT". The operands slice can be longer than required
// by the instruction.
func (defn Definition) Format(operands []uint8) string {
	if len(operands) < defn.Operands {
		return fmt.Sprintf("%s ???", defn.Mnemonic)
	}

	s := strings.Builder{}
	s.WriteString(defn.Mnemonic)

	switch defn.Operator {
	case Ldi:
		s.WriteString(fmt.Sprintf(" R%d,%d", operands[0], operands[1]))
	default:
		for i := 0; i < defn.Operands; i++ {
			if i == 0 {
				s.WriteRune(' ')
			} else {
				s.WriteRune(',')
			}
			s.WriteString(fmt.Sprintf("R%d", operands[i]))
		}
	}

	return s.String()
}
