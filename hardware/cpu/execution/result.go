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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ls8/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. will be nil if the opcode could not
	// be decoded
	Defn *instructions.Definition

	// the opcode and operands as read from memory
	OpCode   uint8
	Operands [2]uint8

	// the number of bytes read during instruction decode
	ByteCount int

	// whether the instruction loaded the program counter. the program
	// counter is not advanced in this case
	SetPC bool

	// the interrupt line delivered at the end of the instruction. -1 if no
	// interrupt was delivered
	Interrupt int

	// whether this data has been finalised
	Final bool

	// the fault raised by the instruction, if any. a faulting instruction
	// has no other effect on the machine
	Fault error
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.OpCode = 0
	r.Operands = [2]uint8{}
	r.ByteCount = 0
	r.SetPC = false
	r.Interrupt = -1
	r.Final = false
	r.Fault = nil
}

// Disasm returns the instruction as assembly text.
func (r Result) Disasm() string {
	if r.Defn == nil {
		return fmt.Sprintf("??? %#02x", r.OpCode)
	}
	return r.Defn.Format(r.Operands[:r.Defn.Operands])
}

func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#02x %s", r.Address, r.Disasm()))
	if r.Interrupt >= 0 {
		s.WriteString(fmt.Sprintf(" [I%d]", r.Interrupt))
	}
	if r.Fault != nil {
		s.WriteString(fmt.Sprintf(" [%v]", r.Fault))
	}
	return s.String()
}
