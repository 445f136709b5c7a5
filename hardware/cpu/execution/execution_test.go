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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/cpu/execution"
	"github.com/jetsetilly/ls8/hardware/cpu/instructions"
	"github.com/jetsetilly/ls8/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result
	r.Reset()

	// not finalised
	test.ExpectFailure(t, r.IsValid())

	ldi, err := instructions.Decode(0b10011001)
	test.DemandSuccess(t, err)

	r.Defn = ldi
	r.OpCode = ldi.OpCode
	r.Operands = [2]uint8{0, 8}
	r.ByteCount = 3
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.String(), "0x00 LDI R0,8")

	r.ByteCount = 2
	test.ExpectFailure(t, r.IsValid())
	r.ByteCount = 3

	// LDI can never set the program counter
	r.SetPC = true
	test.ExpectFailure(t, r.IsValid())
	r.SetPC = false

	r.Interrupt = 1
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.String(), "0x00 LDI R0,8 [I1]")
}

func TestFaultedResult(t *testing.T) {
	var r execution.Result
	r.Reset()

	r.Address = 0x10
	r.OpCode = 0xff
	r.Final = true
	r.Fault = curated.Errorf(instructions.UnknownInstruction, r.OpCode)

	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.Disasm(), "??? 0xff")
	test.ExpectEquality(t, r.String(), "0x10 ??? 0xff [instructions: unknown instruction (0xff)]")
}
