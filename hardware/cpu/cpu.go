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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/cpu/alu"
	"github.com/jetsetilly/ls8/hardware/cpu/execution"
	"github.com/jetsetilly/ls8/hardware/cpu/instructions"
	"github.com/jetsetilly/ls8/hardware/cpu/registers"
	"github.com/jetsetilly/ls8/hardware/interrupts"
	"github.com/jetsetilly/ls8/hardware/memory/addresses"
	"github.com/jetsetilly/ls8/hardware/memory/bus"
	"github.com/jetsetilly/ls8/hardware/output"
)

// NumRegisters is the number of registers in the register file.
const NumRegisters = 8

// Registers with special meaning.
const (
	IM = 5 // interrupt mask
	IS = 6 // interrupt status
	SP = 7 // stack pointer
)

// InvalidRegister is the pattern for errors caused by a register operand
// outside of the register file.
const InvalidRegister = "cpu: invalid register (R%d)"

var registerLabels = [NumRegisters]string{"R0", "R1", "R2", "R3", "R4", "IM", "IS", "SP"}

// CPU implements the LS-8 processor.
type CPU struct {
	PC registers.ProgramCounter
	R  [NumRegisters]registers.Register
	FL registers.Flags

	// interrupts are delivered only when InterruptsEnabled is true. cleared
	// on interrupt entry and set again by IRET
	InterruptsEnabled bool

	// the lowest address the stack may occupy. a PUSH that would write below
	// this address is a stack overflow
	StackFloor uint8

	// the CPU has executed a HLT instruction or has faulted. requires a Reset()
	Halted bool

	// the error that caused the CPU to halt. nil if the CPU halted normally
	Fault error

	// the result of the most recent instruction
	LastResult execution.Result

	mem  bus.Memory
	ints *interrupts.Controller
	out  output.Channel
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// interrupt controller can be nil, in which case only software interrupts are
// possible. A nil output channel discards all output.
func NewCPU(mem bus.Memory, ints *interrupts.Controller, out output.Channel) *CPU {
	if out == nil {
		out = output.Discard
	}

	mc := &CPU{
		mem:  mem,
		ints: ints,
		out:  out,
	}
	mc.Reset()

	return mc
}

// Plumb a new output channel into the CPU.
func (mc *CPU) Plumb(out output.Channel) {
	if out == nil {
		out = output.Discard
	}
	mc.out = out
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s=%s", mc.PC.Label(), mc.PC))
	for _, r := range mc.R {
		s.WriteString(fmt.Sprintf(" %s=%s", r.Label(), r))
	}
	s.WriteString(fmt.Sprintf(" %s=%s", mc.FL.Label(), mc.FL))
	return s.String()
}

// Reset reinitialises all registers to their power-on state. Memory and the
// StackFloor are not changed.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC.Load(0)
	for i := range mc.R {
		mc.R[i] = registers.NewRegister(0, registerLabels[i])
	}
	mc.R[SP].Load(addresses.StackTop)
	mc.FL.Reset()
	mc.InterruptsEnabled = true
	mc.Halted = false
	mc.Fault = nil
}

// fault halts the CPU and records the error.
func (mc *CPU) fault(err error) error {
	mc.Halted = true
	mc.Fault = err
	mc.LastResult.Fault = err
	mc.LastResult.Final = true
	return err
}

// register returns the register file index named by an operand.
func register(operand uint8) (int, error) {
	if operand >= NumRegisters {
		return 0, curated.Errorf(InvalidRegister, operand)
	}
	return int(operand), nil
}

// ExecuteInstruction steps the CPU forward one instruction. Pending
// interrupts are checked once the instruction has completed.
//
// Returns nil without doing anything if the CPU is halted.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Halted {
		return nil
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return mc.fault(err)
	}
	mc.LastResult.OpCode = opcode
	mc.LastResult.ByteCount = 1

	defn, err := instructions.Decode(opcode)
	if err != nil {
		return mc.fault(err)
	}
	mc.LastResult.Defn = defn

	for i := 0; i < defn.Operands; i++ {
		v, err := mc.mem.Read(mc.PC.Address() + uint16(i) + 1)
		if err != nil {
			return mc.fault(err)
		}
		mc.LastResult.Operands[i] = v
		mc.LastResult.ByteCount++
	}

	err = mc.execute(defn, mc.LastResult.Operands)
	if err != nil {
		return mc.fault(err)
	}

	if !mc.LastResult.SetPC {
		mc.PC.Add(uint16(defn.Bytes()))
	}

	if !mc.Halted {
		err = mc.serviceInterrupts()
		if err != nil {
			return mc.fault(err)
		}
	}

	mc.LastResult.Final = true

	return nil
}

// execute the decoded instruction. all checks are made before the machine
// state is changed.
func (mc *CPU) execute(defn *instructions.Definition, operands [2]uint8) error {
	// operands are register indices in all cases except for the second
	// operand of LDI
	var ra, rb int
	var err error

	if defn.Operands > 0 {
		ra, err = register(operands[0])
		if err != nil {
			return err
		}
	}
	if defn.Operands > 1 && defn.Operator != instructions.Ldi {
		rb, err = register(operands[1])
		if err != nil {
			return err
		}
	}

	switch defn.Operator {
	case instructions.Nop:

	case instructions.Hlt:
		mc.Halted = true

	case instructions.Ldi:
		mc.R[ra].Load(operands[1])

	case instructions.Ld:
		v, err := mc.mem.Read(mc.R[rb].Address())
		if err != nil {
			return err
		}
		mc.R[ra].Load(v)

	case instructions.St:
		return mc.mem.Write(mc.R[ra].Address(), mc.R[rb].Value())

	case instructions.Prn:
		mc.out.Emit(mc.R[ra].Value(), output.Decimal)

	case instructions.Pra:
		mc.out.Emit(mc.R[ra].Value(), output.Character)

	case instructions.Push:
		return mc.push(mc.R[ra].Value())

	case instructions.Pop:
		v, err := mc.pop()
		if err != nil {
			return err
		}
		mc.R[ra].Load(v)

	case instructions.Call:
		// the return address is the instruction following CALL. the target
		// is read before the push in case the operand is the stack pointer
		target := mc.R[ra].Address()
		ret, err := returnAddress(mc.PC.Address() + uint16(defn.Bytes()))
		if err != nil {
			return err
		}
		err = mc.push(ret)
		if err != nil {
			return err
		}
		mc.PC.Load(target)
		mc.LastResult.SetPC = true

	case instructions.Ret:
		v, err := mc.pop()
		if err != nil {
			return err
		}
		mc.PC.Load(uint16(v))
		mc.LastResult.SetPC = true

	case instructions.Jmp:
		mc.jump(true, ra)
	case instructions.Jeq:
		mc.jump(mc.FL.Equal, ra)
	case instructions.Jne:
		mc.jump(!mc.FL.Equal, ra)
	case instructions.Jgt:
		mc.jump(mc.FL.Greater, ra)
	case instructions.Jlt:
		mc.jump(mc.FL.Less, ra)

	case instructions.Int:
		line := mc.R[ra].Value() & (interrupts.NumLines - 1)
		mc.R[IS].Load(mc.R[IS].Value() | (0x01 << line))

	case instructions.Iret:
		return mc.interruptReturn()

	default:
		if defn.Category != instructions.ALU {
			return curated.Errorf(instructions.UnknownInstruction, defn.OpCode)
		}

		var b uint8
		if defn.Operands > 1 {
			b = mc.R[rb].Value()
		}

		r, err := alu.Compute(defn.ALU, mc.R[ra].Value(), b)
		if err != nil {
			return err
		}
		if r.Store {
			mc.R[ra].Load(r.Value)
		}
		if r.SetsFlags {
			mc.FL = r.Flags
		}
	}

	return nil
}

// jump loads the program counter with the value in register r if flag is
// true.
func (mc *CPU) jump(flag bool, r int) {
	if flag {
		mc.PC.Load(mc.R[r].Address())
		mc.LastResult.SetPC = true
	}
}
