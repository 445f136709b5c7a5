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
	"math/bits"

	"github.com/jetsetilly/ls8/hardware/memory/addresses"
)

// the number of bytes pushed onto the stack on interrupt entry. the program
// counter, the flags and registers R0 to R6
const interruptFrame = 9

// serviceInterrupts moves pending interrupts from the controller into the IS
// register and delivers the lowest numbered unmasked interrupt, if any.
func (mc *CPU) serviceInterrupts() error {
	if mc.ints != nil {
		if pending := mc.ints.Drain(); pending != 0 {
			mc.R[IS].Load(mc.R[IS].Value() | pending)
		}
		if key, ok := mc.ints.TakeKey(); ok {
			if err := mc.mem.Write(addresses.KeyPressed, key); err != nil {
				return err
			}
		}
	}

	if !mc.InterruptsEnabled {
		return nil
	}

	masked := mc.R[IM].Value() & mc.R[IS].Value()
	if masked == 0 {
		return nil
	}

	return mc.interruptEntry(bits.TrailingZeros8(masked))
}

// interruptEntry saves the machine state on the stack and jumps to the
// address in the vector for the interrupt line.
func (mc *CPU) interruptEntry(line int) error {
	if err := mc.stackRoom(interruptFrame); err != nil {
		return err
	}

	ret, err := returnAddress(mc.PC.Address())
	if err != nil {
		return err
	}

	vector, err := mc.mem.Read(addresses.Vector(line))
	if err != nil {
		return err
	}

	mc.InterruptsEnabled = false
	mc.R[IS].Load(mc.R[IS].Value() &^ (0x01 << line))

	// pushes can't fail because there is room on the stack
	_ = mc.push(ret)
	_ = mc.push(mc.FL.Value())
	for i := 0; i <= IS; i++ {
		_ = mc.push(mc.R[i].Value())
	}

	mc.PC.Load(uint16(vector))
	mc.LastResult.Interrupt = line

	return nil
}

// interruptReturn is the inverse of interruptEntry(). registers R6 to R0 are
// restored, followed by the flags and the program counter.
func (mc *CPU) interruptReturn() error {
	if err := mc.stackDepth(interruptFrame); err != nil {
		return err
	}

	pending := mc.R[IS].Value()

	// read the whole frame before changing anything
	var frame [interruptFrame]uint8
	sp := mc.R[SP].Value()
	for i := range frame {
		v, err := mc.mem.Read(uint16(sp) + uint16(i))
		if err != nil {
			return err
		}
		frame[i] = v
	}

	for i := IS; i >= 0; i-- {
		mc.R[i].Load(frame[IS-i])
	}

	// interrupts raised while the handler was running stay pending
	mc.R[IS].Load(frame[0] | pending)
	mc.FL.FromValue(frame[7])
	mc.PC.Load(uint16(frame[8]))
	mc.R[SP].Load(sp + interruptFrame)

	mc.InterruptsEnabled = true
	mc.LastResult.SetPC = true

	return nil
}

// RaiseInterrupt sets the IS bit for the interrupt line directly. The
// interrupt is delivered at the end of the next instruction if it is
// unmasked.
func (mc *CPU) RaiseInterrupt(line int) {
	mc.R[IS].Load(mc.R[IS].Value() | (0x01 << (line & 0x07)))
}
