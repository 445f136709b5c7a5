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
	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/memory"
	"github.com/jetsetilly/ls8/hardware/memory/addresses"
)

// Patterns for stack faults. SP is the value of the stack pointer at the time
// of the fault.
const (
	StackOverflow  = "cpu: stack overflow (SP=%#02x)"
	StackUnderflow = "cpu: stack underflow (SP=%#02x)"
)

// stackRoom checks that n values can be pushed without passing the stack
// floor.
func (mc *CPU) stackRoom(n int) error {
	sp := int(mc.R[SP].Value())
	if sp-n < int(mc.StackFloor) {
		return curated.Errorf(StackOverflow, sp)
	}
	return nil
}

// stackDepth checks that n values can be popped without passing the top of
// the stack.
func (mc *CPU) stackDepth(n int) error {
	sp := int(mc.R[SP].Value())
	if sp+n > int(addresses.StackTop) {
		return curated.Errorf(StackUnderflow, sp)
	}
	return nil
}

// returnAddress checks that a return address can be held on the stack. An
// address past the end of memory can not be stored in a single byte.
func returnAddress(address uint16) (uint8, error) {
	if address > addresses.Memtop {
		return 0, curated.Errorf(memory.OutOfBounds, address)
	}
	return uint8(address), nil
}

// push decrements the stack pointer and writes the value to the new top of
// the stack.
func (mc *CPU) push(v uint8) error {
	if err := mc.stackRoom(1); err != nil {
		return err
	}
	sp := mc.R[SP].Value() - 1
	if err := mc.mem.Write(uint16(sp), v); err != nil {
		return err
	}
	mc.R[SP].Load(sp)
	return nil
}

// pop reads the top of the stack and increments the stack pointer.
func (mc *CPU) pop() (uint8, error) {
	if err := mc.stackDepth(1); err != nil {
		return 0, err
	}
	sp := mc.R[SP].Value()
	v, err := mc.mem.Read(uint16(sp))
	if err != nil {
		return 0, err
	}
	mc.R[SP].Load(sp + 1)
	return v, nil
}

// StackContents returns the values on the stack, top first. Values below the
// stack floor or beyond the top of the stack are never returned.
func (mc *CPU) StackContents() []uint8 {
	var s []uint8
	for a := int(mc.R[SP].Value()); a < int(addresses.StackTop); a++ {
		v, err := mc.mem.Read(uint16(a))
		if err != nil {
			break
		}
		s = append(s, v)
	}
	return s
}
