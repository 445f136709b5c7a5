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

// Package interrupts holds the pending interrupt lines of the LS-8. There are
// eight lines. By convention line 0 is the timer and line 1 the keyboard.
//
// Interrupts can be raised from any goroutine. The Controller never touches
// the CPU registers or memory. Instead, the CPU drains the pending lines at
// the end of every instruction and decides whether to deliver them.
package interrupts

import (
	"sync/atomic"
)

// NumLines is the number of interrupt lines.
const NumLines = 8

// Conventional interrupt lines.
const (
	Timer    = 0
	Keyboard = 1
)

// Controller records interrupt requests until they are drained by the CPU.
type Controller struct {
	pending atomic.Uint32

	// the key most recently pressed. bit 8 indicates that the key has not
	// yet been taken
	key atomic.Uint32
}

const keyLatched = 0x100

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{}
}

// Reset forgets all pending interrupts and any latched key.
func (ic *Controller) Reset() {
	ic.pending.Store(0)
	ic.key.Store(0)
}

// Raise sets the pending bit for the interrupt line. Only the low three bits
// of line are used.
func (ic *Controller) Raise(line int) {
	ic.pending.Or(uint32(1) << (line & (NumLines - 1)))
}

// RaiseKey latches the key and raises the keyboard interrupt. An earlier key
// that has not been taken is overwritten.
func (ic *Controller) RaiseKey(key uint8) {
	ic.key.Store(keyLatched | uint32(key))
	ic.Raise(Keyboard)
}

// Pending returns the pending interrupt lines without clearing them.
func (ic *Controller) Pending() uint8 {
	return uint8(ic.pending.Load())
}

// Drain returns and clears the pending interrupt lines.
func (ic *Controller) Drain() uint8 {
	return uint8(ic.pending.Swap(0))
}

// TakeKey returns the latched key. The second return value is false if no key
// has been pressed since the last call to TakeKey().
func (ic *Controller) TakeKey() (uint8, bool) {
	k := ic.key.Swap(0)
	return uint8(k), k&keyLatched == keyLatched
}
