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

package hardware

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/ls8/govern"
	"github.com/jetsetilly/ls8/hardware/cpu"
	"github.com/jetsetilly/ls8/hardware/cpu/execution"
	"github.com/jetsetilly/ls8/hardware/interrupts"
	"github.com/jetsetilly/ls8/hardware/memory"
	"github.com/jetsetilly/ls8/hardware/memory/addresses"
	"github.com/jetsetilly/ls8/hardware/output"
	"github.com/jetsetilly/ls8/loader"
	"github.com/jetsetilly/ls8/logger"
)

// DefaultTimerInterval is the interval between timer interrupts of the
// original LS-8.
const DefaultTimerInterval = time.Second

// LS8 struct is the main container for the emulated components of the LS-8.
type LS8 struct {
	CPU        *cpu.CPU
	Mem        *memory.RAM
	Interrupts *interrupts.Controller

	// the most recently attached program
	Program loader.Loader

	// interval between timer interrupts. zero disables the timer
	TimerInterval time.Duration

	// the number of instructions executed since the last reset
	Count uint64

	out output.Channel

	// source of the current time for the timer. can be replaced with
	// SetTimeSource() for testing
	now       func() time.Time
	lastTimer time.Time

	// set by Stop() and consumed by the run functions
	stop atomic.Bool

	hook func(execution.Result)
}

// NewLS8 creates a new LS-8 and everything associated with the hardware. A nil
// output channel discards all output.
func NewLS8(out output.Channel) *LS8 {
	if out == nil {
		out = output.Discard
	}

	m := &LS8{
		Mem:           memory.NewRAM(),
		Interrupts:    interrupts.NewController(),
		TimerInterval: DefaultTimerInterval,
		out:           out,
		now:           time.Now,
	}
	m.CPU = cpu.NewCPU(m.Mem, m.Interrupts, m.out)
	m.lastTimer = m.now()

	return m
}

// AttachProgram loads the program into memory at address zero and resets the
// machine. The program is loaded with Loader.Load() if it hasn't been already.
func (m *LS8) AttachProgram(ld loader.Loader) error {
	err := ld.Load()
	if err != nil {
		return err
	}

	m.Program = ld
	m.Reset()

	logger.Logf(logger.Allow, "ls8", "attached %s (%d bytes, %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}

// Reset the machine to its power-on state. Memory is cleared and the attached
// program, if any, is loaded again.
func (m *LS8) Reset() {
	m.Mem.Reset()
	m.CPU.StackFloor = 0

	if m.Program.HasLoaded() {
		// the loader makes sure the program is not too large
		_ = m.Mem.Load(0, m.Program.Data)

		// the stack must never grow into the program
		m.CPU.StackFloor = uint8(min(len(m.Program.Data), int(addresses.StackTop)))
	}

	m.CPU.Reset()
	m.Interrupts.Reset()
	m.Count = 0
	m.stop.Store(false)
	m.lastTimer = m.now()
}

// SetTimeSource replaces the function used by the timer to find the current
// time. Nil restores time.Now().
func (m *LS8) SetTimeSource(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	m.now = now
	m.lastTimer = m.now()
}

// SetInstructionHook sets a function to be called with the result of every
// instruction. Nil removes the hook.
func (m *LS8) SetInstructionHook(hook func(execution.Result)) {
	m.hook = hook
}

// SetOutput changes the channel used by the PRN and PRA instructions.
func (m *LS8) SetOutput(out output.Channel) {
	if out == nil {
		out = output.Discard
	}
	m.out = out
	m.CPU.Plumb(out)
}

// Stop the machine. Safe to call from any goroutine. The request is observed
// by the run functions between instructions.
func (m *LS8) Stop() {
	m.stop.Store(true)
}

// stopped consumes a stop request.
func (m *LS8) stopped() bool {
	if m.stop.Swap(false) {
		logger.Logf(logger.Allow, "ls8", "stopped at %#02x", m.CPU.PC.Address())
		return true
	}
	return false
}

// State returns the emulation state implied by the machine. The run functions
// never leave the machine in the Running state.
func (m *LS8) State() govern.State {
	if !m.Program.HasLoaded() {
		return govern.Initialising
	}
	if m.CPU.Halted {
		return govern.Halted
	}
	return govern.Paused
}
