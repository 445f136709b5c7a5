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
	"github.com/jetsetilly/ls8/hardware/interrupts"
	"github.com/jetsetilly/ls8/logger"
)

// Step the emulation state one CPU instruction. The timer interrupt is raised
// before the instruction if the timer interval has elapsed. It will be
// delivered at the end of the instruction if it is unmasked.
//
// Returns nil without doing anything if the CPU has halted.
func (m *LS8) Step() error {
	if m.CPU.Halted {
		return nil
	}

	m.timer()

	err := m.CPU.ExecuteInstruction()
	m.Count++

	if m.hook != nil {
		m.hook(m.CPU.LastResult)
	}

	if err != nil {
		logger.Logf(logger.Allow, "ls8", "fault at %#02x: %v", m.CPU.LastResult.Address, err)
		return err
	}

	if m.CPU.Halted {
		logger.Logf(logger.Allow, "ls8", "halted at %#02x after %d instructions", m.CPU.LastResult.Address, m.Count)
	}

	return nil
}

func (m *LS8) timer() {
	if m.TimerInterval <= 0 {
		return
	}

	t := m.now()
	if t.Sub(m.lastTimer) >= m.TimerInterval {
		m.Interrupts.Raise(interrupts.Timer)
		m.lastTimer = t
	}
}
