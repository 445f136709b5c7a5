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
	"context"
	"time"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/govern"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. Run returns when the
// CPU halts or faults, when Stop() is called, or when continueCheck returns
// govern.Ending. A fault is returned as an error.
func (m *LS8) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			err = m.Step()
			if err != nil {
				return err
			}
			if m.CPU.Halted {
				return nil
			}
		case govern.Paused:
		default:
			return curated.Errorf("ls8: unsupported emulation state (%s) in Run() function", state)
		}

		if m.stopped() {
			return nil
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForInstructionCount sets the emulation running for the specified number
// of instructions. Useful for profiling and for tests. The continueCheck
// function is called with the number of instructions executed so far.
func (m *LS8) RunForInstructionCount(numInstructions int, continueCheck func(count int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(count int) (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running
	for count := 0; count < numInstructions && state != govern.Ending; {
		err := m.Step()
		if err != nil {
			return err
		}
		if m.CPU.Halted || m.stopped() {
			return nil
		}

		count++

		state, err = continueCheck(count)
		if err != nil {
			return err
		}
	}

	return nil
}

// RunClocked executes one instruction every interval until the CPU halts or
// faults, until Stop() is called, or until the context is cancelled. An
// interval of zero or less runs the emulation as quickly as possible.
func (m *LS8) RunClocked(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		var performanceFilter int
		return m.Run(func() (govern.State, error) {
			performanceFilter++
			if performanceFilter >= PerformanceBrake {
				performanceFilter = 0
				if ctx.Err() != nil {
					return govern.Ending, nil
				}
			}
			return govern.Running, nil
		})
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		err := m.Step()
		if err != nil {
			return err
		}
		if m.CPU.Halted || m.stopped() {
			return nil
		}
	}
}
