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

package hardware_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/govern"
	"github.com/jetsetilly/ls8/hardware"
	"github.com/jetsetilly/ls8/hardware/cpu"
	"github.com/jetsetilly/ls8/hardware/cpu/alu"
	"github.com/jetsetilly/ls8/hardware/cpu/execution"
	"github.com/jetsetilly/ls8/hardware/output"
	"github.com/jetsetilly/ls8/loader"
	"github.com/jetsetilly/ls8/test"
)

var mult = []byte{
	0b10011001, 0, 8, // LDI R0,8
	0b10011001, 1, 9, // LDI R1,9
	0b10101010, 0, 1, // MUL R0,R1
	0b01000011, 0, // PRN R0
	0b00000001, // HLT
}

// loops forever at address 3
var loop = []byte{
	0b10011001, 0, 3, // LDI R0,3
	0b01010000, 0, // JMP R0
}

func newLS8(t *testing.T, program []byte) (*hardware.LS8, *test.Writer) {
	t.Helper()
	w := &test.Writer{}
	m := hardware.NewLS8(output.NewWriter(w))
	test.DemandSuccess(t, m.AttachProgram(loader.NewLoaderFromData("test", program)))
	return m, w
}

func TestAttachProgram(t *testing.T) {
	m, _ := newLS8(t, mult)

	test.ExpectEquality(t, m.CPU.StackFloor, uint8(len(mult)))
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(0))
	test.ExpectEquality(t, m.State(), govern.Paused)

	for i, b := range mult {
		v, err := m.Mem.Read(uint16(i))
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, v, b, i)
	}

	// a loader that can't load
	err := m.AttachProgram(loader.NewLoader(""))
	test.ExpectSuccess(t, curated.Is(err, loader.LoadError))
}

func TestRun(t *testing.T) {
	m, w := newLS8(t, mult)

	var results []execution.Result
	m.SetInstructionHook(func(r execution.Result) {
		results = append(results, r)
	})

	test.DemandSuccess(t, m.Run(nil))
	test.ExpectSuccess(t, w.Compare("72\n"))
	test.ExpectEquality(t, m.State(), govern.Halted)
	test.ExpectEquality(t, m.Count, uint64(5))
	test.DemandEquality(t, len(results), 5)
	test.ExpectEquality(t, results[2].Disasm(), "MUL R0,R1")

	// running a halted machine does nothing
	test.DemandSuccess(t, m.Run(nil))
	test.ExpectEquality(t, m.Count, uint64(5))

	// reset reloads the program
	m.Mem.Write(0, 0)
	m.Reset()
	test.ExpectEquality(t, m.Count, uint64(0))
	w.Clear()
	test.DemandSuccess(t, m.Run(nil))
	test.ExpectSuccess(t, w.Compare("72\n"))
}

func TestRunFault(t *testing.T) {
	m, _ := newLS8(t, []byte{
		0b10101011, 0, 1, // DIV R0,R1
	})

	err := m.Run(nil)
	test.ExpectSuccess(t, curated.Is(err, alu.DivisionByZero))
	test.ExpectEquality(t, m.State(), govern.Halted)
	test.ExpectSuccess(t, curated.Is(m.CPU.Fault, alu.DivisionByZero))
}

func TestContinueCheck(t *testing.T) {
	m, _ := newLS8(t, loop)

	var n int
	err := m.Run(func() (govern.State, error) {
		n++
		if n >= 10 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.Count, uint64(10))

	err = m.RunForInstructionCount(25, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.Count, uint64(35))

	err = m.RunForInstructionCount(100, func(count int) (govern.State, error) {
		if count == 5 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.Count, uint64(40))
}

func TestStop(t *testing.T) {
	m, _ := newLS8(t, loop)

	done := make(chan error)
	go func() {
		done <- m.Run(nil)
	}()

	time.Sleep(10 * time.Millisecond)
	m.Stop()

	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("machine did not stop")
	}

	test.ExpectFailure(t, m.CPU.Halted)

	// a stop request made before running is observed after the first
	// instruction
	count := m.Count
	m.Stop()
	test.ExpectSuccess(t, m.Run(nil))
	test.ExpectEquality(t, m.Count, count+1)
}

func TestRunClocked(t *testing.T) {
	m, w := newLS8(t, mult)
	test.DemandSuccess(t, m.RunClocked(context.Background(), time.Millisecond))
	test.ExpectSuccess(t, w.Compare("72\n"))

	// cancelled context
	m, _ = newLS8(t, loop)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	test.ExpectSuccess(t, m.RunClocked(ctx, time.Millisecond))
	test.ExpectFailure(t, m.CPU.Halted)

	// unclocked
	m, _ = newLS8(t, loop)
	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	test.ExpectSuccess(t, m.RunClocked(ctx, 0))
	test.ExpectInequality(t, m.Count, uint64(0))
}

func TestTimerInterrupt(t *testing.T) {
	m, _ := newLS8(t, []byte{
		0b10011001, cpu.IM, 0b00000001, // LDI IM,1
		0b10011001, 0, 6, // LDI R0,6
		0b01010000, 0, // JMP R0
	})

	// interrupt handler increments the counter at 0x40. registers are
	// restored by IRET so the count is kept in memory
	handler := []uint8{
		0b10011001, 3, 0x40, // LDI R3,0x40
		0b10011000, 2, 3, // LD R2,R3
		0b01111000, 2, // INC R2
		0b10011010, 3, 2, // ST R3,R2
		0b00001011, // IRET
	}
	for i, b := range handler {
		m.Mem.Write(0x20+uint16(i), b)
	}
	m.Mem.Write(0xf8, 0x20)

	counter := func() uint8 {
		v, err := m.Mem.Read(0x40)
		test.DemandSuccess(t, err)
		return v
	}

	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	m.SetTimeSource(func() time.Time { return now })
	m.TimerInterval = time.Second

	for i := 0; i < 5; i++ {
		test.DemandSuccess(t, m.Step())
	}
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(6))
	test.ExpectEquality(t, counter(), uint8(0))

	now = now.Add(time.Second)
	test.DemandSuccess(t, m.Step())
	test.ExpectEquality(t, m.CPU.LastResult.Interrupt, 0)
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(0x20))

	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, m.Step())
	}
	test.ExpectEquality(t, counter(), uint8(1))
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(6))
	test.ExpectSuccess(t, m.CPU.InterruptsEnabled)

	// disabled timer
	m.TimerInterval = 0
	now = now.Add(time.Hour)
	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, m.Step())
	}
	test.ExpectEquality(t, counter(), uint8(1))
}
