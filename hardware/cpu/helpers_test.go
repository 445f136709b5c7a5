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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/cpu"
	"github.com/jetsetilly/ls8/hardware/memory"
	"github.com/jetsetilly/ls8/hardware/memory/addresses"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, addresses.Capacity)
	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, _ := mem.Read(address)
	if d != value {
		t.Errorf("memory assertion failed (%v  - wanted %v at address %04x", d, value, address)
	}
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	for i := 0; i < len(mem.internal); i++ {
		mem.internal[i] = 0
	}
}

func (mem mockMem) Read(address uint16) (uint8, error) {
	if int(address) >= len(mem.internal) {
		return 0, curated.Errorf(memory.OutOfBounds, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if int(address) >= len(mem.internal) {
		return curated.Errorf(memory.OutOfBounds, address)
	}
	mem.internal[address] = data
	return nil
}

// step executes a single instruction and fails the test if the instruction
// faulted or if the result is inconsistent.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

// run executes instructions until the CPU halts. fails the test if the CPU
// faults or doesn't halt in a reasonable number of instructions.
func run(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		step(t, mc)
		if mc.Halted {
			return
		}
	}
	t.Fatal("cpu did not halt")
}

// expectFault executes a single instruction that is expected to fault with
// the error pattern.
func expectFault(t *testing.T, mc *cpu.CPU, pattern string) {
	t.Helper()
	err := mc.ExecuteInstruction()
	if !curated.Is(err, pattern) {
		t.Fatalf("expected fault %q but got %v", pattern, err)
	}
	if !mc.Halted {
		t.Errorf("cpu not halted after fault")
	}
	if !curated.Is(mc.Fault, pattern) || !curated.Is(mc.LastResult.Fault, pattern) {
		t.Errorf("fault not recorded")
	}
}
