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

package disassembly

import (
	"sync"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/cpu/execution"
	"github.com/jetsetilly/ls8/hardware/memory/addresses"
	"github.com/jetsetilly/ls8/hardware/memory/bus"
)

// Disassembly represents the annotated disassembly of an LS-8 program.
type Disassembly struct {
	crit sync.Mutex

	// entries in address order
	entries []*Entry

	// index into entries for every address. an address in the middle of an
	// instruction indexes the entry of the instruction
	index [addresses.Capacity]int
}

// FromProgram disassembles the program bytes. The program is assumed to begin
// at address zero.
func FromProgram(data []byte) *Disassembly {
	dsm := &Disassembly{}
	dsm.decode(data)
	return dsm
}

// FromMemory disassembles the first n bytes of memory.
func FromMemory(mem bus.DebugBus, n int) (*Disassembly, error) {
	if n > addresses.Capacity {
		n = addresses.Capacity
	}

	data := make([]byte, n)
	for i := range data {
		v, err := mem.Peek(uint16(i))
		if err != nil {
			return nil, curated.Errorf("disassembly: %v", err)
		}
		data[i] = v
	}

	return FromProgram(data), nil
}

func (dsm *Disassembly) decode(data []byte) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	if len(data) > addresses.Capacity {
		data = data[:addresses.Capacity]
	}

	dsm.entries = dsm.entries[:0]
	for i := range dsm.index {
		dsm.index[i] = -1
	}

	for a := 0; a < len(data); {
		e := newEntry(uint16(a), data[a:])
		for i := 0; i < e.Size(); i++ {
			dsm.index[a+i] = len(dsm.entries)
		}
		dsm.entries = append(dsm.entries, e)
		a += e.Size()
	}
}

// Len returns the number of entries in the disassembly.
func (dsm *Disassembly) Len() int {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	return len(dsm.entries)
}

// Get returns the entry for the address. The address can be in the middle of
// an instruction. The second return value is false if the address is not in
// the disassembly.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	if int(address) >= len(dsm.index) {
		return nil, false
	}

	i := dsm.index[address]
	if i < 0 {
		return nil, false
	}

	return dsm.entries[i], true
}

// Entries returns all entries in address order.
func (dsm *Disassembly) Entries() []*Entry {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	e := make([]*Entry, len(dsm.entries))
	copy(e, dsm.entries)
	return e
}

// ExecutedEntry updates the entry for the executed instruction. Results of
// instructions that faulted before they were decoded are ignored.
func (dsm *Disassembly) ExecutedEntry(result execution.Result) {
	if result.Defn == nil {
		return
	}

	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	if int(result.Address) >= len(dsm.index) {
		return
	}

	i := dsm.index[result.Address]
	if i < 0 {
		return
	}

	// programs that modify themselves or that jump into the middle of an
	// instruction will disagree with the disassembly. the entry is replaced
	e := dsm.entries[i]
	if e.Result.Address != result.Address || e.Result.OpCode != result.OpCode {
		data := []byte{result.OpCode, result.Operands[0], result.Operands[1]}
		n := newEntry(result.Address, data[:result.Defn.Bytes()])
		n.updateExecutionEntry(result)
		dsm.entries[i] = n
		return
	}

	e.updateExecutionEntry(result)
}
