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
	"fmt"
	"strings"

	"github.com/jetsetilly/ls8/hardware/cpu/execution"
	"github.com/jetsetilly/ls8/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Data entries are bytes that could not be decoded as an instruction. Decoded
// entries have been decoded as though they are reached by the program. Only
// Executed entries are known to have been reached.
const (
	EntryLevelData EntryLevel = iota
	EntryLevelDecoded
	EntryLevelExecuted
)

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// copy of the CPU execution. for entries that have not been executed
	// only the Address, Defn, OpCode, Operands and ByteCount fields are
	// meaningful
	Result execution.Result

	// string representations of information in execution.Result
	Address  string
	Bytecode string
	Operator string
	Operand  string

	// the number of times the entry has been executed
	ExecutionCount int
}

func newEntry(address uint16, data []uint8) *Entry {
	e := &Entry{}
	e.Result.Reset()
	e.Result.Address = address
	e.Result.OpCode = data[0]
	e.Address = fmt.Sprintf("%#02x", address)

	defn, err := instructions.Decode(data[0])
	if err != nil || len(data) < defn.Bytes() {
		e.Level = EntryLevelData
		e.Result.ByteCount = 1
		e.Bytecode = fmt.Sprintf("%02x", data[0])
		e.Operator = ".byte"
		e.Operand = fmt.Sprintf("%#02x", data[0])
		return e
	}

	e.Level = EntryLevelDecoded
	e.Result.Defn = defn
	e.Result.ByteCount = defn.Bytes()
	copy(e.Result.Operands[:], data[1:defn.Bytes()])
	e.Result.Final = true

	b := strings.Builder{}
	for i := 0; i < defn.Bytes(); i++ {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteString(fmt.Sprintf("%02x", data[i]))
	}
	e.Bytecode = b.String()

	e.Operator = defn.Mnemonic
	e.Operand = strings.TrimSpace(strings.TrimPrefix(defn.Format(e.Result.Operands[:defn.Operands]), defn.Mnemonic))

	return e
}

// Size returns the number of bytes taken by the entry.
func (e *Entry) Size() int {
	return e.Result.ByteCount
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// some fields in the disassembly entry are updated on every execution.
func (e *Entry) updateExecutionEntry(result execution.Result) {
	e.Result = result
	e.Level = EntryLevelExecuted
	e.ExecutionCount++
}
