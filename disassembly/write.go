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
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool

	// include data entries in the output
	Data bool

	// include the execution count of executed entries
	Executed bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) {
	for _, e := range dsm.Entries() {
		dsm.WriteEntry(output, attr, e)
	}
}

// WriteRange writes count entries beginning with the entry at the address.
func (dsm *Disassembly) WriteRange(output io.Writer, attr WriteAttr, address uint16, count int) {
	for _, e := range dsm.Entries() {
		if count <= 0 {
			return
		}
		if e.Result.Address < address {
			continue
		}
		if e.Level == EntryLevelData && !attr.Data {
			continue
		}
		dsm.WriteEntry(output, attr, e)
		count--
	}
}

// WriteEntry writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) {
	if e == nil {
		return
	}

	if e.Level == EntryLevelData && !attr.Data {
		return
	}

	fmt.Fprintf(output, "%-4s ", e.Address)

	if attr.ByteCode {
		fmt.Fprintf(output, "%-8s ", e.Bytecode)
	}

	fmt.Fprintf(output, "%-5s %s", e.Operator, e.Operand)

	if attr.Executed && e.Level == EntryLevelExecuted {
		fmt.Fprintf(output, " [x%d]", e.ExecutionCount)
	}

	fmt.Fprintln(output)
}
