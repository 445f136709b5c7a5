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

package execution

import (
	"github.com/jetsetilly/ls8/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	// a fault can happen before the instruction is fully decoded so the
	// remaining checks are meaningless
	if r.Fault != nil {
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: finalised execution has no instruction definition")
	}

	if r.OpCode != r.Defn.OpCode {
		return curated.Errorf("cpu: opcode does not match definition (%#02x instead of %#02x)", r.OpCode, r.Defn.OpCode)
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes() {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes())
	}

	// only instructions that can set the PC should have done so
	if r.SetPC && !r.Defn.SetsPC {
		return curated.Errorf("cpu: program counter set by %s", r.Defn.Mnemonic)
	}

	if r.Interrupt >= 8 {
		return curated.Errorf("cpu: interrupt line out of range (%d)", r.Interrupt)
	}

	return nil
}
