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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/memory/addresses"
)

// OutOfBounds is the pattern for errors returned when an address outside of
// memory is accessed.
const OutOfBounds = "memory: address out of bounds (%#02x)"

// RAM is the flat memory of the LS-8.
type RAM struct {
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{
		memory: make([]uint8, addresses.Capacity),
	}
}

// Reset sets all memory to zero.
func (ram *RAM) Reset() {
	for i := range ram.memory {
		ram.memory[i] = 0
	}
}

// Len returns the number of bytes in memory.
func (ram *RAM) Len() int {
	return len(ram.memory)
}

func (ram RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < len(ram.memory)/16; y++ {
		s.WriteString(fmt.Sprintf("%X- | ", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Read is an implementation of bus.Memory.
func (ram RAM) Read(address uint16) (uint8, error) {
	if int(address) >= len(ram.memory) {
		return 0, curated.Errorf(OutOfBounds, address)
	}
	return ram.memory[address], nil
}

// Write is an implementation of bus.Memory.
func (ram *RAM) Write(address uint16, data uint8) error {
	if int(address) >= len(ram.memory) {
		return curated.Errorf(OutOfBounds, address)
	}
	ram.memory[address] = data
	return nil
}

// Peek is an implementation of bus.DebugBus.
func (ram RAM) Peek(address uint16) (uint8, error) {
	return ram.Read(address)
}

// Poke is an implementation of bus.DebugBus.
func (ram *RAM) Poke(address uint16, value uint8) error {
	return ram.Write(address, value)
}

// Load copies data into memory starting at the origin address. Memory outside
// the range of data is not touched.
func (ram *RAM) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > len(ram.memory) {
		return curated.Errorf(OutOfBounds, int(origin)+len(data)-1)
	}
	copy(ram.memory[origin:], data)
	return nil
}
