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

package memory_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/memory"
	"github.com/jetsetilly/ls8/hardware/memory/addresses"
	"github.com/jetsetilly/ls8/hardware/memory/bus"
	"github.com/jetsetilly/ls8/test"
)

func TestReadWrite(t *testing.T) {
	ram := memory.NewRAM()
	test.ExpectEquality(t, ram.Len(), addresses.Capacity)

	for a := uint16(0); a <= addresses.Memtop; a++ {
		test.ExpectSuccess(t, ram.Write(a, uint8(a)^0xff))
	}
	for a := uint16(0); a <= addresses.Memtop; a++ {
		v, err := ram.Read(a)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint8(a)^0xff)
	}

	ram.Reset()
	v, err := ram.Read(0x10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0)
}

func TestOutOfBounds(t *testing.T) {
	ram := memory.NewRAM()

	_, err := ram.Read(addresses.Capacity)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))

	err = ram.Write(addresses.Capacity+10, 1)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))

	err = ram.Load(0xf0, make([]uint8, 17))
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfBounds))
}

func TestLoad(t *testing.T) {
	ram := memory.NewRAM()
	test.ExpectSuccess(t, ram.Load(0x10, []uint8{1, 2, 3}))

	v, _ := ram.Peek(0x12)
	test.ExpectEquality(t, v, 3)
}

func TestInterfaces(t *testing.T) {
	var _ bus.Memory = memory.NewRAM()
	var _ bus.DebugBus = memory.NewRAM()
}

func TestString(t *testing.T) {
	ram := memory.NewRAM()
	ram.Write(0xff, 0xab)
	s := ram.String()
	test.ExpectSuccess(t, strings.HasSuffix(s, "F- |  00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 ab"))
}

func TestVector(t *testing.T) {
	test.ExpectEquality(t, addresses.Vector(0), 0xf8)
	test.ExpectEquality(t, addresses.Vector(7), 0xff)
}
