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

// Package addresses defines the layout of the LS-8 address space.
package addresses

// Capacity is the number of addressable bytes.
const Capacity = 256

// Memtop is the highest valid address.
const Memtop = uint16(Capacity - 1)

// StackTop is the initial value of the stack pointer. The stack is empty when
// the stack pointer is at or above this address. The first push writes to
// StackTop-1.
const StackTop = uint8(0xf4)

// KeyPressed is the address where the most recent key press is written before
// the keyboard interrupt is serviced.
const KeyPressed = uint16(0xf4)

// Vectors is the address of the interrupt vector table. The vector for
// interrupt N is at Vectors+N.
const Vectors = uint16(0xf8)

// NumVectors is the number of entries in the interrupt vector table.
const NumVectors = 8

// Vector returns the address of the vector for the interrupt line.
func Vector(line int) uint16 {
	return Vectors + uint16(line&(NumVectors-1))
}
