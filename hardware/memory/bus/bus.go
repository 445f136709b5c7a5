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

// Package bus defines how the CPU sees memory. The CPU does not care what
// implements the memory, only that it can be read and written.
package bus

// Memory defines the operations for the memory system when accessed from the
// CPU.
//
// Addresses are uint16 so that an address one past the end of an 8-bit
// address space can be expressed (and refused) by the implementation.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebugBus defines the meta-operations for memory. Think of these functions
// as "debugging" functions, that is operations outside of the normal
// operation of the machine. Used by the loader and the monitor.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}
