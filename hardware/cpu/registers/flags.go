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

package registers

import (
	"strings"
)

// Flags is the FL register. Only the lowest three bits are used. In byte
// form the register is 00000LGE.
type Flags struct {
	Less    bool
	Greater bool
	Equal   bool
}

// Bit values of the flags in byte form.
const (
	FlagEqual   = uint8(0b001)
	FlagGreater = uint8(0b010)
	FlagLess    = uint8(0b100)
)

// Label returns the canonical name for the flags register.
func (fl Flags) Label() string {
	return "FL"
}

// String returns the flags as three characters. Upper case indicates that the
// flag is set. For example "lGe" means that only the greater than flag is set.
func (fl Flags) String() string {
	s := strings.Builder{}

	if fl.Less {
		s.WriteRune('L')
	} else {
		s.WriteRune('l')
	}
	if fl.Greater {
		s.WriteRune('G')
	} else {
		s.WriteRune('g')
	}
	if fl.Equal {
		s.WriteRune('E')
	} else {
		s.WriteRune('e')
	}

	return s.String()
}

// Reset all flags.
func (fl *Flags) Reset() {
	fl.FromValue(0)
}

// Value converts the Flags struct into a value suitable for pushing onto the
// stack.
func (fl Flags) Value() uint8 {
	var v uint8

	if fl.Less {
		v |= FlagLess
	}
	if fl.Greater {
		v |= FlagGreater
	}
	if fl.Equal {
		v |= FlagEqual
	}

	return v
}

// FromValue converts an 8 bit integer (taken from the stack, for example) to
// the Flags struct receiver. Unused bits are ignored.
func (fl *Flags) FromValue(v uint8) {
	fl.Less = v&FlagLess == FlagLess
	fl.Greater = v&FlagGreater == FlagGreater
	fl.Equal = v&FlagEqual == FlagEqual
}
