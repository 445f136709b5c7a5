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

// Package output is the side-channel used by the PRN and PRA instructions. The
// CPU emits values to an implementation of the Channel interface.
package output

import (
	"fmt"
	"io"
)

// Mode describes how an emitted value should be presented.
type Mode int

// List of valid Mode values.
const (
	// Decimal representation of the value
	Decimal Mode = iota

	// the character represented by the value
	Character
)

func (m Mode) String() string {
	switch m {
	case Decimal:
		return "decimal"
	case Character:
		return "character"
	}
	return "unknown"
}

// Channel receives values from the CPU in the order the instructions are
// executed. Implementations should not block for long because the CPU waits
// for Emit() to return.
type Channel interface {
	Emit(value uint8, mode Mode)
}

// Writer is an implementation of Channel that prints to an io.Writer. Decimal
// values are printed on a line of their own and characters are written
// unadorned.
type Writer struct {
	w io.Writer
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Emit implements the Channel interface.
func (o *Writer) Emit(value uint8, mode Mode) {
	switch mode {
	case Character:
		o.w.Write([]byte{value})
	default:
		fmt.Fprintf(o.w, "%d\n", value)
	}
}

// Discard is a Channel that ignores all values.
var Discard Channel = discard{}

type discard struct{}

func (_ discard) Emit(_ uint8, _ Mode) {}

// Emission records a single call to Emit().
type Emission struct {
	Value uint8
	Mode  Mode
}

// Recorder is an implementation of Channel that remembers every emitted
// value. Useful for the monitor and for testing.
type Recorder struct {
	Emissions []Emission
}

// Emit implements the Channel interface.
func (r *Recorder) Emit(value uint8, mode Mode) {
	r.Emissions = append(r.Emissions, Emission{Value: value, Mode: mode})
}

// Clear forgets all emissions.
func (r *Recorder) Clear() {
	r.Emissions = r.Emissions[:0]
}
