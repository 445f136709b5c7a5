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

//go:build windows

package keyboard

import (
	"context"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/interrupts"
)

// Keyboard is not supported on windows. Use Pump() with stdin instead.
type Keyboard struct{}

// Attach always fails on windows.
func Attach(_ *interrupts.Controller) (*Keyboard, error) {
	return nil, curated.Errorf("keyboard: not supported on windows")
}

// Run does nothing.
func (kb *Keyboard) Run(_ context.Context) error {
	return nil
}

// Close does nothing.
func (kb *Keyboard) Close() error {
	return nil
}
