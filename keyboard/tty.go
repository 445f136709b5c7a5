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

//go:build !windows

package keyboard

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/interrupts"
	"github.com/jetsetilly/ls8/logger"
	"github.com/pkg/term"
)

const ttyPath = "/dev/tty"

// how long a read of the terminal waits before the context is checked again
const readTimeout = 100 * time.Millisecond

// Keyboard reads keys from the controlling terminal.
type Keyboard struct {
	tty  *term.Term
	ints *interrupts.Controller
}

// Attach puts the controlling terminal into cbreak mode and prepares to raise
// keyboard interrupts. Close() must be called to restore the terminal.
func Attach(ints *interrupts.Controller) (*Keyboard, error) {
	if !Available() {
		return nil, curated.Errorf("keyboard: stdin is not a terminal")
	}

	tty, err := term.Open(ttyPath, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("keyboard: %v", err)
	}

	err = tty.SetReadTimeout(readTimeout)
	if err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, curated.Errorf("keyboard: %v", err)
	}

	logger.Logf(logger.Allow, "keyboard", "attached to %s", ttyPath)

	return &Keyboard{
		tty:  tty,
		ints: ints,
	}, nil
}

// Run raises keyboard interrupts until the context is cancelled.
func (kb *Keyboard) Run(ctx context.Context) error {
	buf := make([]byte, 16)

	for ctx.Err() == nil {
		n, err := kb.tty.Read(buf)
		for _, b := range buf[:n] {
			b = translate(b)
			logKey(b)
			kb.ints.RaiseKey(b)
		}

		// a read that times out returns no data and possibly EOF
		if err != nil && !errors.Is(err, io.EOF) {
			return curated.Errorf("keyboard: %v", err)
		}
	}

	return nil
}

// Close restores the terminal to the mode it was in before Attach().
func (kb *Keyboard) Close() error {
	err := kb.tty.Restore()
	if err != nil {
		_ = kb.tty.Close()
		return curated.Errorf("keyboard: %v", err)
	}

	err = kb.tty.Close()
	if err != nil {
		return curated.Errorf("keyboard: %v", err)
	}

	return nil
}
