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

package keyboard

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/interrupts"
	"github.com/jetsetilly/ls8/logger"
	xterm "golang.org/x/term"
)

// Available returns true if stdin is a terminal.
func Available() bool {
	return xterm.IsTerminal(int(os.Stdin.Fd()))
}

// translate host key codes to the codes expected by LS-8 programs.
func translate(b byte) byte {
	switch b {
	case '\r':
		return '\n'
	case 0x7f:
		return 0x08
	}
	return b
}

// Pump reads keys from the reader and raises the keyboard interrupt for each
// one. Returns nil when the reader is exhausted or when the context is
// cancelled. The context is only checked between reads.
func Pump(ctx context.Context, r io.Reader, ints *interrupts.Controller) error {
	buf := make([]byte, 16)

	for ctx.Err() == nil {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			b = translate(b)
			logKey(b)
			ints.RaiseKey(b)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("keyboard: %v", err)
		}
	}

	return nil
}

// logKey is used by implementations of the Keyboard type.
func logKey(b byte) {
	logger.Logf(logger.Allow, "keyboard", "key %#02x", b)
}
