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

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/memory/addresses"
)

// LoadError is the pattern for all errors returned by the loader package.
const LoadError = "loader: %v"

// the number of binary digits in a program line
const tokenLength = 8

// Parse reads an LS-8 program from the reader and returns the program bytes.
// The program is always loaded at address zero.
func Parse(r io.Reader) ([]byte, error) {
	var data []byte

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		s := scanner.Text()
		if i := strings.IndexRune(s, '#'); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)

		if len(s) == 0 {
			continue
		}

		v, err := parseToken(s)
		if err != nil {
			return nil, curated.Errorf(LoadError, fmt.Sprintf("line %d: %v", line, err))
		}

		if len(data) >= addresses.Capacity {
			return nil, curated.Errorf(LoadError, fmt.Sprintf("line %d: program too long (more than %d bytes)", line, addresses.Capacity))
		}

		data = append(data, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	return data, nil
}

// parseToken converts a string of eight binary digits into a byte.
func parseToken(s string) (uint8, error) {
	if len(s) != tokenLength {
		return 0, fmt.Errorf("%q is not an %d digit binary number", s, tokenLength)
	}

	var v uint8
	for _, r := range s {
		v <<= 1
		switch r {
		case '0':
		case '1':
			v |= 0x01
		default:
			return 0, fmt.Errorf("%q is not an %d digit binary number", s, tokenLength)
		}
	}

	return v, nil
}
