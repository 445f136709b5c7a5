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

package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/loader"
	"github.com/jetsetilly/ls8/test"
)

const mult = `# mult.ls8
10011001 # LDI R0,8
00000000
00001000

10011001 # LDI R1,9
00000001
00001001
10101010 # MUL R0,R1
00000000
00000001
01000011 # PRN R0
00000000
00000001 # HLT
`

func TestParse(t *testing.T) {
	data, err := loader.Parse(strings.NewReader(mult))
	test.DemandSuccess(t, err)

	expected := []byte{0x99, 0x00, 0x08, 0x99, 0x01, 0x09, 0xaa, 0x00, 0x01, 0x43, 0x00, 0x01}
	test.DemandEquality(t, len(data), len(expected))
	for i := range expected {
		test.ExpectEquality(t, data[i], expected[i], i)
	}

	// whitespace around tokens is allowed
	data, err = loader.Parse(strings.NewReader("  00000001\t\r\n\n   # comment\n"))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(data), 1)
	test.ExpectEquality(t, data[0], uint8(1))

	data, err = loader.Parse(strings.NewReader(""))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(data), 0)
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"0000000",
		"000000001",
		"0000000a",
		"00000000 00000001",
		"LDI R0,8",
		"00000000 junk # comment",
	}

	for _, b := range bad {
		_, err := loader.Parse(strings.NewReader(b))
		test.ExpectSuccess(t, curated.Is(err, loader.LoadError), b)
	}

	_, err := loader.Parse(strings.NewReader("00000000\n\nxx\n"))
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "line 3"))

	// a full memory is fine. one more byte is not
	full := strings.Repeat("00000000\n", 256)
	data, err := loader.Parse(strings.NewReader(full))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(data), 256)

	_, err = loader.Parse(strings.NewReader(full + "00000001\n"))
	test.ExpectSuccess(t, curated.Is(err, loader.LoadError))
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "mult.ls8")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(mult), 0o600))

	ld := loader.NewLoader(fn)
	test.ExpectFailure(t, ld.HasLoaded())
	test.ExpectEquality(t, ld.ShortName(), "mult")

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Data), 12)
	test.ExpectEquality(t, len(ld.Hash), 40)

	// hash is of the program bytes and not of the source text
	fromData := loader.NewLoaderFromData("mult", ld.Data)
	test.ExpectEquality(t, fromData.Hash, ld.Hash)

	// hash mismatch
	ld = loader.NewLoader(fn)
	ld.Hash = "0000"
	test.ExpectSuccess(t, curated.Is(ld.Load(), loader.LoadError))

	// missing file
	ld = loader.NewLoader(filepath.Join(t.TempDir(), "missing.ls8"))
	test.ExpectSuccess(t, curated.Is(ld.Load(), loader.LoadError))

	// file with no program
	empty := filepath.Join(t.TempDir(), "empty.ls8")
	test.DemandSuccess(t, os.WriteFile(empty, []byte("# nothing here\n"), 0o600))
	ld = loader.NewLoader(empty)
	test.ExpectSuccess(t, curated.Is(ld.Load(), loader.LoadError))
}
