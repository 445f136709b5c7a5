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

package alu_test

import (
	"testing"

	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/cpu/alu"
	"github.com/jetsetilly/ls8/test"
)

// compute is a helper that fails the test if the operation returns an error
func compute(t *testing.T, op alu.Operation, a, b int) alu.Result {
	t.Helper()
	r, err := alu.Compute(op, uint8(a), uint8(b))
	test.DemandSuccess(t, err)
	return r
}

func TestWrapAround(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			test.ExpectEquality(t, int(compute(t, alu.Add, a, b).Value), (a+b)%256)
			test.ExpectEquality(t, int(compute(t, alu.Sub, a, b).Value), (a-b+256)%256)
			test.ExpectEquality(t, int(compute(t, alu.Mul, a, b).Value), (a*b)%256)
		}
	}
}

func TestDivision(t *testing.T) {
	test.ExpectEquality(t, compute(t, alu.Div, 100, 7).Value, 14)
	test.ExpectEquality(t, compute(t, alu.Mod, 100, 7).Value, 2)
	test.ExpectEquality(t, compute(t, alu.Div, 3, 7).Value, 0)

	for a := 0; a < 256; a++ {
		_, err := alu.Compute(alu.Div, uint8(a), 0)
		test.ExpectSuccess(t, curated.Is(err, alu.DivisionByZero))
		_, err = alu.Compute(alu.Mod, uint8(a), 0)
		test.ExpectSuccess(t, curated.Is(err, alu.DivisionByZero))
	}
}

func TestUnary(t *testing.T) {
	test.ExpectEquality(t, compute(t, alu.Inc, 255, 99).Value, 0)
	test.ExpectEquality(t, compute(t, alu.Dec, 0, 99).Value, 255)
	test.ExpectEquality(t, compute(t, alu.Not, 0b10100101, 99).Value, 0b01011010)
	test.ExpectSuccess(t, alu.Inc.Unary())
	test.ExpectFailure(t, alu.Add.Unary())
}

func TestBitwise(t *testing.T) {
	test.ExpectEquality(t, compute(t, alu.And, 0b1100, 0b1010).Value, 0b1000)
	test.ExpectEquality(t, compute(t, alu.Or, 0b1100, 0b1010).Value, 0b1110)
	test.ExpectEquality(t, compute(t, alu.Xor, 0b1100, 0b1010).Value, 0b0110)
}

func TestCompare(t *testing.T) {
	for a := 0; a < 256; a++ {
		r := compute(t, alu.Cmp, a, a)
		test.ExpectFailure(t, r.Store)
		test.ExpectSuccess(t, r.SetsFlags)
		test.ExpectEquality(t, r.Flags.String(), "lgE")
	}

	r := compute(t, alu.Cmp, 200, 10)
	test.ExpectEquality(t, r.Flags.String(), "lGe")

	r = compute(t, alu.Cmp, 10, 200)
	test.ExpectEquality(t, r.Flags.String(), "Lge")

	// comparisons are unsigned
	r = compute(t, alu.Cmp, 0x80, 0x7f)
	test.ExpectEquality(t, r.Flags.String(), "lGe")
}

func TestArithmeticDoesNotSetFlags(t *testing.T) {
	for _, op := range []alu.Operation{alu.Add, alu.Sub, alu.Mul, alu.Inc, alu.Dec, alu.And, alu.Or, alu.Xor, alu.Not} {
		r := compute(t, op, 5, 5)
		test.ExpectFailure(t, r.SetsFlags, op)
		test.ExpectSuccess(t, r.Store, op)
	}
}
