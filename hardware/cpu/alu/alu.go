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

// Package alu implements the arithmetic logic unit of the LS-8. The ALU is
// stateless. The CPU hands it an operation and the values of up to two
// registers and is given back the result and the flags produced by the
// operation. It is the responsibility of the CPU to store the result.
//
// All arithmetic is unsigned and modulo 256. Overflow is not an error. The
// only error condition is division (or modulo) by zero, which is detected
// before the operation is attempted.
package alu

import (
	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/cpu/registers"
)

// DivisionByZero is the pattern for errors returned when the divisor of a DIV
// or MOD operation is zero.
const DivisionByZero = "alu: division by zero (%s %d, 0)"

// Operation is the tag for each ALU operation.
type Operation int

// List of valid ALU operations. None is used by instructions that do not
// involve the ALU.
const (
	None Operation = iota
	Add
	Sub
	Mul
	Div
	Mod
	Inc
	Dec
	Cmp
	And
	Or
	Xor
	Not
)

func (op Operation) String() string {
	switch op {
	case None:
		return "none"
	case Add:
		return "ADD"
	case Sub:
		return "SUB"
	case Mul:
		return "MUL"
	case Div:
		return "DIV"
	case Mod:
		return "MOD"
	case Inc:
		return "INC"
	case Dec:
		return "DEC"
	case Cmp:
		return "CMP"
	case And:
		return "AND"
	case Or:
		return "OR"
	case Xor:
		return "XOR"
	case Not:
		return "NOT"
	}
	return "unknown"
}

// Unary returns true if the operation only uses the first operand.
func (op Operation) Unary() bool {
	return op == Inc || op == Dec || op == Not
}

// Result of an ALU operation.
type Result struct {
	// the result of the operation. always zero for CMP
	Value uint8

	// Store is false if Value should not be written back to a register
	Store bool

	// Flags is only meaningful if SetsFlags is true
	Flags     registers.Flags
	SetsFlags bool
}

// Compute performs the operation on the a and b operands. The b operand is
// ignored by unary operations.
func Compute(op Operation, a uint8, b uint8) (Result, error) {
	r := Result{Store: true}

	switch op {
	case Add:
		r.Value = a + b
	case Sub:
		r.Value = a - b
	case Mul:
		r.Value = a * b
	case Div:
		if b == 0 {
			return Result{}, curated.Errorf(DivisionByZero, op, a)
		}
		r.Value = a / b
	case Mod:
		if b == 0 {
			return Result{}, curated.Errorf(DivisionByZero, op, a)
		}
		r.Value = a % b
	case Inc:
		r.Value = a + 1
	case Dec:
		r.Value = a - 1
	case Cmp:
		r.Store = false
		r.SetsFlags = true
		r.Flags.Equal = a == b
		r.Flags.Greater = a > b
		r.Flags.Less = a < b
	case And:
		r.Value = a & b
	case Or:
		r.Value = a | b
	case Xor:
		r.Value = a ^ b
	case Not:
		r.Value = ^a
	default:
		r.Store = false
	}

	return r, nil
}
