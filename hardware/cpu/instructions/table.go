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

package instructions

import (
	"github.com/jetsetilly/ls8/curated"
	"github.com/jetsetilly/ls8/hardware/cpu/alu"
)

// UnknownInstruction is the pattern for errors returned by Decode() when the
// opcode is not in the instruction table.
const UnknownInstruction = "instructions: unknown instruction (%#02x)"

var table = []Definition{
	{OpCode: 0b00000000, Mnemonic: "NOP", Operands: 0, Operator: Nop, Category: Control},
	{OpCode: 0b00000001, Mnemonic: "HLT", Operands: 0, Operator: Hlt, Category: Control},
	{OpCode: 0b10011001, Mnemonic: "LDI", Operands: 2, Operator: Ldi, Category: Load},
	{OpCode: 0b10011000, Mnemonic: "LD", Operands: 2, Operator: Ld, Category: Load},
	{OpCode: 0b10011010, Mnemonic: "ST", Operands: 2, Operator: St, Category: Store},
	{OpCode: 0b01000011, Mnemonic: "PRN", Operands: 1, Operator: Prn, Category: Output},
	{OpCode: 0b01000010, Mnemonic: "PRA", Operands: 1, Operator: Pra, Category: Output},
	{OpCode: 0b10101000, Mnemonic: "ADD", Operands: 2, Operator: Add, Category: ALU, ALU: alu.Add},
	{OpCode: 0b10101001, Mnemonic: "SUB", Operands: 2, Operator: Sub, Category: ALU, ALU: alu.Sub},
	{OpCode: 0b10101010, Mnemonic: "MUL", Operands: 2, Operator: Mul, Category: ALU, ALU: alu.Mul},
	{OpCode: 0b10101011, Mnemonic: "DIV", Operands: 2, Operator: Div, Category: ALU, ALU: alu.Div},
	{OpCode: 0b10101100, Mnemonic: "MOD", Operands: 2, Operator: Mod, Category: ALU, ALU: alu.Mod},
	{OpCode: 0b01111000, Mnemonic: "INC", Operands: 1, Operator: Inc, Category: ALU, ALU: alu.Inc},
	{OpCode: 0b01111001, Mnemonic: "DEC", Operands: 1, Operator: Dec, Category: ALU, ALU: alu.Dec},
	{OpCode: 0b10100000, Mnemonic: "CMP", Operands: 2, Operator: Cmp, Category: ALU, ALU: alu.Cmp},
	{OpCode: 0b10110011, Mnemonic: "AND", Operands: 2, Operator: And, Category: ALU, ALU: alu.And},
	{OpCode: 0b10110001, Mnemonic: "OR", Operands: 2, Operator: Or, Category: ALU, ALU: alu.Or},
	{OpCode: 0b10110010, Mnemonic: "XOR", Operands: 2, Operator: Xor, Category: ALU, ALU: alu.Xor},
	{OpCode: 0b01110000, Mnemonic: "NOT", Operands: 1, Operator: Not, Category: ALU, ALU: alu.Not},
	{OpCode: 0b01001101, Mnemonic: "PUSH", Operands: 1, Operator: Push, Category: Stack},
	{OpCode: 0b01001100, Mnemonic: "POP", Operands: 1, Operator: Pop, Category: Stack},
	{OpCode: 0b01001000, Mnemonic: "CALL", Operands: 1, Operator: Call, Category: Subroutine, SetsPC: true},
	{OpCode: 0b00001001, Mnemonic: "RET", Operands: 0, Operator: Ret, Category: Subroutine, SetsPC: true},
	{OpCode: 0b01010000, Mnemonic: "JMP", Operands: 1, Operator: Jmp, Category: Flow, SetsPC: true},
	{OpCode: 0b01010001, Mnemonic: "JEQ", Operands: 1, Operator: Jeq, Category: Flow, SetsPC: true},
	{OpCode: 0b01010010, Mnemonic: "JNE", Operands: 1, Operator: Jne, Category: Flow, SetsPC: true},
	{OpCode: 0b01010100, Mnemonic: "JGT", Operands: 1, Operator: Jgt, Category: Flow, SetsPC: true},
	{OpCode: 0b01010011, Mnemonic: "JLT", Operands: 1, Operator: Jlt, Category: Flow, SetsPC: true},
	{OpCode: 0b01001010, Mnemonic: "INT", Operands: 1, Operator: Int, Category: Interrupt},
	{OpCode: 0b00001011, Mnemonic: "IRET", Operands: 0, Operator: Iret, Category: Interrupt, SetsPC: true},
}

// definitions is indexed by opcode. nil entries are unknown instructions.
var definitions [256]*Definition

func init() {
	for i := range table {
		defn := &table[i]

		if definitions[defn.OpCode] != nil {
			panic("instructions: duplicate opcode " + defn.Mnemonic)
		}

		if OperandCount(defn.OpCode) != defn.Operands {
			panic("instructions: operand count does not agree with opcode for " + defn.Mnemonic)
		}

		if (defn.Category == ALU) != (defn.ALU != alu.None) {
			panic("instructions: ALU operation does not agree with category for " + defn.Mnemonic)
		}

		definitions[defn.OpCode] = defn
	}
}

// OperandCount returns the number of operands for the opcode as encoded in
// the two most significant bits.
func OperandCount(opcode uint8) int {
	return int(opcode>>6) & 0b11
}

// Decode returns the definition for the opcode.
func Decode(opcode uint8) (*Definition, error) {
	defn := definitions[opcode]
	if defn == nil {
		return nil, curated.Errorf(UnknownInstruction, opcode)
	}
	return defn, nil
}

// GetDefinitions returns the list of instruction definitions in the order they
// are defined. The returned slice is a copy.
func GetDefinitions() []Definition {
	d := make([]Definition, len(table))
	copy(d, table)
	return d
}
