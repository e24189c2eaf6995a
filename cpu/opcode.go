package cpu

import (
	"fmt"

	"github.com/ezrec/brookshear/bank"
)

// Opcode is the operation selected by the top nibble of an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_UNKNOWN = Opcode(0x0) // unknown
	OP_LOAD    = Opcode(0x1) // load
	OP_LOADI   = Opcode(0x2) // loadi
	OP_STORE   = Opcode(0x3) // store
	OP_MOVE    = Opcode(0x4) // move
	OP_ADDI    = Opcode(0x5) // addi
	OP_ADDF    = Opcode(0x6) // addf
	OP_OR      = Opcode(0x7) // or
	OP_AND     = Opcode(0x8) // and
	OP_XOR     = Opcode(0x9) // xor
	OP_ROR     = Opcode(0xa) // ror
	OP_JUMP    = Opcode(0xb) // jump
	OP_HALT    = Opcode(0xc) // halt
)

const (
	CODE_WIDTH = 2 // Bytes per instruction.
)

// Instruction renders two adjacent memory cells as a 4 hex digit instruction.
func Instruction(a, b *bank.Cell) string {
	return a.String() + b.String()
}

// Code is a single 16-bit instruction word, nibble 0 being the most significant.
type Code struct {
	Word uint16
}

// MakeCode builds an instruction from its high and low bytes.
func MakeCode(hi, lo uint8) Code {
	return Code{Word: (uint16(hi) << 8) | uint16(lo)}
}

// Nibble returns the n'th hex digit of the instruction, 0 to 3.
func (code Code) Nibble(n int) int {
	return int(code.Word>>(4*(3-(n&3)))) & 0xf
}

// Opcode decodes the operation. Nibbles 0, d, e and f are OP_UNKNOWN.
func (code Code) Opcode() Opcode {
	op := Opcode(code.Nibble(0))
	if op > OP_HALT {
		op = OP_UNKNOWN
	}
	return op
}

// R is the first operand nibble.
func (code Code) R() int {
	return code.Nibble(1)
}

// S is the second operand nibble.
func (code Code) S() int {
	return code.Nibble(2)
}

// T is the third operand nibble.
func (code Code) T() int {
	return code.Nibble(3)
}

// XY is the low byte; an address or an immediate depending on the opcode.
func (code Code) XY() int {
	return int(code.Word & 0xff)
}

// String returns the instruction as 4 lowercase hex digits.
func (code Code) String() string {
	return fmt.Sprintf("%04x", code.Word)
}

// Mnemonic returns a readable disassembly of the instruction.
func (code Code) Mnemonic() (out string) {
	op := code.Opcode()

	switch op {
	case OP_LOAD:
		out = fmt.Sprintf("%v r%x [%02x]", op, code.R(), code.XY())
	case OP_LOADI:
		out = fmt.Sprintf("%v r%x %02x", op, code.R(), code.XY())
	case OP_STORE:
		out = fmt.Sprintf("%v r%x [%02x]", op, code.R(), code.XY())
	case OP_MOVE:
		out = fmt.Sprintf("%v r%x r%x", op, code.S(), code.T())
	case OP_ADDI, OP_ADDF, OP_OR, OP_AND, OP_XOR:
		out = fmt.Sprintf("%v r%x r%x r%x", op, code.R(), code.S(), code.T())
	case OP_ROR:
		out = fmt.Sprintf("%v r%x r%x", op, code.R(), code.T())
	case OP_JUMP:
		out = fmt.Sprintf("%v r%x %02x", op, code.R(), code.XY())
	case OP_HALT:
		out = op.String()
	case OP_UNKNOWN:
		out = fmt.Sprintf("%v %04x", op, code.Word)
	}

	return
}
