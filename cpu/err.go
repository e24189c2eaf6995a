package cpu

import (
	"errors"

	"github.com/ezrec/brookshear/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpEmpty = errors.New(f("ip empty"))
	ErrIpRange = errors.New(f("ip out of range"))

	// Instruction decode errors
	ErrOpcodeUnknown  = errors.New(f("instruction could not be completed"))
	ErrInvalidOperand = errors.New(f("invalid operand"))

	// Program image errors
	ErrParseHex = errors.New(f("not a hex digit"))
)

// ErrOpcode identifies the instruction that failed.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x %v", eo.Word, Code(eo).Mnemonic())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrParse locates a bad digit in a program text.
type ErrParse struct {
	Offset int
	Text   string
}

func (err ErrParse) Error() string {
	return f("offset %d '%v' %v", err.Offset, err.Text, ErrParseHex)
}

func (err ErrParse) Unwrap() error {
	return ErrParseHex
}
