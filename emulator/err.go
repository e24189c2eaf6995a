package emulator

import (
	"errors"

	"github.com/ezrec/brookshear/cpu"
	"github.com/ezrec/brookshear/translate"
)

var f = translate.From

var (
	ErrStepLimit = errors.New(f("step limit reached"))
	ErrBreak     = errors.New(f("break condition"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip   int
	Code cpu.Code
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("ip %02x (%v) %v", err.Ip, err.Code, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrCondition is a break condition that can not be parsed or evaluated.
type ErrCondition struct {
	Expr string
	Err  error
}

func (err ErrCondition) Error() string {
	return f("condition '%v' %v", err.Expr, err.Err)
}

func (err ErrCondition) Unwrap() error {
	return err.Err
}
