package monitor

import (
	"errors"

	"github.com/ezrec/brookshear/translate"
)

var f = translate.From

var (
	ErrSelection = errors.New(f("selection out of range"))
	ErrHex       = errors.New(f("not a hex number"))
)
