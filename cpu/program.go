package cpu

import (
	"iter"
	"strconv"
	"strings"

	"github.com/ezrec/brookshear/bank"
)

// Program is a memory image, placed at Origin.
type Program struct {
	Origin int
	Data   []uint8
}

// ParseProgram converts hex text into consecutive bytes: each pair of
// digits is one byte, and an odd trailing digit is a byte of its own.
// Whitespace and '_' separators are ignored.
func ParseProgram(origin int, text string) (prog *Program, err error) {
	digits := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '_':
			return -1
		}
		return r
	}, text)

	data := make([]uint8, 0, (len(digits)+1)/2)
	for n := 0; n < len(digits); n += 2 {
		pair := digits[n:min(n+2, len(digits))]
		var value uint64
		value, err = strconv.ParseUint(pair, 16, 8)
		if err != nil {
			err = ErrParse{Offset: n, Text: pair}
			return
		}
		data = append(data, uint8(value))
	}

	prog = &Program{
		Origin: origin,
		Data:   data,
	}

	return
}

// Load writes the program into a bank. Nothing is written unless the
// whole image fits.
func (prog *Program) Load(b *bank.Bank) (err error) {
	if len(prog.Data) == 0 {
		return
	}

	for _, addr := range []int{prog.Origin, prog.Origin + len(prog.Data) - 1} {
		_, err = b.Cell(addr)
		if err != nil {
			return
		}
	}

	for n, value := range prog.Data {
		err = b.Write(prog.Origin+n, int(value))
		if err != nil {
			return
		}
	}

	return
}

// Codes iterates over the instruction words of the program, by address.
// A trailing odd byte is not an instruction.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(ip int, code Code) bool) {
		for n := 0; n+1 < len(prog.Data); n += CODE_WIDTH {
			if !yield(prog.Origin+n, MakeCode(prog.Data[n], prog.Data[n+1])) {
				return
			}
		}
	}
}
