package monitor

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ezrec/brookshear/bank"
	"github.com/ezrec/brookshear/cpu"
	"github.com/ezrec/brookshear/emulator"
	"github.com/ezrec/brookshear/translate"
)

const (
	MENU = "Type r to edit a register, m to edit a memory cell,\n" +
		"e to execute, i to edit the instruction counter,\n" +
		"b to set a break condition, enter to step, or anything else to quit. "

	BANNER_EXECUTION = "-----EXECUTION-----"
	BANNER_HALTED    = "---PROGRAM HALTED--"
	BANNER_END       = "---END EXECUTION---"
)

// Monitor drives an emulator from operator commands.
type Monitor struct {
	Verbose bool // If set, commands are logged.
	Prompts bool // If set, prompts are written before each read.

	emu  *emulator.Emulator
	in   *bufio.Scanner
	out  io.Writer
	done bool
}

// NewMonitor creates a monitor reading commands from in, and writing the
// machine display to out. Unknown opcodes are reported on out.
func NewMonitor(emu *emulator.Emulator, in io.Reader, out io.Writer) (mon *Monitor) {
	mon = &Monitor{
		Prompts: true,
		emu:     emu,
		in:      bufio.NewScanner(in),
		out:     out,
	}

	emu.Cpu.Diagnostic = func(ip int, err error) {
		translate.Fprintf(mon.out, "%02x: %v\n", ip, err)
	}

	return
}

// Done is set once the operator has quit.
func (mon *Monitor) Done() bool {
	return mon.done
}

// Run displays the machine and performs commands until the operator
// quits or the input ends.
func (mon *Monitor) Run() (err error) {
	for !mon.done {
		mon.Display()

		var line string
		line, err = mon.ReadLine(MENU)
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		err = mon.Command(line)
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}
	}

	return
}

// ReadLine prompts (if enabled) and reads one line of input.
func (mon *Monitor) ReadLine(prompt string) (line string, err error) {
	if mon.Prompts {
		translate.Fprintf(mon.out, prompt)
	}

	if !mon.in.Scan() {
		err = mon.in.Err()
		if err == nil {
			err = io.EOF
		}
		err = errors.Wrapf(err, "monitor: read")
		return
	}

	line = strings.TrimSpace(mon.in.Text())
	return
}

// Command performs a single operator command.
func (mon *Monitor) Command(line string) (err error) {
	if mon.Verbose {
		log.Printf("monitor: command %q", line)
	}

	switch line {
	case "r":
		err = mon.editBank(mon.emu.Cpu.Register, "Which register would you like to edit? ",
			"What value would you like to put into register %x? ")
	case "m":
		err = mon.editBank(mon.emu.Cpu.Memory, "Which memory cell would you like to edit? ",
			"What value would you like to put into memory cell %x? ")
	case "i":
		err = mon.editIp()
	case "e":
		mon.Execute()
	case "b":
		err = mon.editBreak()
	case "":
		mon.Step()
	default:
		mon.done = true
	}

	return
}

// complain reports an invalid input, which is never fatal.
func (mon *Monitor) complain(err error) {
	translate.Fprintf(mon.out, "%v\n", err)
}

// readHex reads a hex number in 0..limit-1, asking again until one is given.
func (mon *Monitor) readHex(prompt string, limit int) (value int, err error) {
	for {
		var line string
		line, err = mon.ReadLine(prompt)
		if err != nil {
			return
		}

		var v uint64
		v, err = strconv.ParseUint(strings.TrimPrefix(line, "0x"), 16, 16)
		switch {
		case err != nil:
			mon.complain(errors.Wrapf(ErrHex, "'%v'", line))
		case int(v) >= limit:
			mon.complain(errors.Wrapf(ErrSelection, "0x%x", v))
		default:
			value = int(v)
			err = nil
			return
		}
	}
}

// editBank writes a hex string into consecutive cells of a bank.
func (mon *Monitor) editBank(b *bank.Bank, which string, what string) (err error) {
	index, err := mon.readHex(which, b.Len())
	if err != nil {
		return
	}

	for {
		var line string
		line, err = mon.ReadLine(f(what, index))
		if err != nil {
			return
		}

		var prog *cpu.Program
		prog, err = cpu.ParseProgram(index, line)
		if err == nil {
			err = prog.Load(b)
		}
		if err == nil {
			if mon.Verbose {
				log.Printf("monitor: %v %02x: %d bytes", b.Kind, index, len(prog.Data))
			}
			return
		}

		mon.complain(errors.Wrapf(err, "%v %02x", b.Kind, index))
	}
}

func (mon *Monitor) editIp() (err error) {
	ip, err := mon.readHex("What hex value would you like to set the instruction counter at? ",
		mon.emu.Cpu.Memory.Len())
	if err != nil {
		return
	}

	err = mon.emu.Cpu.SetIp(ip)
	return
}

func (mon *Monitor) editBreak() (err error) {
	for {
		var line string
		line, err = mon.ReadLine("Break when (empty to clear)? ")
		if err != nil {
			return
		}

		if len(line) == 0 {
			mon.emu.Break = nil
			return
		}

		var cond *emulator.Condition
		cond, err = emulator.ParseCondition(line)
		if err == nil {
			mon.emu.Break = cond
			return
		}

		mon.complain(err)
	}
}

// halted reports, then clears, a halt.
func (mon *Monitor) halted() {
	if !mon.emu.Cpu.Halted {
		return
	}

	translate.Fprintf(mon.out, "%s\n", BANNER_HALTED)
	mon.emu.Cpu.Resume()
}

// Execute runs the machine until it stops.
func (mon *Monitor) Execute() {
	translate.Fprintf(mon.out, "%s\n", BANNER_EXECUTION)

	_, err := mon.emu.Run()
	if err != nil {
		mon.complain(err)
	}

	mon.halted()
	translate.Fprintf(mon.out, "%s\n", BANNER_END)
}

// Step executes a single instruction.
func (mon *Monitor) Step() {
	state := mon.emu.State()
	if state == cpu.STATE_EXHAUSTED {
		mon.complain(errors.Wrapf(cpu.ErrIpEmpty, "ip %02x", mon.emu.Cpu.Ip))
		return
	}

	_, err := mon.emu.Tick()
	if err != nil {
		mon.complain(err)
	}

	mon.halted()
}
