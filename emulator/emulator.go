// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"go.starlark.net/starlark"

	"github.com/ezrec/brookshear/cpu"
	"github.com/ezrec/brookshear/internal"
)

const (
	TICK_LIMIT = 1 << 16 // Default instruction budget for Run.
)

// Emulator state. One machine, plus the policy for running it.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Limit int        // Instructions allowed per Run; 0 is unlimited.
	Break *Condition // If set, Run stops once the condition holds.
}

// NewEmulator creates a new emulator.
func NewEmulator(memory int, registers int, ip int) (emu *Emulator, err error) {
	cp, err := cpu.NewCpu(memory, registers, ip)
	if err != nil {
		return
	}

	emu = &Emulator{
		Cpu:   cp,
		Limit: TICK_LIMIT,
	}

	return
}

// Reset clears the machine, loads a program and points the instruction
// pointer at its origin.
func (emu *Emulator) Reset(prog *cpu.Program) (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	if prog == nil {
		return
	}

	err = emu.Load(prog)
	if err != nil {
		return
	}

	err = emu.Cpu.SetIp(prog.Origin)
	return
}

// Load writes a program into memory, leaving the instruction pointer alone.
func (emu *Emulator) Load(prog *cpu.Program) (err error) {
	if emu.Verbose {
		log.Printf("emulator: load %d bytes at %02x", len(prog.Data), prog.Origin)
	}

	return prog.Load(emu.Cpu.Memory)
}

// Code returns the instruction at the instruction pointer.
func (emu *Emulator) Code() (code cpu.Code, ok bool) {
	code, err := emu.Cpu.FetchCode()
	ok = err == nil
	return
}

// State returns the run state of the machine.
func (emu *Emulator) State() cpu.State {
	switch {
	case emu.Cpu.Halted:
		return cpu.STATE_HALTED
	case emu.Cpu.Ip+cpu.CODE_WIDTH > emu.Cpu.Memory.Len():
		return cpu.STATE_EXHAUSTED
	}

	return cpu.STATE_CONTINUED
}

// Defines returns an iterator over the machine state, as seen by break
// conditions: ip, halted, ticks, mem, and one rN per register.
func (emu *Emulator) Defines() iter.Seq2[string, starlark.Value] {
	mem := make(starlark.Tuple, 0, emu.Cpu.Memory.Len())
	for _, value := range emu.Cpu.Memory.All() {
		mem = append(mem, starlark.MakeInt(int(value)))
	}

	machine := map[string]starlark.Value{
		"ip":     starlark.MakeInt(emu.Cpu.Ip),
		"halted": starlark.Bool(emu.Cpu.Halted),
		"ticks":  starlark.MakeInt(emu.Cpu.Ticks),
		"mem":    mem,
	}

	registers := internal.IterSeq2Map(emu.Cpu.Register.All(), func(n int, value uint8) (string, starlark.Value) {
		return fmt.Sprintf("r%x", n), starlark.MakeInt(int(value))
	})

	return internal.IterSeq2Concat(maps.All(machine), registers)
}

// Tick performs a single instruction of the emulator.
// done is set once the machine has halted or run out of instructions.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Cpu.Ip
	code, _ := emu.Code()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Code: code, Err: err}
		}
	}()

	state, err := emu.Cpu.Step()
	if err != nil {
		return
	}

	done = state != cpu.STATE_CONTINUED
	return
}

// Run ticks until the machine halts or runs out of instructions.
// It also stops, with ErrStepLimit, after Limit instructions, and with
// ErrBreak when the Break condition holds after an instruction.
func (emu *Emulator) Run() (state cpu.State, err error) {
	for ticks := 0; ; ticks++ {
		if emu.Limit > 0 && ticks >= emu.Limit {
			state = emu.State()
			err = ErrStepLimit
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil {
			state = emu.State()
			return
		}

		state = emu.State()
		if done {
			return
		}

		if emu.Break != nil {
			var hit bool
			hit, err = emu.Break.Eval(emu)
			if err != nil {
				return
			}
			if hit {
				err = ErrBreak
				return
			}
		}
	}
}
