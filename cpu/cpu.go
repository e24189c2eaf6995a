package cpu

import (
	"errors"
	"fmt"
	"log"
	"math/bits"

	"github.com/ezrec/brookshear/bank"
)

// State reports how the machine stands after a step or a run.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_CONTINUED = State(0) // continued
	STATE_HALTED    = State(1) // halted
	STATE_EXHAUSTED = State(2) // exhausted
)

// Cpu is the simulation context for the machine: memory, registers, and
// the instruction pointer.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   *bank.Bank // Memory bank.
	Register *bank.Bank // Register file; r0 is the jump comparison target.

	Ip     int  // Address of the next instruction's first byte.
	Halted bool // Set by the halt instruction, cleared by Resume.
	Ticks  int  // Instructions executed since reset.

	// Diagnostic receives non-fatal reports, such as unknown opcodes.
	// If nil, reports are logged.
	Diagnostic func(ip int, err error)
}

// NewCpu creates a machine with zeroed memory and registers.
func NewCpu(memory int, registers int, ip int) (cpu *Cpu, err error) {
	mem, err := bank.New(bank.MEMORY, memory)
	if err != nil {
		return
	}

	reg, err := bank.New(bank.REGISTER, registers)
	if err != nil {
		return
	}

	cp := &Cpu{
		Memory:   mem,
		Register: reg,
	}

	err = cp.SetIp(ip)
	if err != nil {
		return
	}

	cpu = cp
	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("%6s: %02x\n", "ip", cpu.Ip)
	text += fmt.Sprintf("%6s: %v\n", "halted", cpu.Halted)
	text += fmt.Sprintf("%6s: %d\n", "ticks", cpu.Ticks)
	for n, value := range cpu.Register.All() {
		text += fmt.Sprintf("%6s: %02x\n", fmt.Sprintf("r%x", n), value)
	}

	return
}

// Reset the CPU state.
// - Zeros memory and registers.
// - Clears the halt flag and the tick counter.
// The instruction pointer is left where the operator put it.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Register.Reset()
	cpu.Halted = false
	cpu.Ticks = 0
}

// SetIp moves the instruction pointer to a memory address.
func (cpu *Cpu) SetIp(ip int) (err error) {
	if ip < 0 || ip >= cpu.Memory.Len() {
		err = errors.Join(ErrIpRange, bank.ErrAddress{Kind: bank.MEMORY, Address: ip, Capacity: cpu.Memory.Len()})
		return
	}

	cpu.Ip = ip
	return
}

// Resume clears the halt flag so execution can restart.
func (cpu *Cpu) Resume() {
	cpu.Halted = false
}

// FetchCode fetches the two bytes of the instruction at the instruction pointer.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Ip < 0 || cpu.Ip+CODE_WIDTH > cpu.Memory.Len() {
		err = ErrIpEmpty
		return
	}

	hi, _ := cpu.Memory.Cell(cpu.Ip)
	lo, _ := cpu.Memory.Cell(cpu.Ip + 1)
	if cpu.Verbose {
		log.Printf("%02x: fetch %v", cpu.Ip, Instruction(hi, lo))
	}

	code = MakeCode(hi.Value(), lo.Value())
	return
}

// Step executes a single instruction cycle.
// A halted machine does nothing, and a machine with no room left for
// another instruction reports STATE_EXHAUSTED.
func (cpu *Cpu) Step() (state State, err error) {
	if cpu.Halted {
		state = STATE_HALTED
		return
	}

	code, err := cpu.FetchCode()
	if errors.Is(err, ErrIpEmpty) {
		err = nil
		state = STATE_EXHAUSTED
		return
	}

	err = cpu.Execute(code)
	if err != nil {
		return
	}

	if cpu.Halted {
		state = STATE_HALTED
	}

	return
}

// Run steps until the machine halts or runs out of instructions.
func (cpu *Cpu) Run() (state State, err error) {
	for {
		state, err = cpu.Step()
		if err != nil || state != STATE_CONTINUED {
			return
		}
	}
}

// Execute executes a single decoded instruction.
// On error no machine state is changed.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), ErrInvalidOperand, err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%02x: %v %v", cpu.Ip, code, code.Mnemonic())
	}

	mem := cpu.Memory
	reg := cpu.Register

	next_ip := cpu.Ip + CODE_WIDTH

	switch code.Opcode() {
	case OP_LOAD:
		var value uint8
		value, err = mem.Read(code.XY())
		if err != nil {
			return
		}
		err = reg.Write(code.R(), int(value))
	case OP_LOADI:
		err = reg.Write(code.R(), code.XY())
	case OP_STORE:
		var value uint8
		value, err = reg.Read(code.R())
		if err != nil {
			return
		}
		err = mem.Write(code.XY(), int(value))
	case OP_MOVE:
		var value uint8
		value, err = reg.Read(code.S())
		if err != nil {
			return
		}
		err = reg.Write(code.T(), int(value))
	case OP_ADDI, OP_ADDF:
		// No floating point format exists; both add as integers.
		err = cpu.doAlu(code, Add)
	case OP_OR:
		err = cpu.doAlu(code, func(s, t uint8) uint8 { return s | t })
	case OP_AND:
		err = cpu.doAlu(code, func(s, t uint8) uint8 { return s & t })
	case OP_XOR:
		err = cpu.doAlu(code, func(s, t uint8) uint8 { return s ^ t })
	case OP_ROR:
		var value, count uint8
		value, err = reg.Read(code.R())
		if err != nil {
			return
		}
		count, err = reg.Read(code.T())
		if err != nil {
			return
		}
		err = reg.Write(code.R(), int(Rotate(value, int(count))))
	case OP_JUMP:
		var value, r0 uint8
		value, err = reg.Read(code.R())
		if err != nil {
			return
		}
		r0, err = reg.Read(0)
		if err != nil {
			return
		}
		if value == r0 {
			target := code.XY()
			if target >= mem.Len() {
				err = bank.ErrAddress{Kind: bank.MEMORY, Address: target, Capacity: mem.Len()}
				return
			}
			next_ip = target
		}
	case OP_HALT:
		cpu.Halted = true
	case OP_UNKNOWN:
		cpu.report(errors.Join(ErrOpcode(code), ErrOpcodeUnknown))
	}
	if err != nil {
		return
	}

	cpu.Ip = next_ip
	cpu.Ticks += 1

	return
}

// report passes a non-fatal condition to the Diagnostic hook.
func (cpu *Cpu) report(err error) {
	if cpu.Diagnostic != nil {
		cpu.Diagnostic(cpu.Ip, err)
		return
	}

	log.Printf("%02x: %v", cpu.Ip, err)
}

// doAlu stores op(S, T) into R.
func (cpu *Cpu) doAlu(code Code, op func(s, t uint8) uint8) (err error) {
	reg := cpu.Register

	s, err := reg.Read(code.S())
	if err != nil {
		return
	}

	t, err := reg.Read(code.T())
	if err != nil {
		return
	}

	err = reg.Write(code.R(), int(op(s, t)))
	return
}

// Add sums two bytes with the machine's sign convention: a byte above 127
// is negated (not reinterpreted as two's complement), and a sum above 127
// is negated once more. The result is truncated modulo 256.
func Add(s, t uint8) uint8 {
	sval := int(s)
	if sval > 127 {
		sval = -sval
	}

	tval := int(t)
	if tval > 127 {
		tval = -tval
	}

	value := sval + tval
	if value > 127 {
		value = -value
	}

	return uint8(value)
}

// Rotate rotates value right by n mod 8 bits.
func Rotate(value uint8, n int) uint8 {
	return bits.RotateLeft8(value, -(n & 7))
}
