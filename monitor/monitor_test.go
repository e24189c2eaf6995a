package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/brookshear/emulator"
)

func doMonitor(t *testing.T, memory, registers int, input string) (emu *emulator.Emulator, mon *Monitor, out string) {
	assert := assert.New(t)

	emu, err := emulator.NewEmulator(memory, registers, 0)
	assert.NoError(err)

	var buff bytes.Buffer
	mon = NewMonitor(emu, strings.NewReader(input), &buff)
	mon.Prompts = false

	err = mon.Run()
	assert.NoError(err)

	out = buff.String()
	return
}

func reg(emu *emulator.Emulator, n int) uint8 {
	value, _ := emu.Cpu.Register.Read(n)
	return value
}

func mem(emu *emulator.Emulator, n int) uint8 {
	value, _ := emu.Cpu.Memory.Read(n)
	return value
}

func TestMonitorRegister(t *testing.T) {
	assert := assert.New(t)

	emu, mon, out := doMonitor(t, 16, 4, "r\nzz\n10\n1\n0a0b\n")
	assert.False(mon.Done())
	assert.Contains(out, ErrHex.Error())
	assert.Contains(out, ErrSelection.Error())
	assert.Equal(uint8(0), reg(emu, 0))
	assert.Equal(uint8(0x0a), reg(emu, 1))
	assert.Equal(uint8(0x0b), reg(emu, 2))

	// An overrun is refused as a whole, and asked again.
	emu, _, _ = doMonitor(t, 16, 4, "r\n3\n0102\n7\n")
	assert.Equal(uint8(7), reg(emu, 3))
	assert.Equal(uint8(0), reg(emu, 2))
}

func TestMonitorMemory(t *testing.T) {
	assert := assert.New(t)

	emu, _, out := doMonitor(t, 4, 1, "m\n3\n2105\nxy\n5\n")
	assert.Contains(out, "memory 03")
	assert.Equal(uint8(5), mem(emu, 3))
	assert.Equal(uint8(0), mem(emu, 2))
}

func TestMonitorExecute(t *testing.T) {
	assert := assert.New(t)

	emu, _, out := doMonitor(t, 16, 4, "m\n0\n2105 c000 2207\ne\n")
	assert.Contains(out, BANNER_EXECUTION+"\n"+BANNER_HALTED+"\n"+BANNER_END+"\n")
	assert.Equal(uint8(5), reg(emu, 1))
	assert.Equal(uint8(0), reg(emu, 2))
	assert.False(emu.Cpu.Halted)
	assert.Equal(4, emu.Cpu.Ip)

	// Execution resumes after the halt.
	emu, _, out = doMonitor(t, 6, 4, "m\n0\n2105 c000 2207\ne\ne\n")
	assert.Equal(1, strings.Count(out, BANNER_HALTED))
	assert.Equal(2, strings.Count(out, BANNER_END))
	assert.Equal(uint8(7), reg(emu, 2))
	assert.Equal(6, emu.Cpu.Ip)
}

func TestMonitorStep(t *testing.T) {
	assert := assert.New(t)

	emu, _, out := doMonitor(t, 16, 4, "m\n0\n2105 c000\n\n")
	assert.Equal(uint8(5), reg(emu, 1))
	assert.Equal(2, emu.Cpu.Ip)
	assert.Contains(out, "ip 02: c000 halt")

	emu, _, out = doMonitor(t, 16, 4, "m\n0\n2105 c000\n\n\n")
	assert.Contains(out, BANNER_HALTED)
	assert.False(emu.Cpu.Halted)
	assert.Equal(4, emu.Cpu.Ip)

	// Unknown opcodes are reported, and skipped.
	emu, _, out = doMonitor(t, 16, 4, "m\n0\nd000\n\n")
	assert.Contains(out, "instruction could not be completed")
	assert.Equal(2, emu.Cpu.Ip)

	// Runtime errors are reported, and leave the machine alone.
	emu, _, out = doMonitor(t, 16, 4, "m\n0\n2905\n\n")
	assert.Contains(out, "invalid operand")
	assert.Equal(0, emu.Cpu.Ip)
}

func TestMonitorIp(t *testing.T) {
	assert := assert.New(t)

	emu, _, out := doMonitor(t, 32, 1, "i\n20\n1e\n")
	assert.Contains(out, ErrSelection.Error())
	assert.Equal(0x1e, emu.Cpu.Ip)

	emu, _, out = doMonitor(t, 32, 1, "i\n1f\n\n")
	assert.Contains(out, "ip 1f: exhausted")
	assert.Contains(out, "ip empty")
	assert.Equal(0x1f, emu.Cpu.Ip)
}

func TestMonitorBreak(t *testing.T) {
	assert := assert.New(t)

	input := "b\nr1 ==\nr1 == 2\n" +
		"m\n0\n2201 5112 b002\n" +
		"e\n"
	emu, _, out := doMonitor(t, 16, 4, input)
	assert.Contains(out, "condition 'r1 =='")
	assert.Contains(out, emulator.ErrBreak.Error())
	assert.Equal(uint8(2), reg(emu, 1))
	assert.Equal(4, emu.Cpu.Ip)
	assert.NotNil(emu.Break)

	emu, _, _ = doMonitor(t, 16, 4, "b\nr1 == 2\nb\n\n")
	assert.Nil(emu.Break)
}

func TestMonitorQuit(t *testing.T) {
	assert := assert.New(t)

	emu, mon, out := doMonitor(t, 16, 4, "q\nr\n1\n05\n")
	assert.True(mon.Done())
	assert.Equal(uint8(0), reg(emu, 1))
	assert.Equal(1, strings.Count(out, "registers (4)"))
}

func TestMonitorPrompts(t *testing.T) {
	assert := assert.New(t)

	emu, err := emulator.NewEmulator(16, 4, 0)
	assert.NoError(err)

	var buff bytes.Buffer
	mon := NewMonitor(emu, strings.NewReader("r\n2\n"), &buff)
	assert.True(mon.Prompts)
	assert.NoError(mon.Run())

	out := buff.String()
	assert.Contains(out, MENU)
	assert.Contains(out, "Which register would you like to edit? ")
	assert.Contains(out, "What value would you like to put into register 2? ")
}

func TestDisplay(t *testing.T) {
	assert := assert.New(t)

	emu, err := emulator.NewEmulator(18, 2, 0)
	assert.NoError(err)
	assert.NoError(emu.Cpu.Memory.Write(0x11, 0xab))
	assert.NoError(emu.Cpu.Register.Write(1, 0x7f))

	var buff bytes.Buffer
	mon := NewMonitor(emu, strings.NewReader(""), &buff)
	mon.Display()

	expected := "memory (18 cells)\n" +
		"   |  0  1  2  3  4  5  6  7  8  9  a  b  c  d  e  f\n" +
		"00 | 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00\n" +
		"10 | 00 ab\n" +
		"registers (2)\n" +
		"   |  0  1\n" +
		"00 | 00 7f\n" +
		"ip 00: 0000 unknown 0000\n"
	assert.Equal(expected, buff.String())
}
