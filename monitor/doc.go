// Package monitor is the interactive operator console of the machine.
//
// Each command line is read from an io.Reader after the machine state is
// displayed:
//
//	r      edit registers, starting at a hex index
//	m      edit memory cells, starting at a hex address
//	i      set the instruction pointer
//	e      execute until halted or out of instructions
//	b      set, or clear with an empty line, a break condition
//	(enter) step one instruction
//
// Anything else quits.
package monitor
