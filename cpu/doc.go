// Package cpu implements the instruction decoder and execution engine of
// the machine.
//
// An instruction is two consecutive memory bytes read as four hex digits:
// the first digit selects one of twelve operations (load, load immediate,
// store, move, two adds, or, and, xor, rotate, conditional jump, halt) and
// the other three carry register indices, an address or an immediate.
// The engine owns one instruction pointer and a halt flag, and steps the
// machine one instruction at a time.
package cpu
