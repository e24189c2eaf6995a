// Package bank implements the byte storage of the machine.
//
// A Cell is a single addressable byte. A Bank is a fixed capacity sequence
// of cells, used both for the memory bank (up to 256 cells, addressed by
// two hex digits) and for the register file (up to 16 cells, addressed by
// one hex digit). Every write truncates modulo 256.
package bank
