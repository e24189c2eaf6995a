package bank

import (
	"iter"
)

// Kind selects which address space a bank represents.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	MEMORY   = Kind(0) // memory
	REGISTER = Kind(1) // register
)

const (
	MEMORY_LIMIT   = 256 // Maximum memory cells; two hex digit addresses.
	REGISTER_LIMIT = 16  // Maximum registers; one hex digit addresses.
)

// Limit returns the maximum capacity of the kind of bank.
func (kind Kind) Limit() int {
	if kind == REGISTER {
		return REGISTER_LIMIT
	}
	return MEMORY_LIMIT
}

// Bank is a fixed size sequence of cells.
type Bank struct {
	Kind  Kind
	cells []Cell
}

// New creates a zeroed bank of capacity cells.
func New(kind Kind, capacity int) (b *Bank, err error) {
	if capacity < 1 || capacity > kind.Limit() {
		err = ErrCapacity{Kind: kind, Capacity: capacity}
		return
	}

	b = &Bank{
		Kind:  kind,
		cells: make([]Cell, capacity),
	}

	for n := range b.cells {
		b.cells[n].address = uint8(n)
	}

	return
}

// Len is the capacity of the bank.
func (b *Bank) Len() int {
	return len(b.cells)
}

// Cell returns the cell at addr.
func (b *Bank) Cell(addr int) (cell *Cell, err error) {
	if addr < 0 || addr >= len(b.cells) {
		err = ErrAddress{Kind: b.Kind, Address: addr, Capacity: len(b.cells)}
		return
	}

	cell = &b.cells[addr]
	return
}

// Read the value at addr.
func (b *Bank) Read(addr int) (value uint8, err error) {
	cell, err := b.Cell(addr)
	if err != nil {
		return
	}

	value = cell.Value()
	return
}

// Write value at addr, truncated to a byte.
func (b *Bank) Write(addr int, value int) (err error) {
	cell, err := b.Cell(addr)
	if err != nil {
		return
	}

	cell.Set(value)
	return
}

// Reset zeros every cell.
func (b *Bank) Reset() {
	for n := range b.cells {
		b.cells[n].value = 0
	}
}

// All iterates over address and value of every cell.
func (b *Bank) All() iter.Seq2[int, uint8] {
	return func(yield func(addr int, value uint8) bool) {
		for n := range b.cells {
			if !yield(n, b.cells[n].value) {
				return
			}
		}
	}
}
