package bank

import (
	"fmt"
)

// Cell is a single byte of storage, with a fixed address.
type Cell struct {
	address uint8
	value   uint8
}

// Address of the cell in its bank.
func (c *Cell) Address() uint8 {
	return c.address
}

// Value of the cell.
func (c *Cell) Value() uint8 {
	return c.value
}

// Set the cell value, truncated modulo 256.
func (c *Cell) Set(value int) {
	c.value = uint8(value)
}

// String is the value as two lowercase hex digits.
func (c *Cell) String() string {
	return fmt.Sprintf("%02x", c.value)
}
