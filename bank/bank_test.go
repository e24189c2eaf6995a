package bank

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		kind     Kind
		capacity int
		ok       bool
	}){
		{"mem_min", MEMORY, 1, true},
		{"mem_max", MEMORY, 256, true},
		{"mem_zero", MEMORY, 0, false},
		{"mem_over", MEMORY, 257, false},
		{"reg_min", REGISTER, 1, true},
		{"reg_max", REGISTER, 16, true},
		{"reg_over", REGISTER, 17, false},
		{"reg_neg", REGISTER, -1, false},
	}

	for _, entry := range table {
		b, err := New(entry.kind, entry.capacity)
		if !entry.ok {
			assert.Nil(b, entry.name)
			assert.Equal(ErrCapacity{Kind: entry.kind, Capacity: entry.capacity}, err, entry.name)
			continue
		}
		assert.NoError(err, entry.name)
		assert.Equal(entry.capacity, b.Len(), entry.name)
		assert.Equal(entry.kind, b.Kind, entry.name)
		for addr, value := range b.All() {
			cell, err := b.Cell(addr)
			assert.NoError(err)
			assert.Equal(uint8(addr), cell.Address(), entry.name)
			assert.Equal(uint8(0), value, entry.name)
		}
	}
}

func TestBank_Truncate(t *testing.T) {
	assert := assert.New(t)

	b, err := New(MEMORY, 4)
	assert.NoError(err)

	for _, value := range []int{0, 1, 0x7f, 0x80, 0xff, 0x100, 0x1ab, 0xffff, -1, -0x80, -400} {
		err = b.Write(2, value)
		assert.NoError(err)
		got, err := b.Read(2)
		assert.NoError(err)
		assert.Equal(uint8(((value%256)+256)%256), got, "value %d", value)
	}
}

func TestBank_Address(t *testing.T) {
	assert := assert.New(t)

	b, err := New(REGISTER, 4)
	assert.NoError(err)

	_, err = b.Read(4)
	assert.Equal(ErrAddress{Kind: REGISTER, Address: 4, Capacity: 4}, err)
	assert.True(errors.Is(err, ErrAddress{}))

	err = b.Write(-1, 0)
	assert.True(errors.Is(err, ErrAddress{}))

	_, err = b.Cell(3)
	assert.NoError(err)
}

func TestBank_Reset(t *testing.T) {
	assert := assert.New(t)

	b, err := New(MEMORY, 8)
	assert.NoError(err)

	for n := range b.Len() {
		assert.NoError(b.Write(n, n+0x10))
	}
	b.Reset()
	for _, value := range b.All() {
		assert.Equal(uint8(0), value)
	}
}

func TestBank_AllStops(t *testing.T) {
	assert := assert.New(t)

	b, err := New(MEMORY, 8)
	assert.NoError(err)

	count := 0
	for addr := range b.All() {
		if addr == 2 {
			break
		}
		count++
	}
	assert.Equal(2, count)
}

func TestCell_String(t *testing.T) {
	assert := assert.New(t)

	cell := &Cell{address: 3}
	cell.Set(0xab)
	assert.Equal("ab", cell.String())
	cell.Set(5)
	assert.Equal("05", cell.String())
	assert.Equal(uint8(3), cell.Address())
}

func TestKind_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("memory", MEMORY.String())
	assert.Equal("register", REGISTER.String())
	assert.Equal("Kind(7)", Kind(7).String())
	assert.Equal(16, REGISTER.Limit())
	assert.Equal(256, MEMORY.Limit())
}
