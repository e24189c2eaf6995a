package bank

import (
	"github.com/ezrec/brookshear/translate"
)

var f = translate.From

// ErrCapacity is returned when a bank is created with an unsupported size.
type ErrCapacity struct {
	Kind     Kind
	Capacity int
}

func (err ErrCapacity) Error() string {
	return f("%v capacity %d not in 1..%d", err.Kind, err.Capacity, err.Kind.Limit())
}

// ErrAddress is returned for accesses outside of a bank.
type ErrAddress struct {
	Kind     Kind
	Address  int
	Capacity int
}

func (err ErrAddress) Error() string {
	return f("%v address 0x%x out of range (capacity %d)", err.Kind, err.Address, err.Capacity)
}

func (err ErrAddress) Is(target error) (ok bool) {
	_, ok = target.(ErrAddress)
	return
}
