package nru

import "fmt"

type constError string

const (
	// ErrInvalidSize may be returned from [NewTable] and [NewMemory].
	ErrInvalidSize = constError("invalid size")
	// ErrOutOfRange is returned when a page number
	// is outside of a [Table]'s bounds.
	ErrOutOfRange = constError("page out of range")
	// ErrAddressOutOfRange is returned when an address
	// is outside of a [Memory]'s bounds.
	ErrAddressOutOfRange = constError("address out of range")
	// ErrNoPages is returned from [Classifier.Victim]
	// when no pages have been classified.
	ErrNoPages = constError("no pages to select from")
)

func (errStr constError) Error() string { return string(errStr) }

func sizeError(name string, size int) error {
	return fmt.Errorf(
		"%w: %s must be >0 but %d was requested",
		ErrInvalidSize, name, size)
}

func pageError(page, pageCount int) error {
	return fmt.Errorf(
		"%w: page %d not in [0,%d)",
		ErrOutOfRange, page, pageCount)
}

func addressError(address, limit int) error {
	return fmt.Errorf(
		"%w: address %d not in [0,%d)",
		ErrAddressOutOfRange, address, limit)
}
