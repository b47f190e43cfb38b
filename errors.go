package piecetable

import "errors"

// Errors returned by Table operations.
var (
	// ErrIndexOutOfRange indicates a mutator was called with a logical index
	// outside the range the operation requires. The table is left unchanged.
	ErrIndexOutOfRange = errors.New("piecetable: index out of range")

	// ErrIteratorStale indicates an Iterator was advanced after the table it
	// was created from was mutated. Iterators do not survive mutation of
	// their table; see Table.Iter.
	ErrIteratorStale = errors.New("piecetable: iterator invalidated by mutation")
)
