package piecetable

import "iter"

// Iterator produces the elements of a Table in logical order, walking the
// piece list directly and reading each piece's backing-array slice in place;
// it never materializes a flat copy of the sequence. An Iterator is
// restartable by calling Table.Iter again.
//
// An Iterator holds a non-owning view of the table that created it and does
// not survive a mutation of that table: Next panics with ErrIteratorStale if
// it detects the table changed since the iterator was created. This is a
// tracked-modification-count approach, useful in a language that cannot
// enforce the hazard statically.
//
// The zero Iterator is not usable; obtain one via Table.Iter.
type Iterator[E any] struct {
	table   *Table[E]
	version uint64

	started       bool
	pieceIdx      int
	offsetInPiece int
	cur           E
}

// Iter returns a new Iterator positioned before the first element.
func (t *Table[E]) Iter() *Iterator[E] {
	return &Iterator[E]{table: t, version: t.version}
}

// Next advances the iterator to the next element and reports whether one
// exists. It panics with ErrIteratorStale if the
// underlying table was mutated since the iterator was created.
func (it *Iterator[E]) Next() bool {
	if it.table.version != it.version {
		panic(ErrIteratorStale)
	}

	if !it.started {
		it.started = true
	} else {
		it.offsetInPiece++
	}

	for it.pieceIdx < len(it.table.pieces) {
		p := it.table.pieces[it.pieceIdx]
		if it.offsetInPiece < p.length {
			it.cur = it.table.buf.at(p.tag, p.start+it.offsetInPiece)
			return true
		}
		it.pieceIdx++
		it.offsetInPiece = 0
	}
	return false
}

// Value returns the element at the iterator's current position. It is only
// valid to call after a call to Next returned true.
func (it *Iterator[E]) Value() E {
	return it.cur
}

// Range returns a lazy sequence over the logical half-open interval
// [start, end). It is read-only sugar that reads each index of the interval
// with Get, so every element costs a walk from the first piece; supplemental to the core operations required by the piece table
// design (grounded in the range query exercised by the original reference
// implementation's test suite). Like Iterator, a Range sequence does not
// survive mutation of the table during iteration; range-over-func will
// panic with ErrIteratorStale if that happens.
func (t *Table[E]) Range(start, end int) iter.Seq[E] {
	return func(yield func(E) bool) {
		if start < 0 {
			start = 0
		}
		if end > t.length {
			end = t.length
		}
		version := t.version
		for i := start; i < end; i++ {
			if t.version != version {
				panic(ErrIteratorStale)
			}
			e, ok := t.Get(i)
			if !ok {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}
