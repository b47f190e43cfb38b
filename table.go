package piecetable

import "fmt"

// Table is a piece table: a logical sequence of elements of type E,
// represented as an ordered list of descriptors into two append-only
// backing arrays. See the package doc for the motivation and the overall
// shape of the data structure.
//
// The zero Table is not usable; construct one with New.
//
// Table is not safe for concurrent use.
type Table[E any] struct {
	buf    buffers[E]
	pieces []piece
	length int
	cache  editCache

	// version increments on every structural edit (one that can move a
	// piece's position in the list or change the table's length). Iterators
	// capture it at creation and detect mutation against it; see Iter.
	version uint64
}

// New constructs a Table whose initial logical sequence is a copy of
// initial. The copy is made once, into the table's immutable original
// buffer; initial is never retained or mutated afterward.
func New[E any](initial []E, opts ...Option[E]) *Table[E] {
	t := &Table[E]{
		buf: newBuffers(initial),
	}
	if len(initial) > 0 {
		t.pieces = []piece{{tag: tagOriginal, start: 0, length: len(initial)}}
		t.length = len(initial)
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len returns the logical length of the sequence in O(1).
func (t *Table[E]) Len() int {
	return t.length
}

// Get returns the element at logical index, or (zero value, false) if index
// is out of range. Get does not consult or modify the edit cache.
func (t *Table[E]) Get(index int) (E, bool) {
	var zero E
	if index < 0 || index >= t.length {
		return zero, false
	}
	offset := index
	for _, p := range t.pieces {
		if offset < p.length {
			return t.buf.at(p.tag, p.start+offset), true
		}
		offset -= p.length
	}
	return zero, false
}

// Append inserts e at the end of the sequence. It is equivalent to
// Insert(Len(), e) and is expected to hit the InsertAtEnd cache fast path on
// every call after the first in a run of consecutive appends.
func (t *Table[E]) Append(e E) error {
	return t.Insert(t.length, e)
}

// Insert inserts e at logical index, which must satisfy
// 0 <= index <= Len(). On any other index it returns a wrapped
// ErrIndexOutOfRange and leaves the table unchanged.
func (t *Table[E]) Insert(index int, e E) error {
	if index < 0 || index > t.length {
		return fmt.Errorf("piecetable: insert at %d (len %d): %w", index, t.length, ErrIndexOutOfRange)
	}

	if t.insertFastPath(index, e) {
		return nil
	}

	k := t.buf.appendToAdd(e)
	idx, s := locate(t.pieces, index)

	switch {
	case idx == len(t.pieces):
		// Past the last piece (including the empty-table case): append a
		// fresh tail descriptor.
		t.pieces = append(t.pieces, piece{tag: tagAdd, start: k, length: 1})
		t.setCache(cacheInsertAtEnd, len(t.pieces)-1, s)

	case index == s:
		// Boundary between pieces: insert a new descriptor immediately
		// before the located piece.
		t.pieces = insertAt(t.pieces, idx, piece{tag: tagAdd, start: k, length: 1})
		t.setCache(cacheInsertAtEnd, idx, s)

	default:
		// Interior split: o = index - s, 0 < o < p.length.
		p := t.pieces[idx]
		o := index - s
		t.pieces = replaceAt(t.pieces, idx,
			piece{tag: p.tag, start: p.start, length: o},
			piece{tag: tagAdd, start: k, length: 1},
			piece{tag: p.tag, start: p.start + o, length: p.length - o},
		)
		t.setCache(cacheInsertAtEnd, idx+1, s+o)
	}

	t.length++
	t.version++
	return nil
}

// insertFastPath attempts the InsertAtEnd cache fast path: the new element
// must sit immediately after the tail of the cached piece's add-buffer
// range, and at the logical position immediately following that piece. On
// success it performs the O(1) in-place length bump and reports true.
func (t *Table[E]) insertFastPath(index int, e E) bool {
	if t.cache.kind != cacheInsertAtEnd {
		return false
	}
	i := t.cache.pieceIndex
	if i < 0 || i >= len(t.pieces) {
		return false
	}
	p := &t.pieces[i]
	if p.tag != tagAdd {
		return false
	}
	if t.cache.logicalStart+p.length != index {
		return false
	}
	if p.start+p.length != len(t.buf.add) {
		return false
	}

	t.buf.appendToAdd(e)
	p.length++
	t.length++
	t.version++
	// cache kind/pieceIndex/logicalStart are unchanged: the piece still
	// starts at the same logical position, it just grew by one.
	return true
}

// Remove removes the element at logical index, which must satisfy
// 0 <= index < Len(). On any other index it returns a wrapped
// ErrIndexOutOfRange and leaves the table unchanged.
func (t *Table[E]) Remove(index int) error {
	if index < 0 || index >= t.length {
		return fmt.Errorf("piecetable: remove at %d (len %d): %w", index, t.length, ErrIndexOutOfRange)
	}

	if t.removeFastPath(index) {
		return nil
	}

	idx, s := locate(t.pieces, index)
	p := t.pieces[idx]
	o := index - s

	switch {
	case p.length == 1:
		t.pieces = removeAt(t.pieces, idx)
		t.cache = editCache{kind: cacheNone}

	case o == 0:
		t.pieces[idx].start++
		t.pieces[idx].length--
		t.setCache(cacheRemoveRight, idx, s)

	case o == p.length-1:
		t.pieces[idx].length--
		t.setCache(cacheRemoveLeft, idx, s)

	default:
		left := piece{tag: p.tag, start: p.start, length: o}
		right := piece{tag: p.tag, start: p.start + o + 1, length: p.length - o - 1}
		t.pieces = replaceAt(t.pieces, idx, left, right)
		t.setCache(cacheRemoveRight, idx+1, s+o)
	}

	t.length--
	t.version++
	return nil
}

// removeFastPath attempts the RemoveRight/RemoveLeft cache fast paths: a
// remove at the cached piece's first logical index (RemoveRight) or its
// current last logical index (RemoveLeft) shrinks that piece in place
// instead of walking the piece list.
func (t *Table[E]) removeFastPath(index int) bool {
	i := t.cache.pieceIndex
	if i < 0 || i >= len(t.pieces) {
		return false
	}

	switch t.cache.kind {
	case cacheRemoveRight:
		if index != t.cache.logicalStart {
			return false
		}
		p := &t.pieces[i]
		if p.length == 1 {
			t.pieces = removeAt(t.pieces, i)
			t.cache = editCache{kind: cacheNone}
		} else {
			p.start++
			p.length--
			// cache stays (i, s, RemoveRight): s is unaffected by shrinking
			// the piece from its head.
		}
		t.length--
		t.version++
		return true

	case cacheRemoveLeft:
		p := &t.pieces[i]
		if index != t.cache.logicalStart+p.length-1 {
			return false
		}
		if p.length == 1 {
			t.pieces = removeAt(t.pieces, i)
			t.cache = editCache{kind: cacheNone}
		} else {
			p.length--
			// cache stays (i, s, RemoveLeft).
		}
		t.length--
		t.version++
		return true

	default:
		return false
	}
}

// setCache records a fresh, verified-accurate cache entry.
func (t *Table[E]) setCache(kind cacheKind, pieceIndex, logicalStart int) {
	t.cache = editCache{kind: kind, pieceIndex: pieceIndex, logicalStart: logicalStart}
}

// resetCache forces the cache to cacheNone. Exposed for tests that verify
// the cache is purely an optimization: forcing it to None before every
// operation must not change externally observable behavior, only cost.
func (t *Table[E]) resetCache() {
	t.cache = editCache{kind: cacheNone}
}

// pieceCount reports the current number of piece descriptors. Exposed for
// tests checking fragmentation/coalescing behavior.
func (t *Table[E]) pieceCount() int {
	return len(t.pieces)
}
