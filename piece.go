package piecetable

// piece is a descriptor naming a contiguous slice of one backing buffer:
// buffer(tag)[start : start+length]. Concatenating the slices of every piece
// in a table's piece list, in order, yields the current logical sequence.
//
// A piece's length is never allowed to reach zero: zero-length pieces are
// elided on creation and removed on shrinkage. No two adjacent pieces are
// required to be coalesced, but an empty piece must never exist.
type piece struct {
	tag    bufferTag
	start  int
	length int
}

// locate finds the piece covering logical index, returning its index in the
// piece list and the cumulative length of every piece strictly before it.
// Callers must ensure 0 <= index <= total length; when index equals the
// total length, locate returns (len(pieces), total length), meaning "past
// the last piece": the boundary case used by insert-at-end.
func locate(pieces []piece, index int) (pieceIndex, logicalStart int) {
	s := 0
	for i, p := range pieces {
		if index < s+p.length {
			return i, s
		}
		s += p.length
	}
	return len(pieces), s
}

// insertAt inserts p into pieces at position idx, shifting later elements
// right.
func insertAt(pieces []piece, idx int, p piece) []piece {
	pieces = append(pieces, piece{})
	copy(pieces[idx+1:], pieces[idx:])
	pieces[idx] = p
	return pieces
}

// replaceAt replaces the single piece at idx with the given replacement
// pieces, preserving order. replacements must not contain zero-length
// pieces.
func replaceAt(pieces []piece, idx int, replacements ...piece) []piece {
	tail := append([]piece(nil), pieces[idx+1:]...)
	pieces = pieces[:idx]
	pieces = append(pieces, replacements...)
	pieces = append(pieces, tail...)
	return pieces
}

// removeAt removes the piece at idx, shifting later elements left.
func removeAt(pieces []piece, idx int) []piece {
	return append(pieces[:idx], pieces[idx+1:]...)
}
