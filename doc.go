// Package piecetable provides a generic, in-memory piece table: a sequence
// container specialized for large buffers undergoing many localized edits.
//
// A piece table represents its logical sequence as an ordered list of small
// descriptors ("pieces"), each pointing into one of two append-only backing
// arrays: an immutable original array fixed at construction, and an add array
// that every inserted element is appended to. Editing the sequence means
// editing the descriptor list, never copying the bulk of the data, so a
// localized run of edits (typing, backspacing) costs work proportional to the
// run, not to the size of the sequence.
//
// Key features:
//   - O(1) amortized insert/remove for clustered edits, via a one-entry edit
//     cache that fast-paths the common case of extending the previous edit
//   - O(k) worst case for an edit at an arbitrary position, where k is the
//     number of pieces (not the sequence length)
//   - Generic over any fixed-size copyable element type
//   - Lazy, allocation-free iteration over the logical sequence
//
// Basic usage:
//
//	t := piecetable.New([]rune("hello"))
//	t.Insert(5, ' ')
//	t.Insert(6, 'w')
//	t.Append('!')
//
//	for it := t.Iter(); it.Next(); {
//	    fmt.Print(string(it.Value()))
//	}
//
// Thread safety: Table is not safe for concurrent use. Callers needing
// concurrent access must provide their own synchronization; see the
// CONCURRENCY & RESOURCE MODEL notes in this module's design documents for
// the reasoning behind that choice.
package piecetable
