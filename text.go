package piecetable

import "strings"

// NewText constructs a Table[byte] from the UTF-8 bytes of s. Text is the
// motivating use case for a piece table, but nothing about Table requires
// byte elements: this constructor and the methods below are a thin,
// additive convenience layer on top of the generic Table.
func NewText(s string, opts ...Option[byte]) *Table[byte] {
	return New([]byte(s), opts...)
}

// String renders a Table[byte]'s full logical sequence as a string. Use
// sparingly for large tables; prefer Iter or Range for streaming access.
func String(t *Table[byte]) string {
	var b strings.Builder
	b.Grow(t.Len())
	for it := t.Iter(); it.Next(); {
		b.WriteByte(it.Value())
	}
	return b.String()
}

// InsertString inserts every byte of s starting at logical index, in order.
// Because each inserted byte lands immediately after the previous one, every
// call after the first hits the InsertAtEnd cache fast path, so inserting an
// n-byte string costs O(n) regardless of where it lands in a large table.
func InsertString(t *Table[byte], index int, s string) error {
	for i := 0; i < len(s); i++ {
		if err := t.Insert(index+i, s[i]); err != nil {
			return err
		}
	}
	return nil
}
