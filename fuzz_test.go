package piecetable

import "testing"

// FuzzInsert fuzzes a single insert into an arbitrary seed against a
// reference slice,
// grounded in rope_test.go's FuzzInsert (internal/engine/rope/fuzz_test.go).
func FuzzInsert(f *testing.F) {
	f.Add([]byte("hello"), 0, byte('!'))
	f.Add([]byte(""), 0, byte('a'))
	f.Add([]byte("hello world"), 5, byte(' '))

	f.Fuzz(func(t *testing.T, seed []byte, rawIndex int, value byte) {
		tbl := New(seed)
		ref := append([]byte(nil), seed...)

		idx := clampIndex(rawIndex, 0, len(ref))
		if err := tbl.Insert(idx, value); err != nil {
			t.Fatalf("Insert(%d, %d): %v", idx, value, err)
		}
		ref = append(ref, 0)
		copy(ref[idx+1:], ref[idx:])
		ref[idx] = value

		if !equalSeq(tbl, ref) {
			t.Fatalf("table diverged from reference after insert at %d", idx)
		}
		for _, p := range tbl.pieces {
			if p.length < 1 || p.start+p.length > tbl.buf.size(p.tag) {
				t.Fatalf("invariant violated by piece %+v", p)
			}
		}
	})
}

// FuzzRemove fuzzes a single delete from an arbitrary seed against a
// reference slice.
func FuzzRemove(f *testing.F) {
	f.Add([]byte("hello world"), 0)
	f.Add([]byte("a"), 0)

	f.Fuzz(func(t *testing.T, seed []byte, rawIndex int) {
		tbl := New(seed)
		ref := append([]byte(nil), seed...)

		if len(ref) == 0 {
			return
		}
		idx := clampIndex(rawIndex, 0, len(ref)-1)
		if err := tbl.Remove(idx); err != nil {
			t.Fatalf("Remove(%d): %v", idx, err)
		}
		ref = append(ref[:idx], ref[idx+1:]...)

		if !equalSeq(tbl, ref) {
			t.Fatalf("table diverged from reference after remove at %d", idx)
		}
	})
}

// FuzzOpStream fuzzes an interleaved stream of inserts and deletes, the
// shape closest to real clustered-editing traffic.
func FuzzOpStream(f *testing.F) {
	f.Add([]byte("hello"), []byte{1, 0, 1, 1, 0, 0, 1}, 5, 0, 3)

	f.Fuzz(func(t *testing.T, seed []byte, kinds []byte, idx0, idx1, idx2 int) {
		tbl := New(seed)
		ref := append([]byte(nil), seed...)

		rawIndices := []int{idx0, idx1, idx2}
		for i, k := range kinds {
			op := rawOp{
				Insert: k%2 == 0,
				Index:  rawIndices[i%len(rawIndices)],
				Value:  byte(i),
			}
			ref = applyOp(t, tbl, ref, op)
			if !equalSeq(tbl, ref) {
				t.Fatalf("table diverged from reference at op %d: %+v", i, op)
			}
		}
	})
}
