// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Row is a non-owning, bounds-checked view over one row of a SquareMat.
// MAIN DESCRIPTION:
//   - Enables two-step indexing: m.Row(i) then r.At(j) / r.Set(j, v).
//   - Writes through a Row mutate the owning matrix.
//
// Behavior highlights:
//   - The view holds a sub-slice of the owner's buffer, capped at n so it can
//     never grow into the next row.
//   - A Row taken before SquareMat.Assign resized the owner keeps pointing at
//     the old buffer.
type Row struct {
	i    int       // row index in the owner (for error messages)
	vals []float64 // len == cap == n
}

// Row returns a view over row i or ErrIndexOutOfRange.
// Complexity: O(1), no allocation beyond the view header.
func (m *SquareMat) Row(i int) (Row, error) {
	if i < 0 || i >= m.n {
		return Row{}, squareErrorf(ctxRow, i, 0, ErrIndexOutOfRange)
	}
	base := i * m.n

	// Full slice expression pins cap to n.
	return Row{i: i, vals: m.data[base : base+m.n : base+m.n]}, nil
}

// Len returns the number of elements in the row (== owner dimension).
func (r Row) Len() int { return len(r.vals) }

// Index returns the row index in the owning matrix.
func (r Row) Index() int { return r.i }

// At returns element j of the row or ErrIndexOutOfRange.
// Complexity: O(1).
func (r Row) At(j int) (float64, error) {
	if j < 0 || j >= len(r.vals) {
		return 0, fmt.Errorf("Row(%d).At(%d): %w", r.i, j, ErrIndexOutOfRange)
	}

	return r.vals[j], nil
}

// Set writes v at element j of the row (write-through to the owner).
// Complexity: O(1).
func (r Row) Set(j int, v float64) error {
	if j < 0 || j >= len(r.vals) {
		return fmt.Errorf("Row(%d).Set(%d): %w", r.i, j, ErrIndexOutOfRange)
	}
	r.vals[j] = v

	return nil
}

// Values returns a copy of the row; mutating it does not affect the owner.
// Complexity: O(n).
func (r Row) Values() []float64 {
	out := make([]float64, len(r.vals))
	copy(out, r.vals)

	return out
}
