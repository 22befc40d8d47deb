// SPDX-License-Identifier: MIT

// Package matrix - SquareMat storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a single owned, contiguous n*n buffer with the index formula i*n + j.
//   - Guarantee value semantics: no two SquareMat instances ever share a buffer.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//
// Complexity quicksheet:
//   - New: O(n²) fill; At/Set/Row: O(1); Clone/Assign: O(n²); Sum: O(n²).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers

	ctxMinor = "Minor" // method tag used in error wrappers
)

// squareErrorf wraps an error with a uniform SquareMat context and callsite indices.
// Output shape: "SquareMat.<method>(row,col): <sentinel>".
// Complexity: O(1).
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SquareMat.%s(%d,%d): %w", method, row, col, err)
}

// SquareMat is a dense n×n matrix of float64 values.
//   - n holds the dimension (> 0 for every constructed instance).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// The zero value has n == 0 and is only useful as an Assign target.
type SquareMat struct {
	n    int       // dimension
	data []float64 // contiguous row-major storage (len == n*n)
}

// Compile-time assertions for fmt.Stringer conformance.
var _ fmt.Stringer = (*SquareMat)(nil)

// New creates an n×n matrix with every element set to the fill value.
// MAIN DESCRIPTION:
//   - Public constructor with strict dimension validation.
//
// Implementation:
//   - Stage 1: validate n > 0; else ErrInvalidDimension.
//   - Stage 2: resolve options (fill defaults to DefaultFill).
//   - Stage 3: allocate the buffer and fill it when fill != 0.
//
// Inputs:
//   - n   : positive dimension.
//   - opts: WithFill(v) to override the fill value.
//
// Returns:
//   - *SquareMat: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimension (n <= 0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(n int, opts ...Option) (*SquareMat, error) {
	if err := ValidateDimension(n); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	o := gatherOptions(opts...)

	// make() zero-fills; only non-zero fills (and -0) need an explicit pass.
	buf := make([]float64, n*n)
	if o.fill != 0 || math.Signbit(o.fill) {
		for k := range buf {
			buf[k] = o.fill
		}
	}

	return &SquareMat{n: n, data: buf}, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*SquareMat, error) {
	if err := ValidateDimension(n); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	buf := make([]float64, n*n)
	for i := 0; i < n; i++ {
		buf[i*n+i] = 1.0 // diagonal offset i*n + i
	}

	return &SquareMat{n: n, data: buf}, nil
}

// FromRows builds a matrix from a literal slice of rows.
// Implementation:
//   - Stage 1: n = len(rows); reject n == 0.
//   - Stage 2: every row must have exactly n values.
//   - Stage 3: copy rows into a fresh buffer (the input is never aliased).
//
// Errors:
//   - ErrInvalidDimension (no rows).
//   - ErrDimensionMismatch (ragged or non-square input).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromRows(rows [][]float64) (*SquareMat, error) {
	n := len(rows)
	if err := ValidateDimension(n); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	buf := make([]float64, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), n, ErrDimensionMismatch))
		}
		copy(buf[i*n:(i+1)*n], row)
	}

	return &SquareMat{n: n, data: buf}, nil
}

// N returns the dimension. No side effects.
// Complexity: O(1).
func (m *SquareMat) N() int { return m.n }

// Sum returns the arithmetic sum of all elements in row-major order.
// It is the comparison key used by Equal/Less/... (see compare.go).
// Complexity: O(n²).
func (m *SquareMat) Sum() float64 {
	s := 0.0
	for _, v := range m.data {
		s += v
	}

	return s
}

// indexOf computes the row-major offset or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (m *SquareMat) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrIndexOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *SquareMat) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, squareErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (m *SquareMat) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return squareErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer).
// Mutations of the clone never affect the original, and vice versa.
// Complexity: O(n²).
func (m *SquareMat) Clone() *SquareMat {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &SquareMat{n: m.n, data: cp}
}

// Assign copies src into the receiver and returns the receiver.
// MAIN DESCRIPTION:
//   - Copy-assignment with value semantics.
//
// Implementation:
//   - Stage 1: validate receiver and src are non-nil.
//   - Stage 2: self-assignment is a no-op.
//   - Stage 3: reallocate when dimensions differ, otherwise overwrite in place.
//
// Behavior highlights:
//   - The receiver never shares src's buffer after the call.
//   - Any Row views taken on the receiver before a resize keep pointing at the
//     old buffer; take new views after Assign.
//
// Errors:
//   - ErrNilMatrix (nil receiver or src).
//
// Complexity:
//   - Time O(n²), Space O(n²) on resize, O(1) extra otherwise.
func (m *SquareMat) Assign(src *SquareMat) (*SquareMat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAssign, err)
	}
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(opAssign, err)
	}
	if m == src {
		return m, nil
	}
	if m.n != src.n || len(m.data) != len(src.data) {
		m.n = src.n
		m.data = make([]float64, len(src.data))
	}
	copy(m.data, src.data)

	return m, nil
}

// EqualElements reports whether a and b have the same dimension and
// bitwise-equal elements. Unlike Equal, this is a structural comparison.
// NaN never equals NaN.
// Complexity: O(n²).
func (m *SquareMat) EqualElements(b *SquareMat) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.n != b.n {
		return false
	}
	for k, v := range m.data {
		if v != b.data[k] {
			return false
		}
	}

	return true
}

// IsFinite reports whether every element is finite (no NaN, no ±Inf).
// Useful after Div or Pow on large values, which may overflow.
// Complexity: O(n²).
func (m *SquareMat) IsFinite() bool {
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
