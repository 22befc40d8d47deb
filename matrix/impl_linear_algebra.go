// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels of SquareMat: element-wise
// addition and subtraction, negation, matrix multiplication, scalar scaling and
// division, Hadamard product, transpose, increment/decrement and
// exponentiation. All kernels perform strict fail-fast validation and return
// wrapped sentinels on misuse.
//
// Purpose:
//   - Offer every operator in two shapes: a fresh-result form (Add) and an
//     in-place form (AddAssign) that mutates and returns the receiver.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - In-place forms validate BEFORE touching the receiver; a failed call
//     leaves the receiver unchanged.
//   - Every kernel walks the flat buffer in a fixed order (deterministic).

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew       = "New"
	opIdentity  = "NewIdentity"
	opFromRows  = "FromRows"
	opAssign    = "Assign"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScalarMul = "ScalarMul"
	opDiv       = "Div"
	opHadamard  = "Hadamard"
	opPow       = "Pow"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSubInto computes dst[k] = a[k] + sign*b[k] over the flat buffers.
// dst may alias a (in-place forms); lengths are guaranteed equal by callers.
// Keeping `sign` as a float avoids an extra branch inside the hot loop.
func addSubInto(dst, a, b []float64, sign float64) {
	for k := range dst { // deterministic 0..n²-1
		dst[k] = a[k] + sign*b[k]
	}
}

// Add computes the element-wise sum C = m + b and returns a fresh matrix.
// Implementation:
//   - Stage 1: ValidateBinary(m, b).
//   - Stage 2: single flat loop into a new buffer.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *SquareMat) Add(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := &SquareMat{n: m.n, data: make([]float64, len(m.data))}
	addSubInto(res.data, m.data, b.data, +1)

	return res, nil
}

// AddAssign performs m += b in place and returns m.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m is untouched on error).
// Complexity: O(n²), no allocation.
func (m *SquareMat) AddAssign(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	addSubInto(m.data, m.data, b.data, +1)

	return m, nil
}

// Sub computes the element-wise difference C = m - b and returns a fresh matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func (m *SquareMat) Sub(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := &SquareMat{n: m.n, data: make([]float64, len(m.data))}
	addSubInto(res.data, m.data, b.data, -1)

	return res, nil
}

// SubAssign performs m -= b in place and returns m.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m is untouched on error).
// Complexity: O(n²).
func (m *SquareMat) SubAssign(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	addSubInto(m.data, m.data, b.data, -1)

	return m, nil
}

// Neg returns the element-wise negation -m.
// Complexity: O(n²).
func (m *SquareMat) Neg() *SquareMat {
	res := &SquareMat{n: m.n, data: make([]float64, len(m.data))}
	for k, v := range m.data {
		res.data[k] = -v
	}

	return res
}

// mulInto writes the product a × b into dst (len n², zeroed by caller).
// Loop order i→k→j walks both b and dst rows contiguously.
// dst must not alias a or b.
func mulInto(dst, a, b []float64, n int) {
	var i, k, j int
	var aik float64
	var rowA, rowB, rowC int
	for i = 0; i < n; i++ {
		rowA = i * n
		rowC = i * n
		for k = 0; k < n; k++ {
			aik = a[rowA+k]
			rowB = k * n
			for j = 0; j < n; j++ {
				dst[rowC+j] += aik * b[rowB+j]
			}
		}
	}
}

// Mul performs standard matrix multiplication C = m × b.
// Implementation:
//   - Stage 1: ValidateBinary(m, b).
//   - Stage 2: triple loop i→k→j into a fresh zeroed buffer.
//
// Behavior highlights:
//   - No zero-skipping: 0·Inf still yields NaN, as IEEE-754 requires.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *SquareMat) Mul(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := &SquareMat{n: m.n, data: make([]float64, len(m.data))}
	mulInto(res.data, m.data, b.data, m.n)

	return res, nil
}

// MulAssign performs m = m × b and returns m.
// The product is staged in a scratch buffer and copied back, so m.MulAssign(m)
// squares m correctly and existing Row views stay attached.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m is untouched on error).
// Complexity: O(n³) time, O(n²) scratch.
func (m *SquareMat) MulAssign(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	scratch := make([]float64, len(m.data))
	mulInto(scratch, m.data, b.data, m.n)
	copy(m.data, scratch)

	return m, nil
}

// Scale returns s·m (element-wise scaling).
// Complexity: O(n²).
func (m *SquareMat) Scale(s float64) *SquareMat {
	res := &SquareMat{n: m.n, data: make([]float64, len(m.data))}
	for k, v := range m.data {
		res.data[k] = v * s
	}

	return res
}

// ScaleAssign performs m *= s in place and returns m.
// Complexity: O(n²).
func (m *SquareMat) ScaleAssign(s float64) *SquareMat {
	for k := range m.data {
		m.data[k] *= s
	}

	return m
}

// Div returns m / s (element-wise).
// Errors: ErrDivisionByZero when s == 0.
// Complexity: O(n²).
func (m *SquareMat) Div(s float64) (*SquareMat, error) {
	if err := ValidateDivisor(s); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	res := &SquareMat{n: m.n, data: make([]float64, len(m.data))}
	for k, v := range m.data {
		res.data[k] = v / s
	}

	return res, nil
}

// DivAssign performs m /= s in place and returns m.
// Errors: ErrDivisionByZero when s == 0 (m is untouched on error).
// Complexity: O(n²).
func (m *SquareMat) DivAssign(s float64) (*SquareMat, error) {
	if err := ValidateDivisor(s); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	for k := range m.data {
		m.data[k] /= s
	}

	return m, nil
}

// Hadamard returns the element-wise product C[i,j] = m[i,j]·b[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func (m *SquareMat) Hadamard(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := &SquareMat{n: m.n, data: make([]float64, len(m.data))}
	for k, v := range m.data {
		res.data[k] = v * b.data[k]
	}

	return res, nil
}

// Transpose returns mᵀ with C[j,i] = m[i,j].
// Complexity: O(n²).
func (m *SquareMat) Transpose() *SquareMat {
	n := m.n
	res := &SquareMat{n: n, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[j*n+i] = m.data[i*n+j]
		}
	}

	return res
}

// shift adds delta to every element in place.
func (m *SquareMat) shift(delta float64) {
	for k := range m.data {
		m.data[k] += delta
	}
}

// Inc adds 1 to every element (prefix ++m) and returns the mutated receiver.
// Complexity: O(n²).
func (m *SquareMat) Inc() *SquareMat {
	m.shift(+1)

	return m
}

// Dec subtracts 1 from every element (prefix --m) and returns the mutated receiver.
// Complexity: O(n²).
func (m *SquareMat) Dec() *SquareMat {
	m.shift(-1)

	return m
}

// PostInc returns a copy of m's current state, then adds 1 to every element
// of m (postfix m++).
// Complexity: O(n²) time and space.
func (m *SquareMat) PostInc() *SquareMat {
	old := m.Clone()
	m.shift(+1)

	return old
}

// PostDec returns a copy of m's current state, then subtracts 1 from every
// element of m (postfix m--).
// Complexity: O(n²) time and space.
func (m *SquareMat) PostDec() *SquareMat {
	old := m.Clone()
	m.shift(-1)

	return old
}

// Pow returns m^e for a non-negative integer e by binary exponentiation.
// Implementation:
//   - Stage 1: ValidateExponent(e).
//   - Stage 2: acc = I, base = copy of m.
//   - Stage 3: while e > 0: if the low bit is set, acc = acc × base; shift e
//     right; square base while bits remain.
//
// Behavior highlights:
//   - Pow(0) is the identity, for any m (including the zero matrix).
//   - m itself is never mutated.
//
// Errors:
//   - ErrInvalidExponent (e < 0).
//
// Complexity:
//   - O(log e) multiplications, each O(n³); Space O(n²).
func (m *SquareMat) Pow(e int) (*SquareMat, error) {
	if err := ValidateExponent(e); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	acc, err := NewIdentity(m.n)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	base := m.Clone()
	scratch := make([]float64, len(m.data))

	for e > 0 {
		if e&1 == 1 {
			clear(scratch)
			mulInto(scratch, acc.data, base.data, m.n)
			acc.data, scratch = scratch, acc.data // swap buffers; acc never aliases base
		}
		e >>= 1
		if e > 0 {
			clear(scratch)
			mulInto(scratch, base.data, base.data, m.n)
			base.data, scratch = scratch, base.data
		}
	}

	return acc, nil
}
