// SPDX-License-Identifier: MIT

// Package matrix - determinant by recursive cofactor (Laplace) expansion.
//
// Purpose:
//   - Textbook expansion along the first row; adequate for small n.
//   - No LU, no pivoting: results match hand calculation term by term.
//
// Complexity:
//   - O(n!) time; O(n²) extra space per recursion level (one minor at a time).

package matrix

// Det returns the determinant of m.
// MAIN DESCRIPTION:
//   - Recursive Laplace expansion along row 0.
//
// Implementation:
//   - n == 1: the sole element.
//   - n == 2: a·d − b·c.
//   - n >= 3: Σ_k sign(k) · m[0,k] · Det(minor(0,k)), sign = +1 for even k, −1 for odd k.
//
// Returns:
//   - float64 determinant. Never fails for a constructed matrix.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func (m *SquareMat) Det() float64 { return detRec(m.data, m.n) }

// detRec computes the determinant of the n×n row-major block a.
func detRec(a []float64, n int) float64 {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}

	det := 0.0
	minor := make([]float64, (n-1)*(n-1)) // reused for every column k
	sign := 1.0
	for k := 0; k < n; k++ {
		minorInto(minor, a, n, k)
		det += sign * a[k] * detRec(minor, n-1) // a[k] == a[0*n+k]
		sign = -sign
	}

	return det
}

// minorInto writes the (n-1)×(n-1) minor of a obtained by deleting row 0 and
// column k into dst. Column j maps to j for j < k and to j-1 for j > k.
func minorInto(dst, a []float64, n, k int) {
	m := n - 1
	var i, j, col int
	for i = 1; i < n; i++ {
		col = 0
		for j = 0; j < n; j++ {
			if j == k {
				continue // skip the deleted column
			}
			dst[(i-1)*m+col] = a[i*n+j]
			col++
		}
	}
}

// Minor returns the (n-1)×(n-1) submatrix of m with row r and column c removed.
// Errors:
//   - ErrIndexOutOfRange (r or c outside [0,n)).
//   - ErrInvalidDimension (n == 1 has no non-empty minor).
//
// Complexity: O(n²).
func (m *SquareMat) Minor(r, c int) (*SquareMat, error) {
	if _, err := m.indexOf(r, c); err != nil {
		return nil, squareErrorf(ctxMinor, r, c, err)
	}
	if err := ValidateDimension(m.n - 1); err != nil {
		return nil, squareErrorf(ctxMinor, r, c, err)
	}
	n, sz := m.n, m.n-1
	res := &SquareMat{n: sz, data: make([]float64, sz*sz)}
	var i, j, di, dj int
	for i = 0; i < n; i++ {
		if i == r {
			continue
		}
		dj = 0
		for j = 0; j < n; j++ {
			if j == c {
				continue
			}
			res.data[di*sz+dj] = m.data[i*n+j]
			dj++
		}
		di++
	}

	return res, nil
}
