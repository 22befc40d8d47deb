// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide free-function entry points for forms that read better with the
//     scalar or both operands as arguments (s·m, AllClose(a, b)).
//   - Avoid logic duplication; each facade delegates to the canonical kernel.

package matrix

import "math"

// ScalarMul returns s·m, the scalar-left form of m.Scale(s).
// Scalar multiplication commutes: ScalarMul(s, m) and m.Scale(s) are
// element-wise identical.
// Errors: ErrNilMatrix.
// Complexity: O(n²).
func ScalarMul(s float64, m *SquareMat) (*SquareMat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScalarMul, err)
	}

	return m.Scale(s), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for equal dimensions.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have the same dimension.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidTolerance.
//
// Complexity:
//   - Time O(n²), Space O(1).
func AllClose(a, b *SquareMat, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrInvalidTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinary(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for k := range a.data {
		av, bv = a.data[k], b.data[k]
		if av == bv {
			continue // exact match, including equal infinities
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) || math.IsNaN(av) || math.IsNaN(bv) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
