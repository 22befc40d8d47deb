// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with the operation
// tag via matrixErrorf ("Add: matrix: dimension mismatch"); callers still
// match them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> dimension/index -> value (division by zero, exponent).

var (
	// ErrInvalidDimension is returned when a matrix is requested with n <= 0.
	ErrInvalidDimension = errors.New("matrix: dimension must be > 0")

	// ErrIndexOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different dimension in a
	// binary matrix operation (Add, Sub, Mul, Hadamard).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDivisionByZero is returned by Div/DivAssign when the scalar is 0.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrInvalidExponent is returned by Pow when the exponent is negative.
	ErrInvalidExponent = errors.New("matrix: exponent must be >= 0")

	// ErrInvalidTolerance is returned by AllClose when rtol or atol is NaN/±Inf.
	ErrInvalidTolerance = errors.New("matrix: tolerance must be finite")

	// ErrNilMatrix indicates that a nil *SquareMat (argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
