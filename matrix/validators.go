// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/dimension/scalar checks here.
//  - Every kernel validates BEFORE it touches receiver state (validate-then-act).
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Dimension).

package matrix

import "fmt"

// zeroDivisor is the only scalar rejected by Div/DivAssign.
const zeroDivisor = 0.0

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *SquareMat) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameDim ensures a and b have equal dimension.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameDim(a, b *SquareMat) error {
	if a.n != b.n {
		return validatorErrorf(fmt.Sprintf("ValidateSameDim(%d,%d)", a.n, b.n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinary is the composite guard for binary kernels: NotNil(a) →
// NotNil(b) → SameDim(a, b).
// Complexity: O(1).
func ValidateBinary(a, b *SquareMat) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameDim(a, b)
}

// ValidateDimension ensures n is a legal dimension (n > 0).
// Complexity: O(1).
func ValidateDimension(n int) error {
	if n <= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateDimension(%d)", n), ErrInvalidDimension)
	}

	return nil
}

// ValidateDivisor rejects an exact zero divisor. Tiny non-zero values are
// accepted; there is no tolerance policy.
// Complexity: O(1).
func ValidateDivisor(s float64) error {
	if s == zeroDivisor {
		return validatorErrorf("ValidateDivisor", ErrDivisionByZero)
	}

	return nil
}

// ValidateExponent rejects negative exponents.
// Complexity: O(1).
func ValidateExponent(e int) error {
	if e < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateExponent(%d)", e), ErrInvalidExponent)
	}

	return nil
}
