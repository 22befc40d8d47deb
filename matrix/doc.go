// Package matrix provides SquareMat, a dense n×n matrix value type.
//
// The package provides:
//
//   - Construction with an optional fill value (New, WithFill), identity
//     matrices (NewIdentity) and literal construction (FromRows).
//   - Bounds-checked element access (At/Set) and a Row view supporting
//     two-step indexing: m.Row(i) then Row.At(j).
//   - Element-wise and matrix-product arithmetic, each in a fresh-result form
//     and an in-place *Assign form that returns the receiver for chaining.
//   - Binary exponentiation (Pow) and a recursive cofactor determinant (Det).
//   - Text rendering in the "[ v0 v1 ... ]" row format (String, WriteTo).
//
// IMPORTANT: Equal, Less, Greater and friends compare matrices by the SUM of
// their elements only. Two structurally different matrices with the same sum
// are Equal. Use EqualElements or AllClose for element-wise comparisons.
//
// All failures are reported as wrapped sentinel errors (see errors.go) and
// must be matched with errors.Is. Nothing in this package panics on user
// input.
//
// The type is not safe for concurrent mutation. Callers that share an
// instance across goroutines must synchronize externally.
package matrix
