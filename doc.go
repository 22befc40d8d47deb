// Package squaremat is a small, dependency-light playground for dense
// square-matrix arithmetic in Go.
//
// What is squaremat?
//
//	A single value type, matrix.SquareMat, that owns an n×n row-major buffer
//	and exposes the full algebra you would expect from a textbook matrix:
//		• Construction: New(n, WithFill(v)), NewIdentity, FromRows, Clone, Assign
//		• Access: bounds-checked At/Set and a Row view for two-step indexing
//		• Arithmetic: Add, Sub, Neg, Mul, Scale, Div, Hadamard, Transpose
//		• Mutation: *Assign forms, Inc/Dec (prefix) and PostInc/PostDec (postfix)
//		• Power: Pow(e) by binary exponentiation
//		• Determinant: Det() by cofactor (Laplace) expansion
//		• Comparison: Equal/Less/... by element sum (see matrix docs!)
//
// Why?
//
//   - Small surface – one type, explicit errors, no hidden state
//   - Deterministic – fixed loop orders, no goroutines
//   - Pure Go – no cgo
//
// Layout:
//
//	matrix/        the SquareMat value type and its kernels
//	internal/cli/  cobra command tree for the squaremat binary
//	cmd/squaremat/ demo/driver binary (demo, det, pow, version)
//
// Quick example:
//
//	A, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	fmt.Print(A.Transpose())
//	// [ 1 3 ]
//	// [ 2 4 ]
//
//	go install github.com/katalvlaran/squaremat/cmd/squaremat@latest
package squaremat
