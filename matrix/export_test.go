// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and options snapshot.
//
// Purpose:
//   - Expose UNEXPORTED helpers to matrix_test ONLY (file ends in _test.go, so
//     it never reaches production builds).

// OptionsSnapshot is a read-only view of internal Options for tests.
type OptionsSnapshot struct {
	Fill float64
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly like New does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Fill: o.fill}
}

// DataAlias_TestOnly reports whether a and b share the same backing buffer.
func DataAlias_TestOnly(a, b *SquareMat) bool {
	if len(a.data) == 0 || len(b.data) == 0 {
		return false
	}

	return &a.data[0] == &b.data[0]
}
