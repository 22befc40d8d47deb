// SPDX-License-Identifier: MIT

// Package matrix - sum-based comparison operators.
//
// CONTRACT (surprising, kept on purpose):
//   - All six comparisons look ONLY at each operand's Sum().
//   - [[1,0],[0,0]] and [[0,0],[0,1]] are Equal; so are a 2×2 and a 3×3 with
//     the same element sum. No dimension check is performed.
//   - Less/Greater therefore do not reflect any natural matrix ordering.
//
// Use EqualElements (exact) or AllClose (tolerance) for element-wise checks.

package matrix

import "cmp"

// Compare returns -1, 0 or +1 as m.Sum() is less than, equal to, or greater
// than b.Sum(). NaN sums order before every other value (cmp.Compare rules).
// Complexity: O(n²).
func (m *SquareMat) Compare(b *SquareMat) int { return cmp.Compare(m.Sum(), b.Sum()) }

// Equal reports m.Sum() == b.Sum().
func (m *SquareMat) Equal(b *SquareMat) bool { return m.Sum() == b.Sum() }

// NotEqual reports !m.Equal(b).
func (m *SquareMat) NotEqual(b *SquareMat) bool { return !m.Equal(b) }

// Less reports m.Sum() < b.Sum().
func (m *SquareMat) Less(b *SquareMat) bool { return m.Sum() < b.Sum() }

// LessEqual reports m.Sum() <= b.Sum().
func (m *SquareMat) LessEqual(b *SquareMat) bool { return m.Sum() <= b.Sum() }

// Greater reports m.Sum() > b.Sum().
func (m *SquareMat) Greater(b *SquareMat) bool { return m.Sum() > b.Sum() }

// GreaterEqual reports m.Sum() >= b.Sum().
func (m *SquareMat) GreaterEqual(b *SquareMat) bool { return m.Sum() >= b.Sum() }
