// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/squaremat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNew_FillAndDimension verifies every element equals the fill value.
func TestNew_FillAndDimension(t *testing.T) {
	cases := []struct {
		name string
		n    int
		opts []matrix.Option
		want float64
	}{
		{"default zero", 3, nil, 0},
		{"fill 2.5", 3, []matrix.Option{matrix.WithFill(2.5)}, 2.5},
		{"fill negative", 1, []matrix.Option{matrix.WithFill(-1.5)}, -1.5},
		{"last fill wins", 4, []matrix.Option{matrix.WithFill(1), matrix.WithFill(7)}, 7},
		{"fill +Inf", 2, []matrix.Option{matrix.WithFill(math.Inf(1))}, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := MustNew(t, tc.n, tc.opts...)
			require.Equal(t, tc.n, m.N())
			for i := 0; i < tc.n; i++ {
				for j := 0; j < tc.n; j++ {
					require.Equal(t, tc.want, MustAt(t, m, i, j))
				}
			}
		})
	}
}

// TestNew_InvalidDimension ensures New rejects non-positive dimensions.
func TestNew_InvalidDimension(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		m, err := matrix.New(n)
		require.Nil(t, m)
		require.ErrorIs(t, err, matrix.ErrInvalidDimension)
	}
	_, err := matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
}

// TestNewIdentity checks ones on the diagonal and zeros elsewhere.
func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)
}

// TestFromRows covers literal construction and rejection of bad shapes.
func TestFromRows(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m := MustFromRows(t, rows)
	CompareExact(t, rows, m)

	// the input is copied, not aliased
	rows[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAtSet_OutOfRange ensures At() and Set() return ErrIndexOutOfRange on invalid access.
func TestAtSet_OutOfRange(t *testing.T) {
	m := MustNew(t, 2)

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {2, 2}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrIndexOutOfRange, "At(%d,%d)", ij[0], ij[1])

		err = m.Set(ij[0], ij[1], 1)
		require.ErrorIs(t, err, matrix.ErrIndexOutOfRange, "Set(%d,%d)", ij[0], ij[1])
	}
	// failed Set must not write anything
	require.Equal(t, 0.0, m.Sum())
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustNew(t, 3)
	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
	require.Equal(t, 7.89, m.Sum())
}

// TestSum adds every element.
func TestSum(t *testing.T) {
	require.Equal(t, 10.0, fixtureA(t).Sum())
	require.Equal(t, 9*1.5, MustNew(t, 3, matrix.WithFill(1.5)).Sum())
}

// TestClone_Independence ensures Clone() returns a deep copy that does not share storage.
func TestClone_Independence(t *testing.T) {
	m := fixtureA(t)
	c := m.Clone()
	require.False(t, matrix.DataAlias_TestOnly(m, c))

	require.NoError(t, c.Set(0, 0, 3))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, c, 0, 0))
}

// TestAssign covers same-size overwrite, resize, self-assignment and nil handling.
func TestAssign(t *testing.T) {
	t.Run("same dimension overwrites in place", func(t *testing.T) {
		dst := MustNew(t, 2, matrix.WithFill(9))
		row, err := dst.Row(0)
		require.NoError(t, err)

		got, err := dst.Assign(fixtureA(t))
		require.NoError(t, err)
		require.Same(t, dst, got)
		CompareExact(t, [][]float64{{1, 2}, {3, 4}}, dst)

		// buffer was reused, so the earlier row view sees the new values
		v, err := row.At(1)
		require.NoError(t, err)
		require.Equal(t, 2.0, v)
	})

	t.Run("different dimension reallocates", func(t *testing.T) {
		dst := MustNew(t, 3, matrix.WithFill(9))
		src := fixtureA(t)
		_, err := dst.Assign(src)
		require.NoError(t, err)
		require.Equal(t, 2, dst.N())
		CompareExact(t, [][]float64{{1, 2}, {3, 4}}, dst)
		require.False(t, matrix.DataAlias_TestOnly(dst, src))

		// independence after assignment
		require.NoError(t, src.Set(0, 0, -1))
		require.Equal(t, 1.0, MustAt(t, dst, 0, 0))
	})

	t.Run("zero value target", func(t *testing.T) {
		var dst matrix.SquareMat
		_, err := dst.Assign(fixtureB(t))
		require.NoError(t, err)
		CompareExact(t, [][]float64{{5, 6}, {7, 8}}, &dst)
	})

	t.Run("self assignment is a no-op", func(t *testing.T) {
		m := fixtureA(t)
		got, err := m.Assign(m)
		require.NoError(t, err)
		require.Same(t, m, got)
		CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)
	})

	t.Run("nil source", func(t *testing.T) {
		m := fixtureA(t)
		_, err := m.Assign(nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
		CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)
	})
}

// TestEqualElements is the structural (not sum-based) equality.
func TestEqualElements(t *testing.T) {
	a := fixtureA(t)
	require.True(t, a.EqualElements(a.Clone()))
	require.False(t, a.EqualElements(a.Transpose()))
	require.False(t, a.EqualElements(MustNew(t, 3)))
	require.False(t, a.EqualElements(nil))
}

// TestIsFinite flags overflow produced by arithmetic.
func TestIsFinite(t *testing.T) {
	m := MustNew(t, 2, matrix.WithFill(1e300))
	require.True(t, m.IsFinite())
	require.False(t, m.Scale(1e300).IsFinite())
}
