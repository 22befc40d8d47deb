// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/squaremat/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that no options resolve to documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultFill, o.Fill)
}

// TestOptions_LastWriterWins ensures later options override earlier ones.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithFill(1), matrix.WithFill(-2))
	require.Equal(t, -2.0, o.Fill)

	// nil options are skipped
	o = matrix.GatherOptionsSnapshot_TestOnly(nil, matrix.WithFill(3))
	require.Equal(t, 3.0, o.Fill)
}

// TestWithFill_NonFinite stores NaN and ±Inf fills as given.
func TestWithFill_NonFinite(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1)} {
		m, err := matrix.New(2, matrix.WithFill(v))
		require.NoError(t, err)
		require.False(t, m.IsFinite())
		require.Equal(t, v, MustAt(t, m, 1, 0))
	}

	m, err := matrix.New(3, matrix.WithFill(math.NaN()))
	require.NoError(t, err)
	require.False(t, m.IsFinite())
	for i := 0; i < m.N(); i++ {
		for j := 0; j < m.N(); j++ {
			require.True(t, math.IsNaN(MustAt(t, m, i, j)))
		}
	}
}

// TestWithFill_NegativeZero keeps the sign bit of a -0 fill.
func TestWithFill_NegativeZero(t *testing.T) {
	m, err := matrix.New(2, matrix.WithFill(math.Copysign(0, -1)))
	require.NoError(t, err)
	require.True(t, math.Signbit(MustAt(t, m, 1, 1)))
}
