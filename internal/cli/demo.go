package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/squaremat/matrix"
)

func demoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through construction, arithmetic, comparisons and determinants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runDemo(cmd.OutOrStdout()); err != nil {
				return err
			}
			a.log.Debug("demo.done")
			return nil
		},
	}
}

// show prints a titled matrix block.
func show(w io.Writer, title string, m *matrix.SquareMat) {
	fmt.Fprintf(w, "%s:\n%s", title, m)
}

// runDemo mirrors the classic driver: every operator family on 2×2 and 3×3 inputs.
func runDemo(w io.Writer) error {
	A, err := matrix.New(2, matrix.WithFill(3))
	if err != nil {
		return err
	}
	B, err := matrix.New(2, matrix.WithFill(-1.5))
	if err != nil {
		return err
	}
	C, err := matrix.New(3, matrix.WithFill(2))
	if err != nil {
		return err
	}
	D, err := matrix.New(3)
	if err != nil {
		return err
	}

	show(w, "A (2x2, 3.0)", A)
	show(w, "B (2x2, -1.5)", B)
	show(w, "C (3x3, 2.0)", C)
	show(w, "D (3x3, 0.0)", D)
	fmt.Fprintln(w)

	// 2×2 operators
	E, err := A.Add(B)
	if err != nil {
		return err
	}
	F, err := A.Sub(B)
	if err != nil {
		return err
	}
	G, err := A.Mul(B)
	if err != nil {
		return err
	}
	H, err := matrix.ScalarMul(2, A)
	if err != nil {
		return err
	}
	I := B.Scale(-3)
	J, err := A.Pow(3)
	if err != nil {
		return err
	}
	K := A.Transpose()

	show(w, "E = A + B", E)
	show(w, "F = A - B", F)
	show(w, "G = A * B", G)
	show(w, "H = 2 * A", H)
	show(w, "I = B * (-3)", I)
	show(w, "J = A ^ 3", J)
	show(w, "K = ~A (transpose)", K)
	fmt.Fprintln(w)

	// ++ / --
	fmt.Fprintln(w, "Post-increment E++")
	show(w, "Before", E)
	show(w, "Returned (old copy)", E.PostInc())
	show(w, "After", E)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Pre-decrement --F")
	show(w, "Result", F.Dec())
	fmt.Fprintln(w)

	// 3×3 operators on a modified C
	for i := 0; i < C.N(); i++ {
		row, err := C.Row(i)
		if err != nil {
			return err
		}
		if err = row.Set(i, float64(i+1)); err != nil {
			return err
		}
	}
	if _, err = D.Assign(C.Scale(1.5)); err != nil {
		return err
	}
	M, err := C.Hadamard(D)
	if err != nil {
		return err
	}
	N, err := C.Div(2)
	if err != nil {
		return err
	}
	P := C.Transpose()

	show(w, "Modified C", C)
	show(w, "D = C * 1.5", D)
	show(w, "M = C % D (element-wise)", M)
	show(w, "N = C / 2", N)
	show(w, "P = ~C", P)
	fmt.Fprintln(w)

	// comparisons by element sum
	fmt.Fprintf(w, "A == B ? %t\n", A.Equal(B))
	fmt.Fprintf(w, "A != B ? %t\n", A.NotEqual(B))
	fmt.Fprintf(w, "A  < B ? %t\n", A.Less(B))
	fmt.Fprintf(w, "A >= B ? %t\n\n", A.GreaterEqual(B))

	// determinant
	Q, err := matrix.FromRows([][]float64{
		{6, 1, 1},
		{4, -2, 5},
		{2, 8, 7},
	})
	if err != nil {
		return err
	}
	show(w, "Q (3x3)", Q)
	_, err = fmt.Fprintf(w, "det(Q) = %g\n", Q.Det())
	return err
}
