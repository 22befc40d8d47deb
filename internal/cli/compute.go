package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/squaremat/internal/buildinfo"
)

func detCmd(a *app) *cobra.Command {
	var rows string

	c := &cobra.Command{
		Use:   "det [values...]",
		Short: "Print the determinant of a matrix (cofactor expansion)",
		Example: `  squaremat det --rows "6 1 1; 4 -2 5; 2 8 7"
  squaremat det -- 1 2 3 -4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(rows, args)
			if err != nil {
				return err
			}
			a.log.Debug("det.parsed", "n", m.N())
			if m.N() > maxDetN {
				a.log.Warn("det.large", "n", m.N(), "note", "cofactor expansion is O(n!)")
			}

			det := m.Det()
			a.log.Debug("det.computed", "n", m.N(), "det", det)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, m)
			fmt.Fprintf(out, "det = %g\n", det)
			return nil
		},
	}

	c.Flags().StringVarP(&rows, "rows", "r", "", `matrix rows, e.g. "1 2; 3 4"`)
	return c
}

// maxDetN is the largest n that finishes instantly under O(n!) expansion.
const maxDetN = 10

func powCmd(a *app) *cobra.Command {
	var rows string
	var exp int

	c := &cobra.Command{
		Use:     "pow [values...]",
		Short:   "Raise a matrix to a non-negative integer power",
		Example: `  squaremat pow -e 10 --rows "1 1; 1 0"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(rows, args)
			if err != nil {
				return err
			}
			p, err := m.Pow(exp)
			if err != nil {
				return err
			}
			a.log.Debug("pow.computed", "n", m.N(), "exp", exp, "finite", p.IsFinite())

			fmt.Fprint(cmd.OutOrStdout(), p)
			return nil
		},
	}

	c.Flags().StringVarP(&rows, "rows", "r", "", `matrix rows, e.g. "1 2; 3 4"`)
	c.Flags().IntVarP(&exp, "exp", "e", 1, "exponent (>= 0)")
	return c
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return nil
		},
	}
}
