package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/squaremat/matrix"
)

var errNoValues = errors.New("no matrix values given (use --rows or positional values)")

// parseMatrix builds a matrix from either --rows ("1 2; 3 4") or n² positional
// values. Negative positional values must follow "--" so cobra does not read
// them as flags.
func parseMatrix(rowsFlag string, args []string) (*matrix.SquareMat, error) {
	if strings.TrimSpace(rowsFlag) != "" {
		if len(args) > 0 {
			return nil, errors.New("use either --rows or positional values, not both")
		}
		return parseRows(rowsFlag)
	}
	return parseFlat(args)
}

// parseRows reads rows separated by ';' with values separated by spaces or commas.
func parseRows(s string) (*matrix.SquareMat, error) {
	parts := strings.Split(s, ";")
	rows := make([][]float64, 0, len(parts))
	for i, p := range parts {
		fields := splitValues(p)
		if len(fields) == 0 {
			return nil, fmt.Errorf("row %d is empty", i)
		}
		row, err := parseFloats(fields)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return matrix.FromRows(rows)
}

// parseFlat reads n² values in row-major order and infers n.
func parseFlat(args []string) (*matrix.SquareMat, error) {
	var fields []string
	for _, a := range args {
		fields = append(fields, splitValues(a)...)
	}
	if len(fields) == 0 {
		return nil, errNoValues
	}
	n := int(math.Sqrt(float64(len(fields))))
	for n*n < len(fields) {
		n++
	}
	if n*n != len(fields) {
		return nil, fmt.Errorf("%d values do not form a square matrix", len(fields))
	}
	vals, err := parseFloats(fields)
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = vals[i*n : (i+1)*n]
	}
	return matrix.FromRows(rows)
}

func splitValues(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// parseFloats rejects NaN and ±Inf. The matrix package stores any float64;
// refusing non-finite input is a policy of this command line only.
func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", f, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("value %q: must be finite", f)
		}
		out[i] = v
	}
	return out, nil
}
