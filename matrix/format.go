// SPDX-License-Identifier: MIT

package matrix

import (
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "[ "
	_fmtRowClose = " ]\n"
	_fmtSep      = " "

	// _fmtPrecision mirrors the 6 significant digits of a default C-style
	// stream (%g), so 19 prints as "19" and 1e6 as "1e+06".
	_fmtPrecision = 6
)

// appendValue appends v in the canonical %g text form.
func appendValue(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'g', _fmtPrecision, 64)
}

// String renders rows as "[ v0 v1 ... v(n-1) ]\n", in row order.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into a strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(n²), Space O(n²) for formatting.
func (m *SquareMat) String() string {
	var b strings.Builder
	_, _ = m.WriteTo(&b) // strings.Builder never fails

	return b.String()
}

// WriteTo streams the String() rendering into w (io.WriterTo).
// One Write call is issued per row.
// Complexity: O(n²).
func (m *SquareMat) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var i, j, base int
	line := make([]byte, 0, 4+m.n*8) // rough per-row guess; append grows as needed
	for i = 0; i < m.n; i++ {
		line = append(line[:0], _fmtRowOpen...)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			line = appendValue(line, m.data[base+j])
			if j+1 < m.n {
				line = append(line, _fmtSep...)
			}
		}
		line = append(line, _fmtRowClose...)

		n, err := w.Write(line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
