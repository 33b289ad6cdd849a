package linio

import (
	"bufio"
	"io"
	"strconv"
)

// ShortestPrecision formats values with the fewest digits that round-trip.
const ShortestPrecision = -1

// FormatValue renders v with precision significant digits ('g' verb);
// ShortestPrecision (or any negative value) selects the round-trip form.
func FormatValue(v float64, precision int) string {
	if precision < 0 {
		precision = ShortestPrecision
	}

	return strconv.FormatFloat(v, 'g', precision, 64)
}

// WriteVector writes one value per line.
func WriteVector(w io.Writer, x []float64, precision int) error {
	bw := bufio.NewWriter(w)
	for _, v := range x {
		bw.WriteString(FormatValue(v, precision))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteMatrix writes one row per line with single-space separators.
func WriteMatrix(w io.Writer, rows [][]float64, precision int) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(FormatValue(v, precision))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
