package linio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/linsolve/matrix"
	"gopkg.in/yaml.v3"
)

// Format selects the report rendering.
type Format string

const (
	// FormatText renders labelled sections for terminals.
	FormatText Format = "text"
	// FormatYAML renders the Report struct with yaml.v3.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a case-insensitive name onto a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Report is a solved system together with its residual max_i |(A·x − b)_i|.
type Report struct {
	Size         int         `yaml:"size"`
	Coefficients [][]float64 `yaml:"coefficients"`
	RHS          []float64   `yaml:"rhs"`
	Solution     []float64   `yaml:"solution"`
	Residual     float64     `yaml:"residual"`
}

// NewReport assembles a Report and computes the residual of x.
func NewReport(a [][]float64, b, x []float64) (Report, error) {
	m, err := matrix.NewDenseFromRows(a)
	if err != nil {
		return Report{}, fmt.Errorf("linio: report: %w", err)
	}
	res, err := matrix.ResidualNorm(m, x, b)
	if err != nil {
		return Report{}, fmt.Errorf("linio: report: %w", err)
	}

	return Report{
		Size:         len(a),
		Coefficients: a,
		RHS:          b,
		Solution:     x,
		Residual:     res,
	}, nil
}

// EncodeReport writes rep to w in the requested format.
// precision only applies to FormatText.
func EncodeReport(w io.Writer, rep Report, format Format, precision int) error {
	switch format {
	case FormatText:
		return encodeText(w, rep, precision)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("linio: yaml: %w", err)
		}

		return enc.Close()
	}

	return fmt.Errorf("%q: %w", string(format), ErrUnknownFormat)
}

func encodeText(w io.Writer, rep Report, precision int) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("Coefficients:\n")
	if err := WriteMatrix(bw, rep.Coefficients, precision); err != nil {
		return err
	}
	bw.WriteString("\nRight-hand side:\n")
	if err := WriteVector(bw, rep.RHS, precision); err != nil {
		return err
	}
	bw.WriteString("\nSolution:\n")
	for i, v := range rep.Solution {
		fmt.Fprintf(bw, "x%d = %s\n", i+1, FormatValue(v, precision))
	}
	fmt.Fprintf(bw, "\nResidual: %s\n", FormatValue(rep.Residual, 3))

	return bw.Flush()
}
