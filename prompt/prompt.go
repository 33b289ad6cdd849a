// Package prompt runs the console dialogue that collects a linear system
// entry by entry: the system size, the coefficient matrix and the
// right-hand side vector.
//
// Every read re-prompts on malformed input instead of failing, so the only
// error a Prompter returns is ErrInputClosed (or a scanner failure) when the
// input runs out mid-dialogue.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the input ends before a value was accepted.
var ErrInputClosed = errors.New("prompt: input closed")

// Messages printed when an entry is rejected.
const (
	msgNotNumeric  = "Please enter a numeric value."
	msgNotInteger  = "Please enter an integer value for n."
	msgNotPositive = "Please enter a positive integer."
)

// Prompter reads answers line by line from in and writes questions to out.
// A Prompter is not safe for concurrent use.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// ask prints label and returns the next trimmed input line.
func (p *Prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("prompt: read: %w", err)
		}
		fmt.Fprintln(p.out)

		return "", ErrInputClosed
	}

	return strings.TrimSpace(p.in.Text()), nil
}

// Float asks for a float64 until one parses.
func (p *Prompter) Float(label string) (float64, error) {
	for {
		text, err := p.ask(label)
		if err != nil {
			return 0, err
		}
		v, perr := strconv.ParseFloat(text, 64)
		if perr == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, msgNotNumeric)
	}
}

// Dimension asks for the size n of the square system until a positive
// integer is entered.
func (p *Prompter) Dimension() (int, error) {
	for {
		text, err := p.ask("Enter the size of the square matrix (n): ")
		if err != nil {
			return 0, err
		}
		n, perr := strconv.Atoi(text)
		switch {
		case perr != nil:
			fmt.Fprintln(p.out, msgNotInteger)
		case n <= 0:
			fmt.Fprintln(p.out, msgNotPositive)
		default:
			return n, nil
		}
	}
}

// Matrix asks for the n×n entries row by row.
// description names the matrix in the questions, e.g. "coefficient".
func (p *Prompter) Matrix(n int, description string) ([][]float64, error) {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			label := fmt.Sprintf("Enter the %s matrix entry at row %d, column %d: ", description, i+1, j+1)
			v, err := p.Float(label)
			if err != nil {
				return nil, err
			}
			rows[i][j] = v
		}
	}

	return rows, nil
}

// Vector asks for n entries.
func (p *Prompter) Vector(n int, description string) ([]float64, error) {
	x := make([]float64, n)
	for i := range x {
		v, err := p.Float(fmt.Sprintf("Enter the %s vector entry at position %d: ", description, i+1))
		if err != nil {
			return nil, err
		}
		x[i] = v
	}

	return x, nil
}
