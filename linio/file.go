package linio

import (
	"fmt"
	"os"
)

// LoadMatrix reads a matrix file from path.
func LoadMatrix(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("linio: open matrix: %w", err)
	}
	defer f.Close()

	rows, err := ReadMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// LoadVector reads a vector file from path and checks it holds expected values
// (expected < 0 disables the check).
func LoadVector(path string, expected int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("linio: open vector: %w", err)
	}
	defer f.Close()

	x, err := ReadVector(f, expected)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return x, nil
}

// SaveVector writes x to path, one value per line, truncating any existing file.
func SaveVector(path string, x []float64, precision int) error {
	return saveWith(path, func(f *os.File) error { return WriteVector(f, x, precision) })
}

// SaveMatrix writes rows to path, truncating any existing file.
func SaveMatrix(path string, rows [][]float64, precision int) error {
	return saveWith(path, func(f *os.File) error { return WriteMatrix(f, rows, precision) })
}

// saveWith creates path, runs write and reports the first of write/close errors.
func saveWith(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("linio: create %s: %w", path, err)
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("linio: write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("linio: close %s: %w", path, err)
	}

	return nil
}
