// Package linio reads and writes the plain-text exchange format used for
// coefficient matrices, right-hand sides and solutions.
//
// Format:
//
//	matrix file : one row per line, entries separated by whitespace
//	vector file : one value per line
//
// Blank lines are ignored. Values are parsed with strconv.ParseFloat and
// written with strconv.FormatFloat ('g', shortest by default), so a
// solution saved by WriteVector reads back bit-for-bit with ReadVector.
//
// Shape problems are caught here, before the solver is called: an empty
// file or a non-square matrix is matrix.ErrInvalidInput, a vector of the
// wrong length is matrix.ErrDimensionMismatch.
//
// Report / EncodeReport render a solved system either as human-readable
// text or as YAML.
package linio
