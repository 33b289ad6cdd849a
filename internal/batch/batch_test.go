package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/linsolve/linio"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "b.matrix.txt", "2 1\n1 3\n")
	writeFile(t, dir, "b.rhs.txt", "3\n5\n")
	writeFile(t, dir, "a.matrix.txt", "0 1\n1 0\n")
	writeFile(t, dir, "a.rhs.txt", "2\n3\n")
	writeFile(t, dir, "c.matrix.txt", "1 2\n2 4\n")
	writeFile(t, dir, "c.rhs.txt", "1\n2\n")
	writeFile(t, dir, "orphan.matrix.txt", "1\n")
	writeFile(t, dir, "notes.txt", "ignored\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "d.matrix.txt"), 0o700))

	return dir
}

func TestDiscover(t *testing.T) {
	dir := fixtureDir(t)

	jobs, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{jobs[0].Name, jobs[1].Name, jobs[2].Name})
	assert.Equal(t, filepath.Join(dir, "a.rhs.txt"), jobs[0].RHSPath)
	assert.Equal(t, filepath.Join(dir, "a.solution.txt"), jobs[0].OutputPath)

	_, err = Discover(t.TempDir())
	assert.ErrorIs(t, err, ErrNoJobs)

	_, err = Discover(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun(t *testing.T) {
	dir := fixtureDir(t)
	jobs, err := Discover(dir)
	require.NoError(t, err)

	results := Run(context.Background(), jobs, Options{Workers: 2, Precision: linio.ShortestPrecision})
	require.Len(t, results, len(jobs))

	for i, res := range results {
		assert.Equal(t, jobs[i], res.Job, "order preserved")
	}

	require.NoError(t, results[0].Err)
	assert.Equal(t, []float64{3, 2}, results[0].Solution)
	assert.Equal(t, 0.0, results[0].Residual)

	require.NoError(t, results[1].Err)
	assert.InDeltaSlice(t, []float64{0.8, 1.4}, results[1].Solution, 1e-12)

	assert.ErrorIs(t, results[2].Err, matrix.ErrSingular)
	assert.Nil(t, results[2].Solution)
	assert.NoFileExists(t, filepath.Join(dir, "c.solution.txt"))

	saved, err := linio.LoadVector(filepath.Join(dir, "a.solution.txt"), 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, saved)
	assert.NotEqual(t, results[0].ID, results[1].ID)
}

func TestRun_JobErrorsAreIsolated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.matrix.txt", "1 x\n2 3\n")
	writeFile(t, dir, "short.matrix.txt", "1 0\n0 1\n")
	writeFile(t, dir, "short.rhs.txt", "1\n")
	writeFile(t, dir, "ok.matrix.txt", "4\n")
	writeFile(t, dir, "ok.rhs.txt", "2\n")

	jobs := []Job{
		{Name: "bad", MatrixPath: filepath.Join(dir, "bad.matrix.txt"), RHSPath: filepath.Join(dir, "none")},
		{Name: "short", MatrixPath: filepath.Join(dir, "short.matrix.txt"), RHSPath: filepath.Join(dir, "short.rhs.txt")},
		{Name: "ok", MatrixPath: filepath.Join(dir, "ok.matrix.txt"), RHSPath: filepath.Join(dir, "ok.rhs.txt")},
	}
	results := Run(context.Background(), jobs, Options{Workers: 3})

	assert.ErrorIs(t, results[0].Err, matrix.ErrInvalidInput)
	assert.ErrorIs(t, results[1].Err, matrix.ErrDimensionMismatch)
	require.NoError(t, results[2].Err)
	assert.Equal(t, []float64{0.5}, results[2].Solution)
}

func TestRun_Cancelled(t *testing.T) {
	dir := fixtureDir(t)
	jobs, err := Discover(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, jobs, Options{Workers: 1})
	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled)
	}
	assert.NoFileExists(t, filepath.Join(dir, "a.solution.txt"))
}
