// Package batch solves many systems stored on disk in parallel.
//
// A job names a coefficient file, a right-hand side file and an output
// file in the linio text format. Jobs run on a bounded errgroup; a failing
// job records its error in its Result and never cancels its siblings.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/linsolve/internal/logger"
	"github.com/katalvlaran/linsolve/linio"
	"github.com/katalvlaran/linsolve/matrix"
	"golang.org/x/sync/errgroup"
)

// File name suffixes recognised by Discover.
const (
	MatrixSuffix   = ".matrix.txt"
	RHSSuffix      = ".rhs.txt"
	SolutionSuffix = ".solution.txt"
)

// ErrNoJobs is returned by Discover when dir holds no complete system.
var ErrNoJobs = errors.New("batch: no systems found")

// Job names the files of one system and where its solution goes.
type Job struct {
	Name       string
	MatrixPath string
	RHSPath    string
	OutputPath string
}

// Result is the outcome of one Job; Solution is nil when Err is set.
type Result struct {
	Job      Job
	ID       uuid.UUID
	Solution []float64
	Residual float64
	Elapsed  time.Duration
	Err      error
}

// Options tunes Run.
type Options struct {
	// Workers bounds the number of jobs solved at once; values < 1 mean 1.
	Workers int
	// Precision is passed to linio.SaveVector.
	Precision int
	// Solve is forwarded to matrix.SolveRows.
	Solve []matrix.Option
	// Logger receives one line per job; nil disables logging.
	Logger *logger.Logger
}

// Run solves every job and returns results in job order.
// Jobs not yet started when ctx is cancelled report ctx.Err().
func Run(ctx context.Context, jobs []Job, opts Options) []Result {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	results := make([]Result, len(jobs))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			res := Result{Job: job, ID: uuid.New()}
			if err := ctx.Err(); err != nil {
				res.Err = err
				results[i] = res
				return nil
			}
			start := time.Now()
			res.Solution, res.Residual, res.Err = solveJob(job, opts)
			res.Elapsed = time.Since(start)
			results[i] = res

			if res.Err != nil {
				log.Warn("batch job failed", "job", job.Name, "job_id", res.ID.String(), "error", res.Err)
			} else {
				log.Info("batch job solved", "job", job.Name, "job_id", res.ID.String(),
					"n", len(res.Solution), "residual", res.Residual, "elapsed", res.Elapsed)
			}

			return nil
		})
	}
	_ = g.Wait()

	return results
}

// solveJob loads, solves and stores one system.
func solveJob(job Job, opts Options) ([]float64, float64, error) {
	a, err := linio.LoadMatrix(job.MatrixPath)
	if err != nil {
		return nil, 0, err
	}
	b, err := linio.LoadVector(job.RHSPath, len(a))
	if err != nil {
		return nil, 0, err
	}
	x, err := matrix.SolveRows(a, b, opts.Solve...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", job.Name, err)
	}
	rep, err := linio.NewReport(a, b, x)
	if err != nil {
		return nil, 0, err
	}
	if job.OutputPath != "" {
		if err = linio.SaveVector(job.OutputPath, x, opts.Precision); err != nil {
			return nil, 0, err
		}
	}

	return x, rep.Residual, nil
}

// Discover pairs every <name>.matrix.txt in dir with <name>.rhs.txt and
// targets <name>.solution.txt, sorted by name. Matrices without a
// right-hand side are skipped.
func Discover(dir string) ([]Job, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			present[e.Name()] = true
		}
	}

	var jobs []Job
	for fname := range present {
		name, ok := strings.CutSuffix(fname, MatrixSuffix)
		if !ok || name == "" || !present[name+RHSSuffix] {
			continue
		}
		jobs = append(jobs, Job{
			Name:       name,
			MatrixPath: filepath.Join(dir, fname),
			RHSPath:    filepath.Join(dir, name+RHSSuffix),
			OutputPath: filepath.Join(dir, name+SolutionSuffix),
		})
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoJobs)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Name < jobs[j].Name })

	return jobs, nil
}
