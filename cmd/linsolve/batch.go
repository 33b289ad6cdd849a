package main

import (
	"fmt"

	"github.com/katalvlaran/linsolve/internal/batch"
	"github.com/katalvlaran/linsolve/linio"
	"github.com/spf13/cobra"
)

type batchCmd struct {
	*Context
}

// NewBatchCmd builds a "linsolve batch DIR" command.
func NewBatchCmd(cxt *Context) *cobra.Command {
	batchCmd := &batchCmd{Context: cxt}
	cmd := &cobra.Command{
		Use:   "batch DIR",
		Short: "Solve every <name>.matrix.txt / <name>.rhs.txt pair in DIR",
		Long: `Solve every <name>.matrix.txt / <name>.rhs.txt pair in DIR in parallel and
write each solution to <name>.solution.txt. Failing systems are reported and
do not stop the others; the command fails if any system failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return batchCmd.run(cmd, args[0])
		},
	}
	cmd.Flags().IntP("workers", "w", 4, "Number of systems solved concurrently")

	return cmd
}

func (c *batchCmd) run(cmd *cobra.Command, dir string) error {
	jobs, err := batch.Discover(dir)
	if err != nil {
		return err
	}
	c.Log.Info("batch started", "dir", dir, "jobs", len(jobs), "workers", c.Config.Workers)

	results := batch.Run(cmd.Context(), jobs, batch.Options{
		Workers:   c.Config.Workers,
		Precision: linio.ShortestPrecision,
		Solve:     c.Config.SolveOptions(),
		Logger:    c.Log,
	})

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(c.Out, "%s: FAILED: %s\n", res.Job.Name, userMessage(res.Err))
			continue
		}
		fmt.Fprintf(c.Out, "%s: n=%d residual=%s -> %s\n", res.Job.Name, len(res.Solution),
			linio.FormatValue(res.Residual, 3), res.Job.OutputPath)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d systems failed", failed, len(results))
	}

	return nil
}
