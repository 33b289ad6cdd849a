package main

import (
	"github.com/katalvlaran/linsolve/linio"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/spf13/cobra"
)

type solveCmd struct {
	*Context
	matrixPath string
	rhsPath    string
	outPath    string
}

// NewSolveCmd builds a "linsolve solve" command.
func NewSolveCmd(cxt *Context) *cobra.Command {
	solveCmd := &solveCmd{Context: cxt}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the system stored in a matrix file and a right-hand side file",
		Example: `
  linsolve solve --matrix A.txt --rhs b.txt
  linsolve solve --matrix A.txt --rhs b.txt --out x.txt --format yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return solveCmd.run()
		},
	}
	cmd.Flags().StringVarP(&solveCmd.matrixPath, "matrix", "m", "", "Coefficient matrix file, one row per line")
	cmd.Flags().StringVarP(&solveCmd.rhsPath, "rhs", "b", "", "Right-hand side file, one value per line")
	cmd.Flags().StringVarP(&solveCmd.outPath, "out", "o", "", "Write the solution to this file, one value per line")
	_ = cmd.MarkFlagRequired("matrix")
	_ = cmd.MarkFlagRequired("rhs")

	return cmd
}

func (c *solveCmd) run() error {
	a, err := linio.LoadMatrix(c.matrixPath)
	if err != nil {
		return err
	}
	b, err := linio.LoadVector(c.rhsPath, len(a))
	if err != nil {
		return err
	}
	c.Log.Debug("system loaded", "n", len(a), "matrix", c.matrixPath, "rhs", c.rhsPath)

	return c.solveAndReport(a, b, c.outPath)
}

// solveAndReport solves a·x = b, prints the report and optionally saves x.
func (c *Context) solveAndReport(a [][]float64, b []float64, outPath string) error {
	x, err := matrix.SolveRows(a, b, c.Config.SolveOptions()...)
	if err != nil {
		c.Log.Warn("solve failed", "n", len(a), "error", err)
		return err
	}
	rep, err := linio.NewReport(a, b, x)
	if err != nil {
		return err
	}
	c.Log.Info("system solved", "n", rep.Size, "residual", rep.Residual)

	if err = linio.EncodeReport(c.Out, rep, c.Config.Format, c.Config.Precision); err != nil {
		return err
	}
	if outPath == "" {
		return nil
	}
	if err = linio.SaveVector(outPath, x, linio.ShortestPrecision); err != nil {
		return err
	}
	c.Log.Info("solution saved", "path", outPath)

	return nil
}
