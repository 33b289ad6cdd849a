package main

import (
	"fmt"

	"github.com/katalvlaran/linsolve/interp"
	"github.com/katalvlaran/linsolve/linio"
	"github.com/katalvlaran/linsolve/prompt"
	"github.com/spf13/cobra"
)

type interpCmd struct {
	*Context
	p1, p2 interp.Point
	x      float64
}

// NewInterpCmd builds a "linsolve interp" command.
func NewInterpCmd(cxt *Context) *cobra.Command {
	interpCmd := &interpCmd{Context: cxt}
	cmd := &cobra.Command{
		Use:   "interp",
		Short: "Linear interpolation Y = Y1 + (X-X1)*((Y2-Y1)/(X2-X1))",
		Long: `Evaluate the line through (X1, Y1) and (X2, Y2) at X.
Values not given as flags are asked for on the console.`,
		Example: `
  linsolve interp --x1 0 --y1 0 --x2 2 --y2 4 --x 1
  linsolve interp
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return interpCmd.run(cmd)
		},
	}
	cmd.Flags().Float64Var(&interpCmd.p1.X, "x1", 0, "X of the first point")
	cmd.Flags().Float64Var(&interpCmd.p1.Y, "y1", 0, "Y of the first point")
	cmd.Flags().Float64Var(&interpCmd.p2.X, "x2", 0, "X of the second point")
	cmd.Flags().Float64Var(&interpCmd.p2.Y, "y2", 0, "Y of the second point")
	cmd.Flags().Float64Var(&interpCmd.x, "x", 0, "X to evaluate")

	return cmd
}

func (c *interpCmd) run(cmd *cobra.Command) error {
	missing := []struct {
		flag  string
		label string
		dst   *float64
	}{
		{"x1", "X1? ", &c.p1.X},
		{"y1", "Y1? ", &c.p1.Y},
		{"x2", "X2? ", &c.p2.X},
		{"y2", "Y2? ", &c.p2.Y},
		{"x", "X? ", &c.x},
	}
	var p *prompt.Prompter
	for _, m := range missing {
		if cmd.Flags().Changed(m.flag) {
			continue
		}
		if p == nil {
			p = prompt.New(c.In, c.Out)
			fmt.Fprintln(c.Out, "LINEAR INTERP")
			fmt.Fprintln(c.Out, "Y=Y1+(X-X1)*((Y2-Y1)/(X2-X1))")
		}
		v, err := p.Float(m.label)
		if err != nil {
			return err
		}
		*m.dst = v
	}

	y, err := interp.Linear(c.p1, c.p2, c.x)
	if err != nil {
		return err
	}
	c.Log.Debug("interpolated", "x", c.x, "y", y)
	fmt.Fprintf(c.Out, "Y = %s\n", linio.FormatValue(y, c.Config.Precision))

	return nil
}
