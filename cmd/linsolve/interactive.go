package main

import (
	"fmt"

	"github.com/katalvlaran/linsolve/prompt"
	"github.com/spf13/cobra"
)

type interactiveCmd struct {
	*Context
	savePath string
}

// NewInteractiveCmd builds a "linsolve interactive" command.
func NewInteractiveCmd(cxt *Context) *cobra.Command {
	interactiveCmd := &interactiveCmd{Context: cxt}
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"console", "i"},
		Short:   "Enter a system entry by entry and solve it",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return interactiveCmd.run()
		},
	}
	cmd.Flags().StringVarP(&interactiveCmd.savePath, "save", "s", "", "Write the solution to this file, one value per line")

	return cmd
}

func (c *interactiveCmd) run() error {
	p := prompt.New(c.In, c.Out)

	n, err := p.Dimension()
	if err != nil {
		return err
	}
	a, err := p.Matrix(n, "coefficient")
	if err != nil {
		return err
	}
	b, err := p.Vector(n, "right-hand side")
	if err != nil {
		return err
	}

	fmt.Fprint(c.Out, "\nHere is the system solution:\n\n")

	return c.solveAndReport(a, b, c.savePath)
}
