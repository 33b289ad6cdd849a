package main

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/internal/logger"
	"github.com/katalvlaran/linsolve/linio"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps flag names onto config keys.
var flagKeys = map[string]string{
	"pivot-tolerance": config.KeyPivotTolerance,
	"format":          config.KeyFormat,
	"precision":       config.KeyPrecision,
	"log-mode":        config.KeyLogMode,
	"workers":         config.KeyWorkers,
}

// NewRootCmd builds the "linsolve" command tree.
func NewRootCmd(cxt *Context) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           "linsolve",
		Short:         "Solve dense linear systems A·x = b",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cxt.setup(cmd, configPath)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cxt.Log.Sync()
		},
	}
	cmd.SetIn(cxt.In)
	cmd.SetOut(cxt.Out)

	flags := cmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML configuration file")
	flags.String("log-mode", logger.ModeDev, "Logger mode: dev or prod")
	flags.Float64("pivot-tolerance", matrix.DefaultPivotTolerance, "Multiplier of the scaled singularity threshold")
	flags.String("format", string(linio.FormatText), "Report format: text or yaml")
	flags.Int("precision", linio.ShortestPrecision, "Significant digits in text output (-1 for shortest round-trip)")

	cmd.AddCommand(
		NewSolveCmd(cxt),
		NewInteractiveCmd(cxt),
		NewBatchCmd(cxt),
		NewInterpCmd(cxt),
	)

	return cmd
}

// setup resolves the configuration for cmd and builds the run logger.
func (c *Context) setup(cmd *cobra.Command, configPath string) error {
	if c.Viper == nil {
		c.Viper = viper.New()
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = c.Viper.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return bindErr
	}

	cfg, err := config.Load(c.Viper, configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	if c.Log == nil {
		if c.Log, err = logger.New(cfg.LogMode); err != nil {
			return err
		}
	}
	c.RunID = uuid.NewString()
	c.Log = c.Log.With("run_id", c.RunID, "command", cmd.Name())
	c.Log.Debug("configuration resolved",
		"pivot_tolerance", cfg.PivotTolerance, "format", string(cfg.Format),
		"precision", cfg.Precision, "workers", cfg.Workers)

	return nil
}
