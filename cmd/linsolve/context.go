package main

import (
	"io"

	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/internal/logger"
	"github.com/spf13/viper"
)

// Context is shared by every subcommand. The root command fills Config,
// Log and RunID before any subcommand runs.
type Context struct {
	In  io.Reader
	Out io.Writer

	Viper  *viper.Viper
	Config config.Config
	Log    *logger.Logger
	RunID  string
}
