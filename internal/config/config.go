// Package config resolves CLI settings with viper: built-in defaults, then an
// optional YAML file, then LINSOLVE_* environment variables, then whatever
// flags the caller bound onto the same *viper.Viper.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/linsolve/internal/logger"
	"github.com/katalvlaran/linsolve/linio"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading the environment,
// e.g. LINSOLVE_PIVOT_TOLERANCE.
const EnvPrefix = "LINSOLVE"

// Keys understood by Load.
const (
	KeyPivotTolerance = "pivot_tolerance"
	KeyFormat         = "format"
	KeyPrecision      = "precision"
	KeyLogMode        = "log_mode"
	KeyWorkers        = "workers"
)

// ErrInvalidConfig is returned by Validate, wrapped with the offending key.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved CLI configuration. Format is always canonical
// (linio.FormatText or linio.FormatYAML) after Load.
type Config struct {
	PivotTolerance float64
	Format         linio.Format
	Precision      int
	LogMode        string
	Workers        int
}

// SetDefaults registers the default of every key on vip.
func SetDefaults(vip *viper.Viper) {
	vip.SetDefault(KeyPivotTolerance, matrix.DefaultPivotTolerance)
	vip.SetDefault(KeyFormat, string(linio.FormatText))
	vip.SetDefault(KeyPrecision, linio.ShortestPrecision)
	vip.SetDefault(KeyLogMode, logger.ModeDev)
	vip.SetDefault(KeyWorkers, 4)
}

// BindEnvironmentVariables makes vip consult LINSOLVE_<KEY> for every key.
func BindEnvironmentVariables(vip *viper.Viper) {
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
}

// Load reads path (skipped when empty) into vip and returns the validated
// Config. Flags must be bound on vip before calling Load.
func Load(vip *viper.Viper, path string) (Config, error) {
	SetDefaults(vip)
	BindEnvironmentVariables(vip)
	if path != "" {
		vip.SetConfigFile(path)
		vip.SetConfigType("yaml")
		if err := vip.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	format, err := linio.ParseFormat(vip.GetString(KeyFormat))
	if err != nil {
		return Config{}, fmt.Errorf("%s=%q: %w", KeyFormat, vip.GetString(KeyFormat), ErrInvalidConfig)
	}
	cfg := Config{
		PivotTolerance: vip.GetFloat64(KeyPivotTolerance),
		Format:         format,
		Precision:      vip.GetInt(KeyPrecision),
		LogMode:        vip.GetString(KeyLogMode),
		Workers:        vip.GetInt(KeyWorkers),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and reports the first invalid one.
func (c Config) Validate() error {
	if math.IsNaN(c.PivotTolerance) || math.IsInf(c.PivotTolerance, 0) || c.PivotTolerance <= 0 {
		return fmt.Errorf("%s=%v must be a positive finite number: %w", KeyPivotTolerance, c.PivotTolerance, ErrInvalidConfig)
	}
	if c.Format != linio.FormatText && c.Format != linio.FormatYAML {
		return fmt.Errorf("%s=%q: %w", KeyFormat, c.Format, ErrInvalidConfig)
	}
	if c.Precision < linio.ShortestPrecision {
		return fmt.Errorf("%s=%d must be -1 or non-negative: %w", KeyPrecision, c.Precision, ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogMode) {
	case logger.ModeDev, logger.ModeProd, "development", "production":
	default:
		return fmt.Errorf("%s=%q: %w", KeyLogMode, c.LogMode, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%s=%d must be at least 1: %w", KeyWorkers, c.Workers, ErrInvalidConfig)
	}

	return nil
}

// SolveOptions translates the config into solver options.
func (c Config) SolveOptions() []matrix.Option {
	return []matrix.Option{matrix.WithPivotTolerance(c.PivotTolerance)}
}
