package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/linsolve/linio"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Config{
		PivotTolerance: matrix.DefaultPivotTolerance,
		Format:         linio.FormatText,
		Precision:      linio.ShortestPrecision,
		LogMode:        "dev",
		Workers:        4,
	}, cfg)
}

func TestLoad_FileEnvFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linsolve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pivot_tolerance: 8\nformat: yaml\nprecision: 6\nworkers: 2\n"), 0o600))
	t.Setenv("LINSOLVE_WORKERS", "3")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("precision", 0, "")
	require.NoError(t, fs.Parse([]string{"--precision=2"}))

	vip := viper.New()
	require.NoError(t, vip.BindPFlag(KeyPrecision, fs.Lookup("precision")))

	cfg, err := Load(vip, path)
	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg.PivotTolerance)
	assert.Equal(t, linio.FormatYAML, cfg.Format)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 2, cfg.Precision)
}

func TestLoad_CanonicalFormat(t *testing.T) {
	for in, want := range map[string]linio.Format{"yml": linio.FormatYAML, "YAML": linio.FormatYAML, "": linio.FormatText, "Text": linio.FormatText} {
		vip := viper.New()
		vip.Set(KeyFormat, in)
		cfg, err := Load(vip, "")
		require.NoError(t, err, in)
		assert.Equal(t, want, cfg.Format, in)
	}

	vip := viper.New()
	vip.Set(KeyFormat, "json")
	_, err := Load(vip, "")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{PivotTolerance: 1, Format: linio.FormatText, Precision: -1, LogMode: "prod", Workers: 1}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
		key    string
	}{
		{"zero tolerance", func(c *Config) { c.PivotTolerance = 0 }, KeyPivotTolerance},
		{"negative tolerance", func(c *Config) { c.PivotTolerance = -2 }, KeyPivotTolerance},
		{"format", func(c *Config) { c.Format = "json" }, KeyFormat},
		{"non-canonical format", func(c *Config) { c.Format = "yml" }, KeyFormat},
		{"precision", func(c *Config) { c.Precision = -2 }, KeyPrecision},
		{"log mode", func(c *Config) { c.LogMode = "loud" }, KeyLogMode},
		{"workers", func(c *Config) { c.Workers = 0 }, KeyWorkers},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			err := c.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestSolveOptions(t *testing.T) {
	c := Config{PivotTolerance: 16}
	o := matrix.NewOptions(c.SolveOptions()...)
	assert.Equal(t, 16.0, o.PivotTolerance())
}
