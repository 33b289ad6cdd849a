package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"", "dev", "DEV", "prod", "production"} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger, mode)
	}

	_, err := New("verbose")
	assert.Error(t, err)
}

func TestWith_CarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("run_id", "abc").Info("solved", "n", 3)
	l.Debug("pivot", "k", 0)
	l.Error("command failed", "error", "singular")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zap.ErrorLevel, entries[2].Level)
	assert.Equal(t, "solved", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "abc", ctx["run_id"])
	assert.EqualValues(t, 3, ctx["n"])
	assert.NotContains(t, entries[1].ContextMap(), "run_id")
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("ignored", "k", 1)
	l.Error("ignored")
	l.Sync()
}
