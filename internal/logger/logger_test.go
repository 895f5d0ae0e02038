package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shopping/internal/logger"
)

func TestParseLevel_DefaultsToWarn(t *testing.T) {
	lvl, err := logger.ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zapcore.WarnLevel, lvl)
}

func TestParseLevel_CaseInsensitive(t *testing.T) {
	lvl, err := logger.ParseLevel("DEBUG")
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, lvl)
}

func TestParseLevel_Unknown(t *testing.T) {
	_, err := logger.ParseLevel("loud")
	require.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&buf, "warn")
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", zap.String("k", "v"))
	require.NoError(t, log.Sync())

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown")
	require.Contains(t, out, "shopping")
}
