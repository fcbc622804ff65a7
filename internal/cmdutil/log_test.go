package cmdutil

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevelAndColor(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelWarn, "auto")
	log.Info("hidden")
	log.Warn("shown", "step", 7)
	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown")
	require.Contains(t, out, "step=7")
	require.NotContains(t, out, "\x1b[")
}

func TestNewLoggerForcedColor(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, slog.LevelInfo, "always").Info("hi")
	require.Contains(t, buf.String(), "\x1b[")
}

func TestWarnfQuiet(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo, "never")
	Warnf(log, true, "dropped %d", 3)
	require.Empty(t, buf.String())
	Warnf(log, false, "dropped %d", 3)
	require.Contains(t, buf.String(), "dropped 3")
}
