package diag

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, log.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, log.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, log.InfoLevel, ParseLevel(""))
	assert.Equal(t, log.InfoLevel, ParseLevel("chatty"))
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := NewLogger(Options{Level: "info", Console: &buf, NoColor: true})
	defer closeFn()

	logger.Debug().Msg("hidden")
	logger.Info().Str("path", "benchy.gcode").Msg("loaded report")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "loaded report")
	assert.Contains(t, out, "benchy.gcode")
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gcodeview.log")
	logger, closeFn := NewLogger(Options{Level: "debug", File: path})

	logger.Debug().Int("settings", 3).Msg("extracted settings")
	require.NoError(t, closeFn())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "extracted settings")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotPanics(t, func() {
		logger.Error().Msg("dropped")
	})
}
