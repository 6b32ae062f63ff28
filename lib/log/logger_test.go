package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerWritesModuleAndAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, false, nil)).With("module", "window")

	logger.Info("window created", "width", 640, "height", 480)

	line := out.String()
	assert.Contains(t, line, "INFO [window] window created")
	assert.Contains(t, line, " height=480 width=640")
	assert.NotContains(t, line, "\033[")
}

func TestHandlerRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, false, &slog.HandlerOptions{Level: slog.LevelWarn}))

	logger.Info("hidden")
	assert.Empty(t, out.String())

	logger.Warn("shown")
	assert.Contains(t, out.String(), "WARN shown")
}

func TestHandlerColours(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, true, nil))

	logger.Error("boom")
	require.NotEmpty(t, out.String())
	assert.Contains(t, out.String(), "\033[91mERROR \033[0m")
}
