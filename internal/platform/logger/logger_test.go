package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuietModeDropsDebugAndKeepsWarnings(t *testing.T) {
	var buf bytes.Buffer
	log := New(ModeQuiet, &buf)

	log.Debug("probe failed", "module", "fraud")
	log.Warn("backend slow", "path", "/health/score")
	log.Sync()

	assert.NotContains(t, buf.String(), "probe failed")
	assert.Contains(t, buf.String(), "backend slow")
	assert.Contains(t, buf.String(), "/health/score")
}

func TestDevModeEmitsDebugWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(ModeDev, &buf).With("session", "abc")

	log.Debug("probe failed", "module", "fraud")
	log.Sync()

	assert.Contains(t, buf.String(), "probe failed")
	assert.Contains(t, buf.String(), "fraud")
	assert.Contains(t, buf.String(), "abc")
}

func TestProdModeWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(ModeProd, &buf)

	log.Info("cycle complete", "connected", 2)
	log.Sync()

	assert.Contains(t, buf.String(), `"msg":"cycle complete"`)
	assert.Contains(t, buf.String(), `"connected":2`)
}

func TestNilLoggerOrNop(t *testing.T) {
	var log *Logger
	assert.NotPanics(t, func() {
		log.OrNop().Info("ignored")
	})
}
