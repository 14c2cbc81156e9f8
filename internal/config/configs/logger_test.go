package configs

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Logger{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Logger{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Logger{Level: "loud"}.SlogLevel())
	assert.Equal(t, "json", Logger{Format: "JSON"}.SlogFormat())
	assert.Equal(t, "text", Logger{Format: "xml"}.SlogFormat())
}

func TestLogger_Handler(t *testing.T) {
	var buf bytes.Buffer
	slog.New(Logger{Level: "warn", Format: "json"}.Handler(&buf)).Info("dropped")
	assert.Empty(t, buf.String())

	slog.New(Logger{Level: "warn", Format: "json"}.Handler(&buf)).Warn("kept", slog.String("billboard", "BB-001"))
	assert.Contains(t, buf.String(), `"billboard":"BB-001"`)

	buf.Reset()
	slog.New(Logger{}.Handler(&buf)).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}
