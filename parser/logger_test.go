package parser

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := NewSlogAdapter(slog.New(h)).With("component", "test")

	log.Debug("debug message", "key", "value")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	for _, want := range []string{"debug message", "key=value", "component=test", "level=INFO", "level=WARN", "level=ERROR"} {
		assert.Contains(t, out, want)
	}
}

func TestNewSlogAdapterNil(t *testing.T) {
	assert.NotNil(t, NewSlogAdapter(nil))
}

func TestNopLogger(t *testing.T) {
	var log Logger = NopLogger{}
	assert.NotPanics(t, func() {
		log.Debug("x")
		log.With("a", 1).Info("y")
	})
}

func TestParserLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	p := &Parser{Logger: NewSlogAdapter(slog.New(h))}
	_, err := p.ParseBytes([]byte(minimalOAS2))
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "parsed document")
}
