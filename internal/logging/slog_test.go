package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))
	return NewSlogLogger(l), &buf
}

func TestSlogLoggerLevels(t *testing.T) {
	log, buf := newBufLogger()
	ctx := context.Background()

	log.Info(ctx, "hello", "k", "v")
	log.Warn(ctx, "careful")
	log.Error(ctx, "boom")

	out := buf.String()
	require.Contains(t, out, `"msg":"hello"`)
	require.Contains(t, out, `"k":"v"`)
	require.Contains(t, out, `"msg":"careful"`)
	require.Contains(t, out, `"msg":"boom"`)
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf)

	log.Info(context.Background(), "started", "addr", ":8080")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "started", rec["msg"])
	require.Equal(t, ":8080", rec["addr"])
	require.Equal(t, "INFO", rec["level"])
}

func TestSlogLoggerWith(t *testing.T) {
	log, buf := newBufLogger()

	child := log.With("component", "api")
	child.Info(context.Background(), "request")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "api", rec["component"])
	require.Equal(t, "request", rec["msg"])
}
