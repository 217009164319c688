package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_WritesMessageAndArgs(t *testing.T) {
	log, buf := newBufLogger(slog.LevelDebug)
	ctx := context.Background()

	log.Info(ctx, "collection written", "key", "foodItems", "items", 3)

	out := buf.String()
	require.Contains(t, out, "collection written")
	require.Contains(t, out, "key=foodItems")
	require.Contains(t, out, "items=3")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	log, buf := newBufLogger(slog.LevelInfo)
	ctx := context.Background()

	log.Debug(ctx, "poll tick")
	require.Empty(t, buf.String())

	log.Warn(ctx, "decode failed")
	require.Contains(t, buf.String(), "decode failed")
}

func TestSlogLogger_WithCarriesAttrs(t *testing.T) {
	log, buf := newBufLogger(slog.LevelDebug)

	child := log.With("component", "poller")
	child.Info(context.Background(), "started")

	require.Contains(t, buf.String(), "component=poller")
}

func TestNopLogger_IsSilentAndChainable(t *testing.T) {
	n := NewNopLogger()
	require.Same(t, Logger(n), n.With("k", "v"))
	n.Error(context.Background(), "ignored")
}
