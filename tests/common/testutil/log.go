//go:build unit || e2e

package testutil

import (
	"bytes"
	"log/slog"
	"testing"
)

// CaptureLogs routes the default slog logger into a buffer for the rest of the test.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}
