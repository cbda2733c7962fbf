//nolint:err113 // Test file uses errors.New() for creating test errors
package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotateError_NilError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, AnnotateError(nil, "key", "value"))
}

func TestAnnotateError_PreservesChain(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("key not found")
	annotated := AnnotateError(fmt.Errorf("%w: %q", sentinel, "Auckland"), "key", "Auckland", "ignore_case", true)

	require.Error(t, annotated)
	require.ErrorIs(t, annotated, sentinel)
	assert.Equal(t, `key not found: "Auckland"`, annotated.Error())

	attrs := ErrorAttrs(annotated)
	require.Len(t, attrs, 2)
	assert.Equal(t, "key", attrs[0].Key)
	assert.Equal(t, "Auckland", attrs[0].Value.String())
	assert.Equal(t, "ignore_case", attrs[1].Key)
	assert.True(t, attrs[1].Value.Bool())
}

func TestAnnotateError_WrappedAgain(t *testing.T) {
	t.Parallel()

	annotated := AnnotateError(errors.New("inner"), "op", "range")
	wrapped := fmt.Errorf("outer: %w", annotated)

	attrs := ErrorAttrs(wrapped)
	require.Len(t, attrs, 1)
	assert.Equal(t, "op", attrs[0].Key)
	assert.Nil(t, ErrorAttrs(errors.New("plain")))
}

func TestSlogErrorLogger_ExpandsAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(&slogErrorLogger{inner: slog.NewJSONHandler(&buf, nil)})

	err := AnnotateError(errors.New("boom"), "key", "america")
	logger.Info("lookup failed", "error", err, "plain", errors.New("untouched"), "count", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "lookup failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
	assert.Equal(t, "america", record["key"])
	assert.Equal(t, "untouched", record["plain"])
	assert.InDelta(t, 3, record["count"], 0)
}

func TestSlogErrorLogger_PassThrough(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := &slogErrorLogger{inner: slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})}
	logger := slog.New(handler).With("subsystem", "test").WithGroup("grp")

	assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))

	logger.Warn("plain message", "n", 1)
	assert.Contains(t, buf.String(), "plain message")
	assert.Contains(t, buf.String(), "subsystem=test")
	assert.Contains(t, buf.String(), "grp.n=1")
}
