package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdppathak/ferrox/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("text_format_by_default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "info", Format: "text"}, &buf)
		log.Info("hello", "key", "value")

		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "key=value")
	})

	t.Run("json_format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "info", Format: "json"}, &buf)
		log.Info("hello", "key", "value")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "value", record["key"])
	})

	t.Run("level_filters_records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "error", Format: "text"}, &buf)
		log.Info("dropped")
		log.Error("kept")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, "kept")
	})

	t.Run("debug_level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "debug", Format: "text"}, &buf)
		log.Debug("visible")

		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("unknown_level_falls_back_to_info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "bogus", Format: "text"}, &buf)
		log.Debug("dropped")
		log.Info("kept")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, "kept")
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		logger.Discard().Info("dropped", "key", "value")
	})
}

func TestParseLevelViaOutput(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"warn", "warning"} {
		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: level, Format: "text"}, &buf)
		log.Info("dropped")
		log.Warn("kept")

		out := buf.String()
		assert.NotContains(t, out, "dropped", "level %q", level)
		assert.True(t, strings.Contains(out, "kept"), "level %q", level)
	}
}
