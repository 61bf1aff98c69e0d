package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedPost struct {
	tag  string
	data port.Fields
}

type fakeFluent struct {
	posts []recordedPost
}

func (f *fakeFluent) Post(tag string, message interface{}) error {
	f.posts = append(f.posts, recordedPost{tag: tag, data: message.(port.Fields)})
	return nil
}

func TestSlogAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelInfo, IsJSON: true})

	logger.WithFields(port.Fields{"component": "test"}).Error("failed", errors.New("boom"), port.Fields{"listing_id": "7"})
	logger.Debug("hidden", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "failed", entry["msg"])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "7", entry["listing_id"])
	assert.Equal(t, "boom", entry["error"])
}

func TestFluentLoggerAdapter_LevelsAndFields(t *testing.T) {
	client := &fakeFluent{}
	logger := newFluentLoggerAdapter(client, slog.LevelInfo).WithFields(port.Fields{"service_name": "palcars"})

	logger.Debug("skipped", nil)
	logger.Info("started", port.Fields{"port": "8080"})
	logger.Error("failed", errors.New("boom"), nil)

	require.Len(t, client.posts, 2)
	assert.Equal(t, "info", client.posts[0].tag)
	assert.Equal(t, "started", client.posts[0].data["message"])
	assert.Equal(t, "palcars", client.posts[0].data["service_name"])
	assert.Equal(t, "8080", client.posts[0].data["port"])
	assert.NotEmpty(t, client.posts[0].data["timestamp"])

	assert.Equal(t, "error", client.posts[1].tag)
	assert.Equal(t, "boom", client.posts[1].data["error"])
}

func TestFluentLoggerAdapter_NilClient(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestMultiLoggerAdapter(t *testing.T) {
	_, err := NewMultiloggerAdapter()
	assert.Error(t, err)

	first, second := &fakeFluent{}, &fakeFluent{}
	multi, err := NewMultiloggerAdapter(
		newFluentLoggerAdapter(first, slog.LevelDebug),
		newFluentLoggerAdapter(second, slog.LevelWarn),
	)
	require.NoError(t, err)

	enriched := multi.WithFields(port.Fields{"trace_id": "t1"})
	enriched.Info("hello", nil)
	enriched.Warn("careful", nil)

	assert.Len(t, first.posts, 2)
	require.Len(t, second.posts, 1)
	assert.Equal(t, "t1", second.posts[0].data["trace_id"])
}

func TestMultiLoggerAdapter_SkipsNil(t *testing.T) {
	_, err := NewMultiloggerAdapter(nil, nil)
	assert.Error(t, err)

	only := newFluentLoggerAdapter(&fakeFluent{}, slog.LevelDebug)
	logger, err := NewMultiloggerAdapter(nil, only)
	require.NoError(t, err)
	assert.Same(t, only, logger)
}
