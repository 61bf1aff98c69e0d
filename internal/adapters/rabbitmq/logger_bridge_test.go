package rabbitmq

import (
	"errors"
	"testing"

	"github.com/mnasyf821-dotcom/palcars/internal/core/port"
	"github.com/stretchr/testify/assert"
)

type capturedLog struct {
	level  string
	msg    string
	err    error
	fields port.Fields
}

type captureLogger struct {
	entries []capturedLog
}

func (c *captureLogger) Info(msg string, fields port.Fields) {
	c.entries = append(c.entries, capturedLog{level: "info", msg: msg, fields: fields})
}
func (c *captureLogger) Warn(msg string, fields port.Fields) {
	c.entries = append(c.entries, capturedLog{level: "warn", msg: msg, fields: fields})
}
func (c *captureLogger) Debug(msg string, fields port.Fields) {
	c.entries = append(c.entries, capturedLog{level: "debug", msg: msg, fields: fields})
}
func (c *captureLogger) Error(msg string, err error, fields port.Fields) {
	c.entries = append(c.entries, capturedLog{level: "error", msg: msg, err: err, fields: fields})
}
func (c *captureLogger) WithFields(fields port.Fields) port.LoggerPort { return c }

func TestPkgLoggerBridge(t *testing.T) {
	capture := &captureLogger{}
	bridge := NewPkgLoggerBridge(capture)

	bridge.Info("connected", "url", "amqp://localhost", 42, "skipped", "dangling")
	bridge.Error(errors.New("boom"), "failed", "attempt", 3)

	if assert.Len(t, capture.entries, 2) {
		assert.Equal(t, port.Fields{"url": "amqp://localhost"}, capture.entries[0].fields)
		assert.Equal(t, "error", capture.entries[1].level)
		assert.EqualError(t, capture.entries[1].err, "boom")
		assert.Equal(t, port.Fields{"attempt": 3}, capture.entries[1].fields)
	}
}
