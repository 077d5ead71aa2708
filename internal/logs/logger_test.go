package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bmizerany/assert"
)

func TestDefaultLogger_Level(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}
	l := NewLogger(buf, Warn)
	l.Debug(ctx, "debug %v", 1)
	l.Info(ctx, "info %v", 2)
	l.Warn(ctx, "warn %v", 3)
	l.Error(ctx, "error %v", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 2, len(lines))
	assert.T(t, strings.Contains(lines[0], "[WARN]"))
	assert.T(t, strings.HasSuffix(lines[0], "warn 3"))
	assert.T(t, strings.Contains(lines[1], "[ERROR]"))
	assert.T(t, strings.Contains(lines[1], "logger_test.go"))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	assert.Equal(t, nil, err)
	assert.Equal(t, Debug, level)

	level, err = ParseLevel("")
	assert.Equal(t, nil, err)
	assert.Equal(t, Info, level)

	level, err = ParseLevel("warning")
	assert.Equal(t, nil, err)
	assert.Equal(t, Warn, level)

	_, err = ParseLevel("verbose")
	assert.NotEqual(t, nil, err)
}

func TestZerologLogger(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}
	l := NewZerologLogger(buf, Info)
	l.Debug(ctx, "hidden")
	l.Error(ctx, "batch failed, batchName:%v", "orders")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 1, len(lines))
	entry := map[string]interface{}{}
	err := json.Unmarshal([]byte(lines[0]), &entry)
	assert.Equal(t, nil, err)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "batch failed, batchName:orders", entry["message"])
	assert.T(t, strings.Contains(entry["caller"].(string), "logger_test.go"))
}
