package gobatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bmizerany/assert"
)

func TestParseSettings(t *testing.T) {
	s, err := ParseSettings([]byte(`
poolSize: 16
defaultChunk: 5
log:
  level: debug
  format: json
`))
	assert.Equal(t, nil, err)
	assert.Equal(t, 16, s.PoolSize)
	assert.Equal(t, 5, s.DefaultChunk)
	assert.Equal(t, LogSettings{Level: "debug", Format: "json"}, s.Log)

	s, err = ParseSettings([]byte(`defaultChunk: 2`))
	assert.Equal(t, nil, err)
	assert.Equal(t, DefaultBatchPoolSize, s.PoolSize)
	assert.Equal(t, 2, s.DefaultChunk)
	assert.Equal(t, "text", s.Log.Format)

	_, err = ParseSettings([]byte(`defaultChunk: 0`))
	assert.NotEqual(t, nil, err)

	_, err = ParseSettings([]byte(`poolSize: [1`))
	assert.NotEqual(t, nil, err)
}

func TestLoadSettings(t *testing.T) {
	file := filepath.Join(t.TempDir(), "gobatch.yaml")
	err := os.WriteFile(file, []byte("poolSize: 8\n"), 0600)
	assert.Equal(t, nil, err)

	s, err := LoadSettings(file)
	assert.Equal(t, nil, err)
	assert.Equal(t, 8, s.PoolSize)

	_, err = LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotEqual(t, nil, err)
}

func TestApplySettings(t *testing.T) {
	old := logger
	defer func() {
		logger = old
		SetDefaultChunk(DefaultChunkSize)
		SetMaxRunningBatches(DefaultBatchPoolSize)
	}()

	s := DefaultSettings()
	s.DefaultChunk = 3
	s.Log.Format = "json"
	assert.Equal(t, nil, ApplySettings(s))
	assert.Equal(t, 3, getDefaultChunk())

	s.Log.Format = "xml"
	assert.NotEqual(t, nil, ApplySettings(s))

	s.Log.Format = "text"
	s.Log.Level = "loud"
	assert.NotEqual(t, nil, ApplySettings(s))
}
