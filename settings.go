package gobatch

import (
	"os"
	"strings"

	"github.com/auracore/gobatch/internal/logs"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings engine wide settings, usually loaded from a YAML file
type Settings struct {
	PoolSize     int         `yaml:"poolSize"`
	DefaultChunk int         `yaml:"defaultChunk"`
	Log          LogSettings `yaml:"log"`
}

// LogSettings logger settings, Format is "text" or "json"
type LogSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultSettings settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		PoolSize:     DefaultBatchPoolSize,
		DefaultChunk: DefaultChunkSize,
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadSettings load settings from a YAML file, missing keys keep their defaults
func LoadSettings(file string) (Settings, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "read settings file:%v", file)
	}
	return ParseSettings(b)
}

// ParseSettings parse settings from YAML, missing keys keep their defaults
func ParseSettings(b []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, errors.Wrap(err, "parse settings")
	}
	if s.PoolSize <= 0 {
		return Settings{}, errors.Errorf("poolSize must be greater than 0, got:%v", s.PoolSize)
	}
	if s.DefaultChunk <= 0 {
		return Settings{}, errors.Errorf("defaultChunk must be greater than 0, got:%v", s.DefaultChunk)
	}
	return s, nil
}

// ApplySettings tune the batch pool, the default chunk and the logger
func ApplySettings(s Settings) error {
	l, err := newLogger(s.Log)
	if err != nil {
		return err
	}
	SetMaxRunningBatches(s.PoolSize)
	SetDefaultChunk(s.DefaultChunk)
	SetLogger(l)
	return nil
}

func newLogger(s LogSettings) (logs.Logger, error) {
	level, err := logs.ParseLevel(s.Level)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(s.Format) {
	case "", "text":
		return logs.NewLogger(os.Stderr, level), nil
	case "json":
		return logs.NewZerologLogger(os.Stderr, level), nil
	}
	return nil, errors.Errorf("unknown log format:%v", s.Format)
}
