package logs

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

type zerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger init a JSON Logger instance backed by zerolog
func NewZerologLogger(writer io.Writer, logLevel LogLevel) *zerologLogger {
	zl := zerolog.New(writer).
		Level(zerologLevel(logLevel)).
		With().
		Timestamp().
		CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + 1).
		Logger()
	return &zerologLogger{logger: zl}
}

func zerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case Debug:
		return zerolog.DebugLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

func (l *zerologLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Debug().Ctx(ctx).Msgf(msg, args...)
}

func (l *zerologLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Info().Ctx(ctx).Msgf(msg, args...)
}

func (l *zerologLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Warn().Ctx(ctx).Msgf(msg, args...)
}

func (l *zerologLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Error().Ctx(ctx).Msgf(msg, args...)
}
