package settings

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// LogLevel is the enumerated game log verbosity. LevelDefault means
// "whatever the game ships with"; the others force a specific level.
type LogLevel string

const (
	LevelDefault LogLevel = "DEFAULT"
	LevelDebug   LogLevel = "DEBUG"
	LevelInfo    LogLevel = "INFO"
	LevelWarn    LogLevel = "WARN"
	LevelError   LogLevel = "ERROR"
)

var logLevels = map[LogLevel]zapcore.Level{
	LevelDefault: zapcore.InfoLevel,
	LevelDebug:   zapcore.DebugLevel,
	LevelInfo:    zapcore.InfoLevel,
	LevelWarn:    zapcore.WarnLevel,
	LevelError:   zapcore.ErrorLevel,
}

// Valid reports whether l is one of the defined levels.
func (l LogLevel) Valid() bool {
	_, ok := logLevels[l]
	return ok
}

// ZapLevel maps the configured verbosity onto a zap level, so the host
// can apply the user's choice to the process logger.
func (l LogLevel) ZapLevel() zapcore.Level {
	return logLevels[l]
}

// ParseLogLevel converts a stored name back into a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	l := LogLevel(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}
