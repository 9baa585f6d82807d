package configs

import (
	"log/slog"
	"strings"
)

// Logger configures the scheduler's slog output through LOG_LEVEL and
// LOG_FORMAT. Reconcile passes log one line per budget change, so "debug"
// mainly adds Graph API paging and policy reload details.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

var slogLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
	"err":     slog.LevelError,
}

// SlogLevel falls back to info for unknown values.
func (c Logger) SlogLevel() slog.Level {
	if lvl, ok := slogLevels[strings.ToLower(strings.TrimSpace(c.Level))]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// SlogFormat returns "json" or "text"; anything else is treated as text.
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}
