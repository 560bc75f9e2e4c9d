// Package slogx configures log/slog for the service and carries a request
// scoped logger through context.
package slogx

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Redacted replaces the value of any attribute whose key is sensitive.
const Redacted = "[redacted]"

// sensitiveKeys never reach a log line with their value.
var sensitiveKeys = map[string]struct{}{
	"password":         {},
	"password_confirm": {},
	"token":            {},
	"access_token":     {},
	"bootstrap_token":  {},
	"authorization":    {},
	"pepper":           {},
}

type Config struct {
	Service string
	Version string
	Env     string // dev enables source locations
	Level   string
	Format  string // json (default) or text

	// Output defaults to stdout.
	Output io.Writer
}

// New builds the process logger, tags it with service metadata and installs
// it as the slog default.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{
		AddSource:   cfg.Env == "dev",
		Level:       ParseLevel(cfg.Level),
		ReplaceAttr: redact,
	}

	var h slog.Handler = slog.NewJSONHandler(out, opts)
	if strings.EqualFold(cfg.Format, "text") {
		h = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(h).With(
		slog.String("service", cfg.Service),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)
	slog.SetDefault(logger)
	return logger
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if _, ok := sensitiveKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, Redacted)
	}
	return a
}

// Discard drops everything; tests use it to stay quiet.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a LOG_LEVEL value to a slog.Level. Unknown values are info.
func ParseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
