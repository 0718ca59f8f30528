// Package logging builds the process logger for the slide button demos.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Format names a log line encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Environment variables the demo CLI reads its logging flags from.
const (
	EnvLogLevel  = "SLIDEDEMO_LOG_LEVEL"
	EnvLogFormat = "SLIDEDEMO_LOG_FORMAT"
	EnvLogFile   = "SLIDEDEMO_LOG_FILE"
)

// Config selects the level, format and sink. An empty File logs to stderr.
type Config struct {
	Level  string
	Format string
	File   string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig logs info and above as text, rotating files at 20 MB.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     string(FormatText),
		MaxSizeMB:  20,
		MaxBackups: 5,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Validate reports an unknown level or format.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	switch Format(strings.ToLower(strings.TrimSpace(c.Format))) {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("logging.format: invalid %q", c.Format)
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("logging.level: invalid %q", value)
	}
}

// New builds a logger for cfg. The returned close func releases the file sink.
func New(cfg Config) (*slog.Logger, func() error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	level, _ := ParseLevel(cfg.Level)

	writer, closeFn, err := resolveWriter(cfg)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch Format(strings.ToLower(strings.TrimSpace(cfg.Format))) {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}
	return slog.New(handler), closeFn, nil
}

// Init builds the logger for cfg and installs it as slog's default.
func Init(cfg Config) (func() error, error) {
	logger, closeFn, err := New(cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closeFn, nil
}

func resolveWriter(cfg Config) (io.Writer, func() error, error) {
	path := strings.TrimSpace(cfg.File)
	if path == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
	}
	rot := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return rot, rot.Close, nil
}
