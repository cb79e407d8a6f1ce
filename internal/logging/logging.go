// SPDX-License-Identifier: Unlicense OR MIT

// Package logging builds the slog loggers used by the command line
// tools.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

const (
	EnvLogLevel  = "SKTRACE_LOG_LEVEL"
	EnvLogFormat = "SKTRACE_LOG_FORMAT"
)

var (
	ErrLevel  = errors.New("logging: unknown level")
	ErrFormat = errors.New("logging: unknown format")
)

// Config selects the level and output format of a logger. Empty
// fields take their defaults, info and text.
type Config struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// WithEnv returns c with fields overridden by the SKTRACE_LOG_*
// environment variables.
func (c Config) WithEnv() Config {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.Format = v
	}
	return c
}

// Normalize lower-cases the fields and fills in defaults.
func (c Config) Normalize() (Config, error) {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = string(FormatText)
	}
	if _, err := parseLevel(c.Level); err != nil {
		return Config{}, err
	}
	switch Format(c.Format) {
	case FormatText, FormatJSON:
	default:
		return Config{}, fmt.Errorf("%w %q", ErrFormat, c.Format)
	}
	return c, nil
}

// New returns a logger writing to w.
func New(w io.Writer, cfg Config) (*slog.Logger, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	level, _ := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if Format(cfg.Format) == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrLevel, s)
	}
}
