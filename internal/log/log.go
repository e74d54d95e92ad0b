// ABOUTME: Leveled logging wrapper around zerolog with printf-style helpers
// ABOUTME: Writes to a lumberjack-rotated file so output never mixes with the TUI

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level constants matching zerolog levels.
const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel

	// LevelDisabled silences every helper, Error included.
	LevelDisabled = zerolog.Disabled
)

// Options configures where and how much is logged.
type Options struct {
	File       string // empty: discard
	Level      string // debug, info, warn, error, disabled
	MaxSizeMB  int
	MaxBackups int
	Console    bool // human-readable lines instead of JSON
}

var (
	logger atomic.Pointer[zerolog.Logger]
	level  atomic.Int32
)

func init() {
	level.Store(int32(LevelInfo))
	use(zerolog.New(io.Discard))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func use(l zerolog.Logger) {
	logger.Store(&l)
}

// Setup points the package logger at opts.File. The returned closer
// releases the file; it is a no-op when logging is discarded.
func Setup(opts Options) (io.Closer, error) {
	if opts.Level != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		SetLevel(lvl)
	}

	if opts.File == "" {
		use(zerolog.New(io.Discard))
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
	SetOutput(file, opts.Console)
	return file, nil
}

// SetOutput sends log lines to w.
func SetOutput(w io.Writer, console bool) {
	if console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05.000"}
	}
	use(zerolog.New(w).With().Timestamp().Logger())
}

// SetLevel sets the global log level.
func SetLevel(l zerolog.Level) {
	level.Store(int32(l))
}

// GetLevel returns the current log level.
func GetLevel() zerolog.Level {
	return zerolog.Level(level.Load())
}

func enabled(l zerolog.Level) bool {
	return l >= GetLevel()
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if !enabled(LevelDebug) {
		return
	}
	logger.Load().Debug().Msgf(format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if !enabled(LevelInfo) {
		return
	}
	logger.Load().Info().Msgf(format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if !enabled(LevelWarn) {
		return
	}
	logger.Load().Warn().Msgf(format, args...)
}

// Error logs an error message with its cause attached. It ignores the
// level unless logging is disabled.
func Error(err error, format string, args ...any) {
	if GetLevel() == LevelDisabled {
		return
	}
	logger.Load().Error().Err(err).Msgf(format, args...)
}
