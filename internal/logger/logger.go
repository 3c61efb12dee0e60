package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = zerolog.New(io.Discard)
var rotating *lumberjack.Logger

// Init writes human-readable logs to stderr.
func Init() {
	SetOutput(os.Stderr)
	setLevel()
}

// InitFileOnly writes JSON logs to a rotating file, used while the TUI owns the terminal.
func InitFileOnly(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create logs directory: %w", err)
	}

	path := filepath.Join(dir, "nebula-dashboard.log")
	rotating = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}

	log = zerolog.New(rotating).With().Timestamp().Logger()
	setLevel()

	Info("Logger initialized in file-only mode: %s", path)
	return path, nil
}

// Close closes the log file if one is open.
func Close() {
	if rotating != nil {
		_ = rotating.Close()
		rotating = nil
	}
}

// SetOutput sets the output destination for the logger.
func SetOutput(w io.Writer) {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return fmt.Sprintf("[%s]", i)
	}
	log = zerolog.New(output).With().Timestamp().Logger()
}

func setLevel() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if _, exists := os.LookupEnv("DEBUG"); exists {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// Get returns the underlying logger for structured fields.
func Get() *zerolog.Logger {
	return &log
}

// Debug logs a debug message
func Debug(msg string, args ...interface{}) {
	log.Debug().Msgf(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...interface{}) {
	log.Info().Msgf(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...interface{}) {
	log.Warn().Msgf(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...interface{}) {
	log.Error().Msgf(msg, args...)
}

// Fatal logs a fatal message and exits the program
func Fatal(msg string, args ...interface{}) {
	log.Fatal().Msgf(msg, args...)
}
