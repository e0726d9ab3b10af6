package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides structured logging scoped by component name
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

type Options struct {
	Level   zerolog.Level
	UseJSON bool
	Writer  io.Writer
}

// New builds the application logger. Console output is used unless UseJSON is set.
func New(opts Options) Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	if opts.UseJSON {
		return NewZerolog(writer, opts.Level)
	}

	return NewZerolog(zerolog.ConsoleWriter{Out: writer, TimeFormat: "15:04:05"}, opts.Level)
}

// ParseLevel maps a textual level to zerolog. Unknown values report false.
func ParseLevel(s string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}

// NoOpLogger discards everything
type NoOpLogger struct{}

func (n NoOpLogger) Info(component string, message string, fields map[string]interface{})    {}
func (n NoOpLogger) Error(component string, err error, fields map[string]interface{})        {}
func (n NoOpLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (n NoOpLogger) Debug(component string, message string, fields map[string]interface{})   {}
