// Package logging provides the structured JSON logger used across the
// analytics pipeline. Log lines go to stderr; stdout stays free for results.
package logging

import (
	"io"
	"sync"
	"time"
)

// Level orders log severities. Records below the logger's level are dropped.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to its Level, case-insensitively for the
// common spellings. Unrecognized input falls back to InfoLevel so a typo in
// LOG_LEVEL never silences a run.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug":
		return DebugLevel
	case "INFO", "info":
		return InfoLevel
	case "WARN", "warn", "WARNING", "warning":
		return WarnLevel
	case "ERROR", "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Field is one structured key-value attachment on a log record. Constructors
// for the domain's recurring fields live in fields.go.
type Field struct {
	Key   string
	Value any
}

// Logger is the logging interface the pipeline codes against.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child logger carrying the given fields on every record,
	// used to scope a run id or algorithm name over a whole pass.
	With(fields ...Field) Logger

	SetLevel(level Level)
	GetLevel() Level
}

// JSONLogger writes one JSON object per record. Safe for concurrent use.
type JSONLogger struct {
	writer io.Writer
	level  Level
	fields []Field
	mu     sync.Mutex
}

// LogEntry is the wire shape of a single record.
type LogEntry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// NopLogger discards everything. Tests pass it where a Logger is required.
type NopLogger struct{}

func (NopLogger) Debug(msg string, fields ...Field) {}
func (NopLogger) Info(msg string, fields ...Field)  {}
func (NopLogger) Warn(msg string, fields ...Field)  {}
func (NopLogger) Error(msg string, fields ...Field) {}
func (n NopLogger) With(fields ...Field) Logger     { return n }
func (NopLogger) SetLevel(level Level)              {}
func (NopLogger) GetLevel() Level                   { return InfoLevel }

// NewNopLogger returns a logger that drops all records.
func NewNopLogger() Logger {
	return NopLogger{}
}

// TimedOperation pairs a log message with the wall-clock duration of the
// work it describes. Created by StartTimer, finished by End or EndError.
type TimedOperation struct {
	logger Logger
	msg    string
	start  time.Time
	fields []Field
}
