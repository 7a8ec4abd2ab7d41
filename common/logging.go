// Package common provides the logging facade shared by every sigilscan
// package, modeled on unidoc/unipdf's common.Logger.
package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Logger is the interface used for logging throughout sigilscan.
type Logger interface {
	Error(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	IsLogLevel(level LogLevel) bool
}

// LogLevel is the verbosity level for logging.
type LogLevel int

// Defines log level enum where the most important logs have the lowest
// values: level error = 0, level debug = 4.
const (
	LogLevelError   LogLevel = 0
	LogLevelWarning LogLevel = 1
	LogLevelNotice  LogLevel = 2
	LogLevelInfo    LogLevel = 3
	LogLevelDebug   LogLevel = 4
)

// DummyLogger discards everything. It is the default.
type DummyLogger struct{}

func (DummyLogger) Error(format string, args ...interface{})   {}
func (DummyLogger) Warning(format string, args ...interface{}) {}
func (DummyLogger) Notice(format string, args ...interface{})  {}
func (DummyLogger) Info(format string, args ...interface{})    {}
func (DummyLogger) Debug(format string, args ...interface{})   {}
func (DummyLogger) IsLogLevel(level LogLevel) bool             { return false }

// ConsoleLogger writes to os.Stdout at or below its configured level.
type ConsoleLogger struct {
	LogLevel LogLevel
}

// NewConsoleLogger creates a console logger at the given level.
func NewConsoleLogger(logLevel LogLevel) *ConsoleLogger {
	return &ConsoleLogger{LogLevel: logLevel}
}

func (l ConsoleLogger) IsLogLevel(level LogLevel) bool { return l.LogLevel >= level }

func (l ConsoleLogger) Error(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelError {
		logToWriter(os.Stdout, "[ERROR] ", format, args...)
	}
}

func (l ConsoleLogger) Warning(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelWarning {
		logToWriter(os.Stdout, "[WARNING] ", format, args...)
	}
}

func (l ConsoleLogger) Notice(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelNotice {
		logToWriter(os.Stdout, "[NOTICE] ", format, args...)
	}
}

func (l ConsoleLogger) Info(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelInfo {
		logToWriter(os.Stdout, "[INFO] ", format, args...)
	}
}

func (l ConsoleLogger) Debug(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelDebug {
		logToWriter(os.Stdout, "[DEBUG] ", format, args...)
	}
}

func logToWriter(f io.Writer, prefix string, format string, args ...interface{}) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "???"
		line = 0
	} else {
		file = filepath.Base(file)
	}
	src := fmt.Sprintf("%s%s:%d ", prefix, file, line) + format + "\n"
	fmt.Fprintf(f, src, args...)
}

// Log is the package-level logger every sigilscan component writes to.
// It defaults to discarding everything; callers select a logger with
// SetLogger.
var Log Logger = DummyLogger{}

// SetLogger installs the logger used by sigilscan.
func SetLogger(logger Logger) {
	Log = logger
}
