package buffer

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed information, such as the outcome of
	// every split attempt.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for informational messages.
	LogLevelInfo
	// LogLevelWarn is for configurations that were adjusted.
	LogLevelWarn
	// LogLevelError is for faults reported by the source.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger defines the interface for logging within a Splitter.
// A Logger is shared by a Splitter and every Splitter split off from it,
// so implementations must be safe for concurrent use.
// The Logger is optional - if not provided, no logging occurs.
type Logger interface {
	// Log writes a log message at the specified level.
	// The message is formatted using fmt.Sprintf if args are provided.
	Log(level LogLevel, format string, args ...interface{})

	// Debug logs a debug-level message.
	Debug(format string, args ...interface{})

	// Info logs an info-level message.
	Info(format string, args ...interface{})

	// Warn logs a warning-level message.
	Warn(format string, args ...interface{})

	// Error logs an error-level message.
	Error(format string, args ...interface{})
}

// NoOpLogger is a logger that discards all log messages.
// This is the default logger when none is specified.
type NoOpLogger struct{}

// Log implements the Logger interface.
func (n *NoOpLogger) Log(level LogLevel, format string, args ...interface{}) {}

// Debug implements the Logger interface.
func (n *NoOpLogger) Debug(format string, args ...interface{}) {}

// Info implements the Logger interface.
func (n *NoOpLogger) Info(format string, args ...interface{}) {}

// Warn implements the Logger interface.
func (n *NoOpLogger) Warn(format string, args ...interface{}) {}

// Error implements the Logger interface.
func (n *NoOpLogger) Error(format string, args ...interface{}) {}

// CharmLogger is a Logger that writes structured, leveled output through
// github.com/charmbracelet/log.
type CharmLogger struct {
	logger *log.Logger
}

// NewCharmLogger returns a Logger writing to logger. Level filtering is left
// to logger.
func NewCharmLogger(logger *log.Logger) *CharmLogger {
	return &CharmLogger{
		logger: logger,
	}
}

// NewDefaultLogger returns a Logger writing to stderr with RFC 3339
// timestamps. Messages below minLevel are discarded.
func NewDefaultLogger(minLevel LogLevel) *CharmLogger {
	return NewCharmLogger(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "splitbatch",
		Level:           charmLevel(minLevel),
	}))
}

func charmLevel(level LogLevel) log.Level {
	switch level {
	case LogLevelDebug:
		return log.DebugLevel
	case LogLevelWarn:
		return log.WarnLevel
	case LogLevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Log implements the Logger interface.
func (c *CharmLogger) Log(level LogLevel, format string, args ...interface{}) {
	switch level {
	case LogLevelDebug:
		c.logger.Debugf(format, args...)
	case LogLevelInfo:
		c.logger.Infof(format, args...)
	case LogLevelWarn:
		c.logger.Warnf(format, args...)
	case LogLevelError:
		c.logger.Errorf(format, args...)
	}
}

// Debug implements the Logger interface.
func (c *CharmLogger) Debug(format string, args ...interface{}) {
	c.Log(LogLevelDebug, format, args...)
}

// Info implements the Logger interface.
func (c *CharmLogger) Info(format string, args ...interface{}) {
	c.Log(LogLevelInfo, format, args...)
}

// Warn implements the Logger interface.
func (c *CharmLogger) Warn(format string, args ...interface{}) {
	c.Log(LogLevelWarn, format, args...)
}

// Error implements the Logger interface.
func (c *CharmLogger) Error(format string, args ...interface{}) {
	c.Log(LogLevelError, format, args...)
}
