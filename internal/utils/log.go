package utils

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// LogLevel of srarq
type LogLevel uint8

const logEnv = "SRARQ_LOG_LEVEL"

const (
	// LogLevelNothing disables
	LogLevelNothing LogLevel = 0
	// LogLevelError enables err logs
	LogLevelError LogLevel = 1
	// LogLevelInfo enables info logs (e.g. session events)
	LogLevelInfo LogLevel = 2
	// LogLevelDebug enables debug logs (e.g. batch contents)
	LogLevelDebug LogLevel = 3
)

// A Logger logs.
type Logger interface {
	SetLogLevel(LogLevel)
	SetLogTimeFormat(format string)
	WithPrefix(prefix string) Logger
	Debug() bool

	Errorf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// DefaultLogger is used by srarq for logging.
var DefaultLogger Logger

type defaultLogger struct {
	prefix string

	logLevel   LogLevel
	timeFormat string
}

var _ Logger = &defaultLogger{}

// SetLogLevel sets the log level
func (l *defaultLogger) SetLogLevel(level LogLevel) {
	l.logLevel = level
}

// SetLogTimeFormat sets the format of the timestamp
// an empty string disables the logging of timestamps
func (l *defaultLogger) SetLogTimeFormat(format string) {
	log.SetFlags(0) // disable timestamp logging done by the log package
	l.timeFormat = format
}

// Debugf logs something
func (l *defaultLogger) Debugf(format string, args ...interface{}) {
	if l.logLevel == LogLevelDebug {
		l.logMessage(format, args...)
	}
}

// Infof logs something
func (l *defaultLogger) Infof(format string, args ...interface{}) {
	if l.logLevel >= LogLevelInfo {
		l.logMessage(format, args...)
	}
}

// Errorf logs something
func (l *defaultLogger) Errorf(format string, args ...interface{}) {
	if l.logLevel >= LogLevelError {
		l.logMessage(format, args...)
	}
}

func (l *defaultLogger) logMessage(format string, args ...interface{}) {
	var pre string

	if len(l.timeFormat) > 0 {
		pre = time.Now().Format(l.timeFormat) + " "
	}
	if len(l.prefix) > 0 {
		pre += l.prefix + " "
	}
	log.Printf(pre+format, args...)
}

func (l *defaultLogger) WithPrefix(prefix string) Logger {
	if len(l.prefix) > 0 {
		prefix = l.prefix + " " + prefix
	}
	return &defaultLogger{
		logLevel:   l.logLevel,
		timeFormat: l.timeFormat,
		prefix:     prefix,
	}
}

// Debug returns true if the log level is LogLevelDebug
func (l *defaultLogger) Debug() bool {
	return l.logLevel == LogLevelDebug
}

func init() {
	DefaultLogger = &defaultLogger{}
	DefaultLogger.SetLogLevel(readLoggingEnv())
}

func readLoggingEnv() LogLevel {
	level, err := ParseLogLevel(os.Getenv(logEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid %s value: %s\n", logEnv, err)
		return LogLevelNothing
	}
	return level
}

// ParseLogLevel parses DEBUG, INFO, ERROR or NOTHING, in any case.
// The empty string means LogLevelNothing.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "", "nothing":
		return LogLevelNothing, nil
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelNothing, fmt.Errorf("unknown log level %q, expected one of DEBUG, INFO, ERROR, NOTHING", s)
	}
}
