// Package log is a leveled logger writing diagnostics to stderr. Report
// output goes to stdout, so nothing logged here mixes with it.
package log

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Logger is the interface for logging.
type Logger interface {
	// Printf prints a formatted message to the log.
	Printf(format string, v ...interface{})

	// Print prints a message to the log.
	Print(v ...interface{})

	// Level returns the logging level.
	Level() Level
}

// Level represents the log level.
type Level int

const (
	// DebugLevel represents the debug-level.
	DebugLevel Level = iota
	// InfoLevel represents the info-level.
	InfoLevel
	// ErrorLevel represents the error-level.
	ErrorLevel
	// DisabledLevel represents that the logger is disabled.
	DisabledLevel
)

var levelNames = map[string]Level{
	"debug":    DebugLevel,
	"info":     InfoLevel,
	"error":    ErrorLevel,
	"disabled": DisabledLevel,
}

func (l Level) String() string {
	for name, lv := range levelNames {
		if lv == l {
			return name
		}
	}
	return "unknown"
}

var (
	// Debug is a debug-level logger.
	Debug = &logger{DebugLevel}
	// Info is an info-level logger.
	Info = &logger{InfoLevel}
	// Error is an error-level logger.
	Error = &logger{ErrorLevel}
)

var mu sync.RWMutex

var currentLogger = &defaultLogger{
	level:  ErrorLevel,
	Logger: log.New(os.Stderr, "[quadgen] ", log.Ldate|log.Ltime|log.LUTC),
}

type logger struct {
	level Level
}

func getCurrentLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return currentLogger
}

func (l logger) Printf(format string, v ...interface{}) {
	cLogger := getCurrentLogger()
	if l.level >= cLogger.Level() {
		cLogger.Printf(format, v...)
	}
}

func (l logger) Print(v ...interface{}) {
	cLogger := getCurrentLogger()
	if l.level >= cLogger.Level() {
		cLogger.Print(v...)
	}
}

func (l logger) Level() Level {
	return l.level
}

type defaultLogger struct {
	level Level
	*log.Logger
}

func (l *defaultLogger) Level() Level {
	mu.RLock()
	defer mu.RUnlock()
	return l.level
}

// SetLevel sets the current logging level.
func SetLevel(level Level) {
	mu.Lock()
	currentLogger.level = level
	mu.Unlock()
}

// SetLevelByName sets the current logging level with a name.
func SetLevelByName(name string) error {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return errors.Errorf("unknown log level %q", name)
	}
	SetLevel(level)
	return nil
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	mu.Lock()
	currentLogger.SetOutput(w)
	mu.Unlock()
}
