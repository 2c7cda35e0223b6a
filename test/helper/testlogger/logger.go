// Package testlogger provides a recording log.Logger for assertions on log output
package testlogger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
)

// Log levels recorded by TestLogger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
	LevelFatal = "FATAL"
)

// LogEntry represents a single log entry
type LogEntry struct {
	Level   string
	Message string
}

// TestLogger implements log.Logger and keeps every entry in memory
type TestLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

var _ log.Logger = (*TestLogger)(nil)

// New creates a new TestLogger
func New() *TestLogger {
	return &TestLogger{}
}

func (l *TestLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, LogEntry{Level: level, Message: strings.TrimSuffix(msg, "\n")})
}

func (l *TestLogger) Debug(args ...any)                 { l.record(LevelDebug, fmt.Sprint(args...)) }
func (l *TestLogger) Debugf(format string, args ...any) { l.record(LevelDebug, fmt.Sprintf(format, args...)) }
func (l *TestLogger) Debugln(args ...any)               { l.record(LevelDebug, fmt.Sprintln(args...)) }
func (l *TestLogger) Info(args ...any)                  { l.record(LevelInfo, fmt.Sprint(args...)) }
func (l *TestLogger) Infof(format string, args ...any)  { l.record(LevelInfo, fmt.Sprintf(format, args...)) }
func (l *TestLogger) Infoln(args ...any)                { l.record(LevelInfo, fmt.Sprintln(args...)) }
func (l *TestLogger) Warn(args ...any)                  { l.record(LevelWarn, fmt.Sprint(args...)) }
func (l *TestLogger) Warnf(format string, args ...any)  { l.record(LevelWarn, fmt.Sprintf(format, args...)) }
func (l *TestLogger) Warnln(args ...any)                { l.record(LevelWarn, fmt.Sprintln(args...)) }
func (l *TestLogger) Error(args ...any)                 { l.record(LevelError, fmt.Sprint(args...)) }
func (l *TestLogger) Errorf(format string, args ...any) { l.record(LevelError, fmt.Sprintf(format, args...)) }
func (l *TestLogger) Errorln(args ...any)               { l.record(LevelError, fmt.Sprintln(args...)) }
func (l *TestLogger) Fatal(args ...any)                 { l.record(LevelFatal, fmt.Sprint(args...)) }
func (l *TestLogger) Fatalf(format string, args ...any) { l.record(LevelFatal, fmt.Sprintf(format, args...)) }
func (l *TestLogger) Fatalln(args ...any)               { l.record(LevelFatal, fmt.Sprintln(args...)) }

// WithFields implements log.Logger; fields are not tracked
func (l *TestLogger) WithFields(fields ...any) log.Logger {
	return l
}

// WithDefaultMessageTemplate implements log.Logger; the template is ignored
func (l *TestLogger) WithDefaultMessageTemplate(template string) log.Logger {
	return l
}

// Sync implements log.Logger
func (l *TestLogger) Sync() error {
	return nil
}

// Entries returns all log entries
func (l *TestLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]LogEntry, len(l.entries))
	copy(entries, l.entries)

	return entries
}

// Count returns the number of log entries for the given level
func (l *TestLogger) Count(level string) int {
	count := 0

	for _, entry := range l.Entries() {
		if entry.Level == level {
			count++
		}
	}

	return count
}

// Contains reports whether some entry at level contains every substring
func (l *TestLogger) Contains(level string, substrings ...string) bool {
	for _, entry := range l.Entries() {
		if entry.Level != level {
			continue
		}

		allFound := true

		for _, s := range substrings {
			if !strings.Contains(entry.Message, s) {
				allFound = false
				break
			}
		}

		if allFound {
			return true
		}
	}

	return false
}
