package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

var levelColors = map[Level]*color.Color{
	LevelDebug: color.New(color.FgCyan),
	LevelInfo:  color.New(color.FgGreen),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
	LevelFatal: color.New(color.FgHiRed, color.Bold),
}

// ParseLevel converts a config value into a Level. Unknown values fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Logger printf-style logger writing colored lines to stdout and plain lines to an optional file.
type Logger struct {
	mu      sync.Mutex
	level   Level
	console *log.Logger
	file    *log.Logger
	closer  io.Closer
	exit    func(int)
}

// New creates a logger. An empty filePath disables file output.
func New(filePath, level string) (*Logger, error) {
	l := &Logger{
		level:   ParseLevel(level),
		console: log.New(color.Output, "", log.LstdFlags|log.Lmicroseconds),
		exit:    os.Exit,
	}

	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", filePath, err)
		}
		l.file = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
		l.closer = f
	}

	return l, nil
}

// NewDiscard returns a logger that drops everything. Used in tests.
func NewDiscard() *Logger {
	return &Logger{
		level:   LevelFatal + 1,
		console: log.New(io.Discard, "", 0),
		exit:    func(int) {},
	}
}

func (l *Logger) Debug(format string, v ...interface{}) { l.write(LevelDebug, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.write(LevelInfo, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.write(LevelWarn, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.write(LevelError, format, v...) }

// Fatal logs the message and terminates the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelFatal, format, v...)
	l.Close()
	l.exit(1)
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	l.file = nil
	return err
}

func (l *Logger) write(level Level, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	msg := fmt.Sprintf(format, v...)
	name := levelNames[level]

	l.mu.Lock()
	defer l.mu.Unlock()

	l.console.Printf("%s %s", levelColors[level].Sprintf("[%s]", name), msg)
	if l.file != nil {
		l.file.Printf("[%s] %s", name, msg)
	}
}
