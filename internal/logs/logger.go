package logs

import (
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Level string

const (
	INFO  Level = "INFO"
	WARN  Level = "WARN"
	ERROR Level = "ERROR"
	DEBUG Level = "DEBUG"
)

// higher value = more severe
var levelPriority = map[Level]int{
	DEBUG: 1,
	INFO:  2,
	WARN:  3,
	ERROR: 4,
}

type Entry struct {
	TimeStamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Logger keeps the most recent entries in memory for the health report and
// forwards every recorded entry to an optional logrus sink.
type Logger struct {
	mu      sync.Mutex
	entries []Entry
	maxSize int
	level   Level
	sink    *logrus.Logger
}

// level: minimum level to record.
// maxSize: number of entries kept in memory, at least 1.
// sink may be nil.
func NewLogger(maxSize int, level Level, sink *logrus.Logger) *Logger {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Logger{
		entries: make([]Entry, 0, maxSize),
		maxSize: maxSize,
		level:   level,
		sink:    sink,
	}
}

// NewSink builds the process logger. Unknown levels fall back to info.
func NewSink(level string) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	l.SetOutput(os.Stdout)

	return l
}

// ParseLevel maps a config string such as "info" to a Level.
func ParseLevel(s string) Level {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return INFO
	}
	switch lvl {
	case logrus.DebugLevel, logrus.TraceLevel:
		return DEBUG
	case logrus.WarnLevel:
		return WARN
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return ERROR
	default:
		return INFO
	}
}

func (l *Logger) log(level Level, msg string, fields map[string]any) {
	if levelPriority[level] < levelPriority[l.level] {
		return
	}

	l.mu.Lock()
	if len(l.entries) > 0 && len(l.entries) >= l.maxSize {
		// drop oldest
		l.entries = l.entries[1:]
	}
	l.entries = append(l.entries, Entry{
		TimeStamp: time.Now(),
		Level:     level,
		Message:   msg,
		Fields:    fields,
	})
	l.mu.Unlock()

	if l.sink != nil {
		l.forward(level, msg, fields)
	}
}

func (l *Logger) forward(level Level, msg string, fields map[string]any) {
	e := l.sink.WithFields(logrus.Fields(fields))
	switch level {
	case DEBUG:
		e.Debug(msg)
	case WARN:
		e.Warn(msg)
	case ERROR:
		e.Error(msg)
	default:
		e.Info(msg)
	}
}

func (l *Logger) Debug(msg string) { l.log(DEBUG, msg, nil) }
func (l *Logger) Info(msg string)  { l.log(INFO, msg, nil) }
func (l *Logger) Warn(msg string)  { l.log(WARN, msg, nil) }
func (l *Logger) Error(msg string) { l.log(ERROR, msg, nil) }

// InfoFields records msg with structured fields.
func (l *Logger) InfoFields(msg string, fields map[string]any) {
	l.log(INFO, msg, fields)
}

// WarnFields records msg with structured fields.
func (l *Logger) WarnFields(msg string, fields map[string]any) {
	l.log(WARN, msg, fields)
}

// GetLast returns up to n of the newest entries, oldest first.
func (l *Logger) GetLast(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}

	start := len(l.entries) - n
	out := make([]Entry, n)
	copy(out, l.entries[start:])
	return out
}
