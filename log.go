package numerals

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Logger receives diagnostics that do not interrupt a conversion.
type Logger interface {
	Warn(msg string, fields ...Field)
}

// Field is a structured logging key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

type stdLogger struct {
	l *log.Logger
}

func (s stdLogger) Warn(msg string, fields ...Field) {
	sb := &strings.Builder{}

	sb.WriteString("WARN ")
	sb.WriteString(msg)

	for _, f := range fields {
		sb.WriteString(fmt.Sprintf(" %s=%v", f.Key, f.Value))
	}

	s.l.Println(sb.String())
}

var defaultLogger Logger = stdLogger{
	l: log.New(os.Stderr, "numerals: ", log.LstdFlags),
}

type loggerBox struct {
	Logger
}

var logger atomic.Value

func init() {
	logger.Store(loggerBox{defaultLogger})
}

// SetLogger replaces the package logger. A nil logger restores the default,
// which writes to stderr.
func SetLogger(l Logger) {
	if l == nil {
		l = defaultLogger
	}

	logger.Store(loggerBox{l})
}

func currentLogger() Logger {
	return logger.Load().(loggerBox).Logger
}
