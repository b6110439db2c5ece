package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	mu sync.Mutex
	w  io.Writer
}

// New returns a Logger that writes to stderr.
func New() Logger {
	return NewWriter(os.Stderr)
}

// NewWriter returns a Logger that writes level-prefixed
// lines to w.
func NewWriter(w io.Writer) Logger {
	return &logger{w: w}
}

func (l *logger) printf(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "["+level+"]\t"+format+"\n", args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.printf("INFO", format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.printf("ERROR", format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.printf("DEBUG", format, args...)
}
