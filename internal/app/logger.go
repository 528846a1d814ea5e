package app

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger is the progress sink handed to the generator.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger prints one line per message as
// "15:04:05 [LEVEL] component: text".
type FileLogger struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

func NewFileLogger(w io.Writer) *FileLogger {
	return &FileLogger{w: w, now: time.Now}
}

func (l *FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}

func (l *FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

func (l *FileLogger) write(level, component, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(l.w, "%s [%s] %s: %s\n", l.now().Format(time.TimeOnly), level, component, msg)
}
