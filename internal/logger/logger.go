// Package logger provides the leveled logging used by the huff command.
package logger

import (
	"io"
	"log"
)

type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger that writes to w with the standard log flags.
func New(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags)}
}

func (l *stdLogger) Infof(format string, v ...interface{})  { l.l.Printf("[INFO] "+format, v...) }
func (l *stdLogger) Errorf(format string, v ...interface{}) { l.l.Printf("[ERROR] "+format, v...) }
