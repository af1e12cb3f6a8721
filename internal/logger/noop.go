package logger

import (
	lg "github.com/cschleiden/go-scopedstats/log"
)

type noopLogger struct {
}

var _ lg.Logger = (*noopLogger)(nil)

// NewNoopLogger returns a logger that discards everything. It is the default
// for recorders, a library should not write to stderr on its own.
func NewNoopLogger() lg.Logger {
	return &noopLogger{}
}

func (*noopLogger) Debug(msg string, fields ...interface{}) {
}

func (*noopLogger) Warn(msg string, fields ...interface{}) {
}

func (*noopLogger) Error(msg string, fields ...interface{}) {
}

func (nl *noopLogger) With(fields ...interface{}) lg.Logger {
	return nl
}
