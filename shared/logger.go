package shared

import (
	"github.com/charmbracelet/log"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_logger.go -package mocks tweet_pilot/shared ILogger

// ILogger is the logging interface consumed throughout the service.
// The concrete implementation wraps a charmbracelet logger built in main.
type ILogger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Debugf(format string, args ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Infof(format string, args ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Warnf(format string, args ...interface{})
	Error(msg interface{}, keyvals ...interface{})
	Errorf(format string, args ...interface{})
	Printf(format string, args ...interface{})
}

type charmLogger struct {
	inner *log.Logger
}

func NewCharmLogger(inner *log.Logger) ILogger {
	return &charmLogger{inner}
}

func (cl *charmLogger) Debug(msg interface{}, keyvals ...interface{}) { cl.inner.Debug(msg, keyvals...) }
func (cl *charmLogger) Debugf(format string, args ...interface{})     { cl.inner.Debugf(format, args...) }
func (cl *charmLogger) Info(msg interface{}, keyvals ...interface{})  { cl.inner.Info(msg, keyvals...) }
func (cl *charmLogger) Infof(format string, args ...interface{})      { cl.inner.Infof(format, args...) }
func (cl *charmLogger) Warn(msg interface{}, keyvals ...interface{})  { cl.inner.Warn(msg, keyvals...) }
func (cl *charmLogger) Warnf(format string, args ...interface{})      { cl.inner.Warnf(format, args...) }
func (cl *charmLogger) Error(msg interface{}, keyvals ...interface{}) { cl.inner.Error(msg, keyvals...) }
func (cl *charmLogger) Errorf(format string, args ...interface{})     { cl.inner.Errorf(format, args...) }
func (cl *charmLogger) Printf(format string, args ...interface{})     { cl.inner.Printf(format, args...) }
