package location

import (
	"fmt"

	"go.uber.org/zap"
)

var LoggerEnabled = false

// Logger is the logging surface used by routers, hooks and windows.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type defaultLogger struct {
}

func (d *defaultLogger) Debug(format string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

func (d *defaultLogger) Info(format string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[INFO] "+format+"\n", args...)
	}
}

func (d *defaultLogger) Warn(format string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[WARN] "+format+"\n", args...)
	}
}

func (d *defaultLogger) Error(format string, args ...any) {
	if LoggerEnabled {
		fmt.Printf("[ERROR] "+format+"\n", args...)
	}
}

type zapLogger struct {
	l *zap.SugaredLogger
}

// NewZapLogger adapts a zap logger to Logger.
func NewZapLogger(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &zapLogger{l: l.Sugar()}
}

func (z *zapLogger) Debug(format string, args ...any) { z.l.Debugf(format, args...) }
func (z *zapLogger) Info(format string, args ...any)  { z.l.Infof(format, args...) }
func (z *zapLogger) Warn(format string, args ...any)  { z.l.Warnf(format, args...) }
func (z *zapLogger) Error(format string, args ...any) { z.l.Errorf(format, args...) }
