package log

import "go.uber.org/zap"

var _ Logger = (*zapAdapter)(nil)

type zapAdapter struct {
	l *zap.SugaredLogger
}

// Zap adapts a zap logger to the connector's Logger interface. Zap has no
// trace level; Tracef lands on Debugf.
func Zap(l *zap.Logger) Logger {
	return &zapAdapter{
		l: l.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

func (a *zapAdapter) Tracef(format string, args ...interface{}) {
	a.l.Debugf(format, args...)
}

func (a *zapAdapter) Debugf(format string, args ...interface{}) {
	a.l.Debugf(format, args...)
}

func (a *zapAdapter) Infof(format string, args ...interface{}) {
	a.l.Infof(format, args...)
}

func (a *zapAdapter) Warnf(format string, args ...interface{}) {
	a.l.Warnf(format, args...)
}

func (a *zapAdapter) Errorf(format string, args ...interface{}) {
	a.l.Errorf(format, args...)
}
