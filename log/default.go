package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/jonboulle/clockwork"
)

const dateLayout = "2006-01-02 15:04:05.000"

var _ Logger = (*defaultLogger)(nil)

type defaultLogger struct {
	mu       sync.Mutex
	w        io.Writer
	minLevel Level
	clock    clockwork.Clock
}

type simpleOption func(l *defaultLogger)

func WithMinLevel(minLevel Level) simpleOption {
	return func(l *defaultLogger) {
		l.minLevel = minLevel
	}
}

func WithClock(clock clockwork.Clock) simpleOption {
	return func(l *defaultLogger) {
		l.clock = clock
	}
}

// Default returns a plain text logger writing to w.
func Default(w io.Writer, opts ...simpleOption) *defaultLogger {
	l := &defaultLogger{
		w:        w,
		minLevel: INFO,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	return l
}

func (l *defaultLogger) logf(lvl Level, format string, args ...interface{}) {
	if lvl < l.minLevel {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s asterix: %s\n",
		l.clock.Now().Format(dateLayout),
		lvl,
		fmt.Sprintf(format, args...),
	)
}

func (l *defaultLogger) Tracef(format string, args ...interface{}) {
	l.logf(TRACE, format, args...)
}

func (l *defaultLogger) Debugf(format string, args ...interface{}) {
	l.logf(DEBUG, format, args...)
}

func (l *defaultLogger) Infof(format string, args ...interface{}) {
	l.logf(INFO, format, args...)
}

func (l *defaultLogger) Warnf(format string, args ...interface{}) {
	l.logf(WARN, format, args...)
}

func (l *defaultLogger) Errorf(format string, args ...interface{}) {
	l.logf(ERROR, format, args...)
}
