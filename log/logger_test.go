package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerFormat(t *testing.T) {
	var (
		buf   bytes.Buffer
		clock = clockwork.NewFakeClockAt(
			time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC),
		)
	)
	l := Default(&buf, WithMinLevel(DEBUG), WithClock(clock))
	l.Debugf("resolved %d locations", 4)
	require.Equal(t, "2024-03-01 12:30:45.000 DEBUG asterix: resolved 4 locations\n", buf.String())
}

func TestDefaultLoggerMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := Default(&buf, WithMinLevel(WARN))
	l.Tracef("dropped")
	l.Debugf("dropped")
	l.Infof("dropped")
	l.Warnf("kept")
	require.Contains(t, buf.String(), "WARN asterix: kept")
	require.NotContains(t, buf.String(), "dropped")
}

func TestZapAdapter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := Zap(zap.New(core))
	l.Infof("job %s finished", "j-1")
	l.Tracef("trace goes to debug")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "job j-1 finished", entries[0].Message)
	require.Equal(t, zap.InfoLevel, entries[0].Level)
	require.Equal(t, zap.DebugLevel, entries[1].Level)
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() {
		Nop().Errorf("ignored %v", nil)
	})
}
