package backoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLogBackoffNoJitter(t *testing.T) {
	b := New(
		WithSlotDuration(time.Second),
		WithCeiling(3),
		WithJitterLimit(1),
	)
	for _, tt := range []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 0, want: time.Second},
		{attempt: 1, want: 2 * time.Second},
		{attempt: 2, want: 4 * time.Second},
		{attempt: 3, want: 8 * time.Second},
		{attempt: 4, want: 8 * time.Second},
		{attempt: 100, want: 8 * time.Second},
	} {
		require.Equal(t, tt.want, b.Delay(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestLogBackoffJitterBounds(t *testing.T) {
	b := New(
		WithSlotDuration(time.Millisecond),
		WithCeiling(6),
		WithJitterLimit(0.5),
	)
	for i := 0; i < 10; i++ {
		d := b.Delay(i)
		n := 1 << min(uint(i), 6)
		full := time.Millisecond * time.Duration(n)
		require.GreaterOrEqual(t, d, full/2)
		require.LessOrEqual(t, d, full)
	}
}

func TestLogBackoffDefaults(t *testing.T) {
	b := New()
	d := b.Delay(0)
	require.GreaterOrEqual(t, d, time.Duration(0))
	require.LessOrEqual(t, d, 2*time.Second)
}
