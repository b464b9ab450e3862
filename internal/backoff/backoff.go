// Package backoff contains the delay policy used by the completion poller.
package backoff

import (
	"math"
	"math/rand"
	"time"
)

// Backoff is the interface that contains logic of delaying the next attempt.
type Backoff interface {
	// Delay returns mapping of attempt i to delay.
	Delay(i int) time.Duration
}

var _ Backoff = logBackoff{}

// logBackoff contains logarithmic backoff policy.
type logBackoff struct {
	// slotDuration is a size of a single time slot used in delay
	// calculation. If slotDuration is less or equal to zero, then the
	// time.Second value is used.
	slotDuration time.Duration

	// ceiling is a maximum degree of delay growth. If ceiling is less or
	// equal to zero, then the default ceiling of 1 is used.
	ceiling uint

	// jitterLimit controls fixed and random portions of the delay. Its
	// value can be in range [0, 1]. The delay equals F + R, where F is the
	// fixed portion jitterLimit*D and R is random from [0, D-F].
	jitterLimit float64
}

type option func(b *logBackoff)

func WithSlotDuration(slotDuration time.Duration) option {
	return func(b *logBackoff) {
		b.slotDuration = slotDuration
	}
}

func WithCeiling(ceiling uint) option {
	return func(b *logBackoff) {
		b.ceiling = ceiling
	}
}

func WithJitterLimit(jitterLimit float64) option {
	return func(b *logBackoff) {
		b.jitterLimit = jitterLimit
	}
}

func New(opts ...option) logBackoff {
	b := logBackoff{}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}

	return b
}

// Delay returns mapping of i to delay.
func (b logBackoff) Delay(i int) time.Duration {
	s := b.slotDuration
	if s <= 0 {
		s = time.Second
	}
	n := 1 << min(uint(i), max(1, b.ceiling))
	d := s * time.Duration(n)
	f := time.Duration(math.Min(1, math.Abs(b.jitterLimit)) * float64(d))
	if f == d {
		return f
	}

	return f + time.Duration(rand.Int63n(int64(d-f)+1))
}
