// Package config holds the connector configuration shared by the
// control-plane client and the per-partition result readers.
package config

import (
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/asterix-contrib/asterix-go/log"
)

const (
	// DefaultFrameSize is the engine's default result frame size in bytes.
	DefaultFrameSize = 32768

	// DefaultFramesPerPrefetch bounds one prefetch pass.
	DefaultFramesPerPrefetch = 1

	// DefaultPrefetchThreshold is the record-buffer low-water mark below
	// which a refill runs before the next record is handed out.
	DefaultPrefetchThreshold = 2

	// DefaultReadersPerPartition is the reader-count hint sent to each
	// partition's frame endpoint.
	DefaultReadersPerPartition = 2

	// DefaultPollInterval is the base slot for status-poll backoff.
	DefaultPollInterval = 250 * time.Millisecond
)

type Config struct {
	frameSize         int
	framesPerPrefetch int
	prefetchThreshold int
	readers           int
	pollInterval      time.Duration
	httpClient        *http.Client
	logger            log.Logger
	clock             clockwork.Clock
}

type Option func(c *Config)

func WithFrameSize(frameSize int) Option {
	return func(c *Config) {
		c.frameSize = frameSize
	}
}

func WithFramesPerPrefetch(framesPerPrefetch int) Option {
	return func(c *Config) {
		c.framesPerPrefetch = framesPerPrefetch
	}
}

func WithPrefetchThreshold(prefetchThreshold int) Option {
	return func(c *Config) {
		c.prefetchThreshold = prefetchThreshold
	}
}

func WithReadersPerPartition(readers int) Option {
	return func(c *Config) {
		c.readers = readers
	}
}

func WithPollInterval(pollInterval time.Duration) Option {
	return func(c *Config) {
		c.pollInterval = pollInterval
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Config) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger log.Logger) Option {
	return func(c *Config) {
		c.logger = logger
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(c *Config) {
		c.clock = clock
	}
}

func New(opts ...Option) *Config {
	c := &Config{
		frameSize:         DefaultFrameSize,
		framesPerPrefetch: DefaultFramesPerPrefetch,
		prefetchThreshold: DefaultPrefetchThreshold,
		readers:           DefaultReadersPerPartition,
		pollInterval:      DefaultPollInterval,
		httpClient:        http.DefaultClient,
		logger:            log.Nop(),
		clock:             clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

func (c *Config) FrameSize() int {
	return c.frameSize
}

func (c *Config) FramesPerPrefetch() int {
	return c.framesPerPrefetch
}

func (c *Config) PrefetchThreshold() int {
	return c.prefetchThreshold
}

func (c *Config) ReadersPerPartition() int {
	return c.readers
}

func (c *Config) PollInterval() time.Duration {
	return c.pollInterval
}

func (c *Config) HTTPClient() *http.Client {
	return c.httpClient
}

func (c *Config) Logger() log.Logger {
	return c.logger
}

func (c *Config) Clock() clockwork.Clock {
	return c.clock
}
