package asterix

import (
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/asterix-contrib/asterix-go/config"
	"github.com/asterix-contrib/asterix-go/log"
)

// Option configures a Connector.
type Option = config.Option

// WithFrameSize sizes the reusable per-partition frame buffer in bytes.
// It must match the engine's result frame size.
func WithFrameSize(frameSize int) Option {
	return config.WithFrameSize(frameSize)
}

// WithFramesPerPrefetch bounds how many frames one prefetch pass reads.
func WithFramesPerPrefetch(framesPerPrefetch int) Option {
	return config.WithFramesPerPrefetch(framesPerPrefetch)
}

// WithPrefetchThreshold sets the record-buffer low-water mark below which
// a synchronous refill runs before the next record is returned.
func WithPrefetchThreshold(prefetchThreshold int) Option {
	return config.WithPrefetchThreshold(prefetchThreshold)
}

// WithReadersPerPartition sets the default reader-count hint sent to each
// partition's frame endpoint.
func WithReadersPerPartition(readers int) Option {
	return config.WithReadersPerPartition(readers)
}

// WithPollInterval sets the base delay between job status polls.
func WithPollInterval(pollInterval time.Duration) Option {
	return config.WithPollInterval(pollInterval)
}

// WithHTTPClient replaces the http.Client used for both the control plane
// and the partition frame streams.
func WithHTTPClient(httpClient *http.Client) Option {
	return config.WithHTTPClient(httpClient)
}

// WithLogger routes the connector's logging. The default discards it.
func WithLogger(logger log.Logger) Option {
	return config.WithLogger(logger)
}

// WithClock replaces the clock used for status-poll delays. Tests inject
// a fake clock here.
func WithClock(clock clockwork.Clock) Option {
	return config.WithClock(clock)
}
