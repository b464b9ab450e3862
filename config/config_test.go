package config

import (
	"net/http"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	require.Equal(t, DefaultFrameSize, c.FrameSize())
	require.Equal(t, DefaultFramesPerPrefetch, c.FramesPerPrefetch())
	require.Equal(t, DefaultPrefetchThreshold, c.PrefetchThreshold())
	require.Equal(t, DefaultReadersPerPartition, c.ReadersPerPartition())
	require.Equal(t, DefaultPollInterval, c.PollInterval())
	require.NotNil(t, c.HTTPClient())
	require.NotNil(t, c.Logger())
	require.NotNil(t, c.Clock())
}

func TestOptions(t *testing.T) {
	var (
		httpClient = &http.Client{}
		clock      = clockwork.NewFakeClock()
	)
	c := New(
		WithFrameSize(1024),
		WithFramesPerPrefetch(4),
		WithPrefetchThreshold(10),
		WithReadersPerPartition(1),
		WithPollInterval(time.Second),
		WithHTTPClient(httpClient),
		WithClock(clock),
		nil,
	)
	require.Equal(t, 1024, c.FrameSize())
	require.Equal(t, 4, c.FramesPerPrefetch())
	require.Equal(t, 10, c.PrefetchThreshold())
	require.Equal(t, 1, c.ReadersPerPartition())
	require.Equal(t, time.Second, c.PollInterval())
	require.Same(t, httpClient, c.HTTPClient())
	require.Same(t, clock, c.Clock())
}
