package asterix

import (
	"context"

	"github.com/asterix-contrib/asterix-go/config"
	"github.com/asterix-contrib/asterix-go/internal/api"
	"github.com/asterix-contrib/asterix-go/result"
)

// Connector talks to one engine cluster's control plane and hands out
// datasets over completed result sets. It is safe for concurrent use.
type Connector struct {
	cfg    *config.Config
	client *api.Client
}

// Open returns a connector for the engine whose query service listens at
// endpoint ("host:port" or a full http URL).
func Open(endpoint string, opts ...Option) (*Connector, error) {
	cfg := config.New(opts...)
	client, err := api.New(endpoint, cfg)
	if err != nil {
		return nil, err
	}

	return &Connector{
		cfg:    cfg,
		client: client,
	}, nil
}

// Submit sends statement for asynchronous execution and returns the handle
// naming its future result set.
func (c *Connector) Submit(ctx context.Context, statement string) (result.Handle, error) {
	return c.client.Submit(ctx, statement)
}

// WaitCompletion polls the job's status until the engine reports a
// terminal state or ctx is done.
func (c *Connector) WaitCompletion(ctx context.Context, handle result.Handle) error {
	return c.client.WaitCompletion(ctx, handle)
}

// ResolveLocations fetches the completed result set's per-partition
// endpoints.
func (c *Connector) ResolveLocations(ctx context.Context, handle result.Handle) (result.Locations, error) {
	return c.client.ResolveLocations(ctx, handle)
}

// Execute runs statement end to end: submit, wait for completion, resolve
// locations, and returns the dataset over them.
func (c *Connector) Execute(ctx context.Context, statement string) (*Dataset, error) {
	handle, err := c.Submit(ctx, statement)
	if err != nil {
		return nil, err
	}
	if err = c.WaitCompletion(ctx, handle); err != nil {
		return nil, err
	}
	locations, err := c.ResolveLocations(ctx, handle)
	if err != nil {
		return nil, err
	}

	return c.Dataset(locations), nil
}

// Dataset wraps already-resolved result locations, for callers that drove
// Submit/WaitCompletion/ResolveLocations themselves.
func (c *Connector) Dataset(locations result.Locations) *Dataset {
	return &Dataset{
		cfg:       c.cfg,
		locations: locations,
		readers:   c.cfg.ReadersPerPartition(),
	}
}

// Close releases idle control-plane connections. Open datasets and
// results remain usable; they own their own connections.
func (c *Connector) Close() error {
	c.cfg.HTTPClient().CloseIdleConnections()

	return nil
}
