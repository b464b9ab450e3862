package asterix

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/asterix-contrib/asterix-go/config"
	"github.com/asterix-contrib/asterix-go/internal/partition"
	"github.com/asterix-contrib/asterix-go/internal/reader"
	"github.com/asterix-contrib/asterix-go/internal/transport"
	"github.com/asterix-contrib/asterix-go/result"
)

// Dataset is a partitionable, lazily computed view over one completed
// result set: one partition per remote result location. The value itself
// is immutable and safe to share across tasks; all mutable state lives in
// the per-task readers Compute creates.
type Dataset struct {
	cfg       *config.Config
	locations result.Locations

	// readers is the reader-count hint sent to each partition endpoint.
	readers int
}

// Partitions enumerates the dataset's work units, index-aligned with the
// result locations.
func (d *Dataset) Partitions() []result.Partition {
	return partition.Map(d.locations)
}

// PreferredLocations is the scheduling hint for placing p's task near its
// endpoint. Locality is an optimization, not a correctness requirement.
func (d *Dataset) PreferredLocations(p result.Partition) []string {
	return partition.PreferredLocations(p)
}

// Repartition returns a dataset whose frame sources carry the reader-count
// hint for targetCount downstream consumers. It only adjusts the hint;
// records are not moved between partitions.
func (d *Dataset) Repartition(targetCount int) *Dataset {
	return &Dataset{
		cfg:       d.cfg,
		locations: d.locations,
		readers:   partition.ReaderCount(targetCount, len(d.locations.Parts)),
	}
}

// Compute opens p's frame source and returns the partition's records as a
// pull sequence. Every call builds a fresh source and reader scoped to one
// task attempt, so a host framework may re-invoke it after a task failure.
func (d *Dataset) Compute(ctx context.Context, p result.Partition) (result.Result, error) {
	source, err := transport.Open(ctx,
		d.cfg.HTTPClient(),
		p.Handle,
		p.Index,
		p.Location,
		d.readers,
		d.cfg.FrameSize(),
	)
	if err != nil {
		return nil, err
	}
	r, err := reader.New(source, d.cfg)
	if err != nil {
		_ = source.Close()

		return nil, err
	}

	return r, nil
}

// ReadAll drains every partition concurrently and returns the records per
// partition, index-aligned with Partitions. Order is preserved within each
// partition only. The first failing partition cancels the rest.
func (d *Dataset) ReadAll(ctx context.Context) ([][]string, error) {
	var (
		partitions = d.Partitions()
		records    = make([][]string, len(partitions))
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, p := range partitions {
		p := p
		g.Go(func() error {
			r, err := d.Compute(ctx, p)
			if err != nil {
				return err
			}
			defer func() {
				_ = r.Close()
			}()
			var out []string
			for r.HasNext() {
				record, err := r.Next()
				if err != nil {
					return err
				}
				out = append(out, record)
			}
			records[p.Index] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}
