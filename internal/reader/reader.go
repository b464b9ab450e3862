// Package reader implements the prefetching result client: a pull sequence
// of decoded records over one partition's frame stream.
package reader

import (
	"github.com/asterix-contrib/asterix-go/config"
	"github.com/asterix-contrib/asterix-go/internal/frame"
	"github.com/asterix-contrib/asterix-go/internal/transport"
	"github.com/asterix-contrib/asterix-go/internal/xerrors"
	"github.com/asterix-contrib/asterix-go/result"
)

var _ result.Result = (*Reader)(nil)

// Reader keeps a buffer of decoded records topped up ahead of consumption.
// Prefetching is inline and threshold-gated: it runs on the calling
// goroutine before a record is handed out, never in the background, so
// memory stays bounded by framesPerPrefetch frames and no synchronization
// is needed around the frame buffer or the record queue.
type Reader struct {
	source            transport.FrameSource
	frame             *frame.Frame
	accessor          frame.Accessor
	records           []string
	framesPerPrefetch int
	prefetchThreshold int
}

// New builds a reader over source and runs one prefetch pass, so the first
// consumer call has data available whenever any exists.
func New(source transport.FrameSource, cfg *config.Config) (*Reader, error) {
	r := &Reader{
		source:            source,
		frame:             frame.New(cfg.FrameSize()),
		framesPerPrefetch: cfg.FramesPerPrefetch(),
		prefetchThreshold: cfg.PrefetchThreshold(),
	}
	if _, err := r.prefetch(); err != nil {
		return nil, err
	}

	return r, nil
}

// prefetch reads up to framesPerPrefetch frames, decoding each into the
// record queue, and stops early once the source reports no more data.
// It returns the last read's byte count so callers can detect exhaustion.
func (r *Reader) prefetch() (int, error) {
	readSize := 0
	for i := 0; i < r.framesPerPrefetch; i++ {
		n, err := r.source.Read(r.frame)
		if err != nil {
			return n, err
		}
		readSize = n
		if n <= 0 {
			break
		}
		if err = r.decode(); err != nil {
			return n, err
		}
	}

	return readSize, nil
}

// decode appends the current frame's tuples to the record queue in tuple
// index order, then clears the frame for the next read. The source must
// have marked the frame filled; stale buffer contents are never decoded.
func (r *Reader) decode() error {
	if !r.frame.Filled() {
		return xerrors.Decode("decode of unfilled frame")
	}
	if err := r.accessor.Reset(r.frame.Bytes()); err != nil {
		return err
	}
	for i := 0; i < r.accessor.TupleCount(); i++ {
		r.records = append(r.records, string(r.accessor.Tuple(i)))
	}
	r.frame.Clear()

	return nil
}

// HasNext reports whether more records may be produced: the queue holds
// records, or the source has not yet signaled partition completion.
func (r *Reader) HasNext() bool {
	return len(r.records) > 0 || !r.source.IsPartitionComplete()
}

// Next returns the next record. When the queue falls below the prefetch
// threshold it runs one synchronous prefetch pass before popping, keeping
// the buffer from running dry under steady consumption.
func (r *Reader) Next() (string, error) {
	if len(r.records) == 0 && r.source.IsPartitionComplete() {
		return "", xerrors.WithStackTrace(result.ErrExhausted)
	}
	if len(r.records) < r.prefetchThreshold {
		n, err := r.prefetch()
		if err != nil {
			return "", err
		}
		// a frame may decode to zero tuples; keep reading while the
		// source still delivers data so a record can be returned
		for len(r.records) == 0 && n > 0 {
			if n, err = r.prefetch(); err != nil {
				return "", err
			}
		}
	}
	if len(r.records) == 0 {
		return "", xerrors.WithStackTrace(result.ErrExhausted)
	}
	head := r.records[0]
	r.records = r.records[1:]

	return head, nil
}

// Buffered returns the number of decoded records waiting in the queue.
func (r *Reader) Buffered() int {
	return len(r.records)
}

func (r *Reader) Close() error {
	return r.source.Close()
}
