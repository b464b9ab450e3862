// Package transport pulls binary result frames from a partition's network
// endpoint.
package transport

import (
	"github.com/asterix-contrib/asterix-go/internal/frame"
)

// FrameSource delivers one partition's result frames in arrival order.
// Implementations are owned by a single reader and are not safe for
// concurrent use.
type FrameSource interface {
	// Read fills f with the next frame and returns the number of bytes
	// read. A zero count means no more data: the partition is complete.
	Read(f *frame.Frame) (int, error)

	// IsPartitionComplete reports whether the partition's entire result
	// has been delivered.
	IsPartitionComplete() bool

	Close() error
}
