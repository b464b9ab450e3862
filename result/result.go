package result

import (
	"errors"
	"net"
	"strconv"
)

// ErrExhausted is returned by Result.Next after the partition's last record
// has been handed out. Callers that check HasNext first never see it.
var ErrExhausted = errors.New("asterix: result exhausted")

// Handle names one query execution's result set on the engine.
// Values are immutable and safe to copy and share.
type Handle struct {
	JobID       string
	ResultSetID string
}

func (h Handle) String() string {
	return h.JobID + "/" + h.ResultSetID
}

// AddressPortPair is the network endpoint serving one result partition.
type AddressPortPair struct {
	Address string
	Port    int
}

func (p AddressPortPair) String() string {
	return net.JoinHostPort(p.Address, strconv.Itoa(p.Port))
}

// Locations is a completed query's result locations: the handle plus one
// endpoint per server-side partition, in partition order. The slice is
// fixed once produced; its length is the downstream partition count.
type Locations struct {
	Handle Handle
	Parts  []AddressPortPair
}

// Partition is one partition's unit of work: its ordinal, the result-set
// handle, and the endpoint serving it. The task that executes it owns it
// exclusively.
type Partition struct {
	Index    int
	Handle   Handle
	Location AddressPortPair
}

// Result is a pull sequence of decoded records from one partition.
type Result interface {
	// HasNext reports whether more records may be produced. It is false
	// only when the local buffer is drained and the partition is complete.
	HasNext() bool

	// Next returns the next record or ErrExhausted after the last one.
	Next() (string, error)

	// Close releases the underlying frame source.
	Close() error
}
