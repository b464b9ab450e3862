package xerrors

import (
	"bytes"
	"fmt"
	"strconv"
)

// transportError is a frame-source or control-plane I/O failure. It is
// never retried inside the connector; the host framework's task retry
// re-executes the whole partition from scratch.
type transportError struct {
	err       error
	address   string
	partition int
}

type teOpt func(te *transportError)

func WithAddress(address string) teOpt {
	return func(te *transportError) {
		te.address = address
	}
}

func WithPartition(partition int) teOpt {
	return func(te *transportError) {
		te.partition = partition
	}
}

// Transport returns a new transport error wrapping err with given options.
func Transport(err error, opts ...teOpt) error {
	if err == nil {
		return nil
	}
	te := &transportError{
		err:       err,
		partition: -1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(te)
		}
	}

	return WithStackTrace(fmt.Errorf("%w", te), WithSkipDepth(1))
}

func (e *transportError) Error() string {
	var b bytes.Buffer
	b.WriteString("transport error: ")
	b.WriteString(e.err.Error())
	if e.address != "" {
		b.WriteString(", address: ")
		b.WriteString(e.address)
	}
	if e.partition >= 0 {
		b.WriteString(", partition: ")
		b.WriteString(strconv.Itoa(e.partition))
	}

	return b.String()
}

func (e *transportError) Unwrap() error {
	return e.err
}

func IsTransportError(err error) bool {
	if err == nil {
		return false
	}
	var te *transportError

	return As(err, &te)
}
