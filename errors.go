package asterix

import (
	"github.com/asterix-contrib/asterix-go/internal/api"
	"github.com/asterix-contrib/asterix-go/internal/xerrors"
	"github.com/asterix-contrib/asterix-go/result"
)

// ErrExhausted is returned by Result.Next after the last record.
var ErrExhausted = result.ErrExhausted

// ErrJobFailed is returned by WaitCompletion when the engine reports the
// job failed.
var ErrJobFailed = api.ErrJobFailed

// ErrUnknownStatus is returned by WaitCompletion when the engine reports
// a status string outside the documented set.
var ErrUnknownStatus = api.ErrUnknownStatus

// IsTransportError reports whether err is a frame-source or control-plane
// I/O failure. Such failures are never retried inside the connector; the
// host framework's task retry re-invokes Compute from scratch.
func IsTransportError(err error) bool {
	return xerrors.IsTransportError(err)
}

// IsDecodeError reports whether err is a malformed result frame. Decode
// failures are fatal to the partition: they indicate an upstream contract
// violation, not a transient condition.
func IsDecodeError(err error) bool {
	return xerrors.IsDecodeError(err)
}
