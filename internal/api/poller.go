package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/asterix-contrib/asterix-go/internal/backoff"
	"github.com/asterix-contrib/asterix-go/internal/xerrors"
	"github.com/asterix-contrib/asterix-go/result"
)

var (
	// ErrJobFailed is returned by WaitCompletion when the engine reports
	// the job failed.
	ErrJobFailed = errors.New("asterix: query job failed")

	// ErrUnknownStatus is returned when the engine reports a status string
	// outside the documented set. It is kept distinct from ErrJobFailed so
	// protocol drift is never mistaken for a failed query.
	ErrUnknownStatus = errors.New("asterix: unrecognized job status")
)

// WaitCompletion polls the job's status with log-backoff delays until it
// succeeds, fails, or ctx is done.
func (c *Client) WaitCompletion(ctx context.Context, handle result.Handle) error {
	delays := backoff.New(
		backoff.WithSlotDuration(c.pollInterval),
		backoff.WithCeiling(4),
		backoff.WithJitterLimit(1),
	)
	for attempt := 0; ; attempt++ {
		status, err := c.Status(ctx, handle)
		if err != nil {
			return err
		}
		switch status {
		case result.StatusSuccess:
			c.logger.Debugf("job %s completed after %d polls", handle.JobID, attempt+1)

			return nil
		case result.StatusFailed:
			return xerrors.WithStackTrace(fmt.Errorf("%w: job %s", ErrJobFailed, handle.JobID))
		case result.StatusUnknown:
			return xerrors.WithStackTrace(fmt.Errorf("%w: job %s", ErrUnknownStatus, handle.JobID))
		case result.StatusRunning:
			// keep polling
		}
		select {
		case <-ctx.Done():
			return xerrors.WithStackTrace(ctx.Err())
		case <-c.clock.After(delays.Delay(attempt)):
		}
	}
}
