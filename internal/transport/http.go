package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/asterix-contrib/asterix-go/internal/frame"
	"github.com/asterix-contrib/asterix-go/internal/xerrors"
	"github.com/asterix-contrib/asterix-go/result"
)

var _ FrameSource = (*httpFrameSource)(nil)

// httpFrameSource streams whole frames from the partition endpoint's
// result service. The response body is a concatenation of frames of
// exactly the negotiated frame size; a clean EOF on a frame boundary
// marks the partition complete.
type httpFrameSource struct {
	body      io.ReadCloser
	address   string
	partition int
	complete  bool
}

// Open issues the partition read request and returns a source over its
// frame stream.
func Open(
	ctx context.Context,
	client *http.Client,
	handle result.Handle,
	partition int,
	location result.AddressPortPair,
	readers int,
	frameSize int,
) (FrameSource, error) {
	u := url.URL{
		Scheme: "http",
		Host:   location.String(),
		Path:   "/partitions/" + strconv.Itoa(partition),
		RawQuery: url.Values{
			"jobId":       []string{handle.JobID},
			"resultSetId": []string{handle.ResultSetID},
			"readers":     []string{strconv.Itoa(readers)},
			"frameSize":   []string{strconv.Itoa(frameSize)},
		}.Encode(),
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, xerrors.Transport(err,
			xerrors.WithAddress(location.String()),
			xerrors.WithPartition(partition),
		)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()

		return nil, xerrors.Transport(
			fmt.Errorf("unexpected status %q", resp.Status),
			xerrors.WithAddress(location.String()),
			xerrors.WithPartition(partition),
		)
	}

	return &httpFrameSource{
		body:      resp.Body,
		address:   location.String(),
		partition: partition,
	}, nil
}

func (s *httpFrameSource) Read(f *frame.Frame) (int, error) {
	if s.complete {
		return 0, nil
	}
	n, err := io.ReadFull(s.body, f.Bytes())
	switch {
	case err == nil:
		f.MarkFilled()

		return n, nil
	case errors.Is(err, io.EOF):
		s.complete = true

		return 0, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		return 0, xerrors.Transport(
			fmt.Errorf("truncated frame: %d of %d bytes", n, f.Size()),
			xerrors.WithAddress(s.address),
			xerrors.WithPartition(s.partition),
		)
	default:
		return 0, xerrors.Transport(err,
			xerrors.WithAddress(s.address),
			xerrors.WithPartition(s.partition),
		)
	}
}

func (s *httpFrameSource) IsPartitionComplete() bool {
	return s.complete
}

func (s *httpFrameSource) Close() error {
	return s.body.Close()
}
