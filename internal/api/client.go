// Package api implements the engine's text/JSON control plane: asynchronous
// query submission, job status, and result-location discovery.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/asterix-contrib/asterix-go/config"
	"github.com/asterix-contrib/asterix-go/internal/xerrors"
	"github.com/asterix-contrib/asterix-go/log"
	"github.com/asterix-contrib/asterix-go/result"
)

const (
	submitPath    = "/query"
	statusPath    = "/query/status"
	locationsPath = "/query/result/locations"

	requestIDHeader = "x-request-id"
)

type Client struct {
	base         *url.URL
	httpClient   *http.Client
	logger       log.Logger
	clock        clockwork.Clock
	pollInterval time.Duration
}

// New builds a control-plane client for the engine at endpoint, given as
// "host:port" or a full http URL.
func New(endpoint string, cfg *config.Config) (*Client, error) {
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, xerrors.WithStackTrace(fmt.Errorf("bad endpoint %q: %w", endpoint, err))
	}

	return &Client{
		base:         base,
		httpClient:   cfg.HTTPClient(),
		logger:       cfg.Logger(),
		clock:        cfg.Clock(),
		pollInterval: cfg.PollInterval(),
	}, nil
}

// Submit sends statement for asynchronous execution and returns the handle
// naming its result set.
func (c *Client) Submit(ctx context.Context, statement string) (result.Handle, error) {
	body, err := json.Marshal(struct {
		Statement string `json:"statement"`
		Mode      string `json:"mode"`
	}{
		Statement: statement,
		Mode:      "async",
	})
	if err != nil {
		return result.Handle{}, xerrors.WithStackTrace(err)
	}
	var response struct {
		JobID       string `json:"jobId"`
		ResultSetID string `json:"resultSetId"`
	}
	if err = c.do(ctx, http.MethodPost, submitPath, nil, body, &response); err != nil {
		return result.Handle{}, err
	}
	handle := result.Handle{
		JobID:       response.JobID,
		ResultSetID: response.ResultSetID,
	}
	c.logger.Debugf("submitted query, handle %s", handle)

	return handle, nil
}

// Status fetches the engine-reported state of the job behind handle.
func (c *Client) Status(ctx context.Context, handle result.Handle) (result.Status, error) {
	var response struct {
		Status string `json:"status"`
	}
	query := url.Values{"jobId": []string{handle.JobID}}
	if err := c.do(ctx, http.MethodGet, statusPath, query, nil, &response); err != nil {
		return result.StatusUnknown, err
	}

	return result.ParseStatus(response.Status), nil
}

// ResolveLocations fetches the per-partition endpoints of a completed
// job's result set.
func (c *Client) ResolveLocations(ctx context.Context, handle result.Handle) (result.Locations, error) {
	var response struct {
		Locations []struct {
			Address string `json:"address"`
			Port    int    `json:"port"`
		} `json:"locations"`
	}
	query := url.Values{
		"jobId":       []string{handle.JobID},
		"resultSetId": []string{handle.ResultSetID},
	}
	if err := c.do(ctx, http.MethodGet, locationsPath, query, nil, &response); err != nil {
		return result.Locations{}, err
	}
	locations := result.Locations{
		Handle: handle,
		Parts:  make([]result.AddressPortPair, len(response.Locations)),
	}
	for i, l := range response.Locations {
		locations.Parts[i] = result.AddressPortPair{
			Address: l.Address,
			Port:    l.Port,
		}
	}
	c.logger.Debugf("resolved %d result locations for handle %s", len(locations.Parts), handle)

	return locations, nil
}

func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body []byte,
	response interface{},
) error {
	u := c.base.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	req.Header.Set(requestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return xerrors.Transport(err, xerrors.WithAddress(c.base.Host))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return xerrors.Transport(
			fmt.Errorf("%s %s: unexpected status %q", method, path, resp.Status),
			xerrors.WithAddress(c.base.Host),
		)
	}
	if err = json.NewDecoder(resp.Body).Decode(response); err != nil {
		return xerrors.Transport(
			fmt.Errorf("%s %s: parse response: %w", method, path, err),
			xerrors.WithAddress(c.base.Host),
		)
	}

	return nil
}
