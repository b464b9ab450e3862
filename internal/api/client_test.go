package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asterix-contrib/asterix-go/config"
	"github.com/asterix-contrib/asterix-go/internal/xerrors"
	"github.com/asterix-contrib/asterix-go/result"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := New(srv.URL, config.New(
		config.WithHTTPClient(srv.Client()),
	))
	require.NoError(t, err)

	return client, srv
}

func TestSubmit(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, submitPath, r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get(requestIDHeader))

		var request struct {
			Statement string `json:"statement"`
			Mode      string `json:"mode"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.Equal(t, "select * from ds", request.Statement)
		require.Equal(t, "async", request.Mode)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"jobId":       "JID:0.1",
			"resultSetId": "RSID:0",
		})
	}))

	handle, err := client.Submit(context.Background(), "select * from ds")
	require.NoError(t, err)
	require.Equal(t, result.Handle{JobID: "JID:0.1", ResultSetID: "RSID:0"}, handle)
}

func TestSubmitServerError(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.Submit(context.Background(), "select 1")
	require.True(t, xerrors.IsTransportError(err))
}

func TestSubmitMalformedResponse(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))

	_, err := client.Submit(context.Background(), "select 1")
	require.True(t, xerrors.IsTransportError(err))
	require.Contains(t, err.Error(), "parse response")
}

func TestStatus(t *testing.T) {
	for _, tt := range []struct {
		body string
		want result.Status
	}{
		{body: `{"status":"RUNNING"}`, want: result.StatusRunning},
		{body: `{"status":"success"}`, want: result.StatusSuccess},
		{body: `{"status":"FAILED"}`, want: result.StatusFailed},
		{body: `{"status":"OPTIMIZING"}`, want: result.StatusUnknown},
		{body: `{}`, want: result.StatusUnknown},
	} {
		t.Run(tt.body, func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, statusPath, r.URL.Path)
				require.Equal(t, "JID:1", r.URL.Query().Get("jobId"))
				_, _ = w.Write([]byte(tt.body))
			}))

			status, err := client.Status(context.Background(), result.Handle{JobID: "JID:1"})
			require.NoError(t, err)
			require.Equal(t, tt.want, status)
		})
	}
}

func TestResolveLocations(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, locationsPath, r.URL.Path)
		require.Equal(t, "JID:2", r.URL.Query().Get("jobId"))
		require.Equal(t, "RSID:2", r.URL.Query().Get("resultSetId"))
		_, _ = w.Write([]byte(`{"locations":[
			{"address":"nc-1","port":19002},
			{"address":"nc-2","port":19002}
		]}`))
	}))

	handle := result.Handle{JobID: "JID:2", ResultSetID: "RSID:2"}
	locations, err := client.ResolveLocations(context.Background(), handle)
	require.NoError(t, err)
	require.Equal(t, handle, locations.Handle)
	require.Equal(t, []result.AddressPortPair{
		{Address: "nc-1", Port: 19002},
		{Address: "nc-2", Port: 19002},
	}, locations.Parts)
}

func TestNewEndpointWithoutScheme(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"RUNNING"}`))
	}))
	defer srv.Close()

	client, err := New(strings.TrimPrefix(srv.URL, "http://"), config.New())
	require.NoError(t, err)
	status, err := client.Status(context.Background(), result.Handle{JobID: "j"})
	require.NoError(t, err)
	require.Equal(t, result.StatusRunning, status)
}
