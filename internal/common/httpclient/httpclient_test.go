package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	server      string
	auth        string
	contentType string
}

func (c testConfig) GetServerURL() string   { return c.server }
func (c testConfig) GetAuthString() string  { return c.auth }
func (c testConfig) GetContentType() string { return c.contentType }

var cfg = testConfig{server: "https://api.example.com", auth: "dTprCg=="}

func TestDoDecodesSuccess(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected any
	}{
		{name: "ok object", status: 200, body: `{}`, expected: map[string]any{}},
		{name: "created object", status: 201, body: `{}`, expected: map[string]any{}},
		{name: "array", status: 200, body: `[]`, expected: []any{}},
		{name: "string", status: 200, body: `"token"`, expected: "token"},
		{name: "number", status: 200, body: `42`, expected: float64(42)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(cfg, ClientOptions{Transport: StaticResponse(tt.status, "OK", []byte(tt.body))})
			got, err := c.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/rest/v1/info/status"})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDoClassifiesErrors(t *testing.T) {
	for _, status := range []int{202, 204, 301, 400, 401, 404, 500, 503} {
		c := NewClient(cfg, ClientOptions{Transport: StaticResponse(status, "BAD", []byte(`{"message":"nope"}`))})
		got, err := c.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/x"})
		assert.Nil(t, got)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr, "status %d", status)
		assert.Equal(t, status, apiErr.StatusCode)
		assert.Equal(t, "BAD", apiErr.Reason)
		require.NotNil(t, apiErr.Response)
		assert.Equal(t, "BAD", apiErr.Response.Reason)
		assert.Equal(t, status, apiErr.Response.StatusCode)
		assert.Equal(t, `{"message":"nope"}`, string(apiErr.Response.Body))
		assert.True(t, IsAPIError(err))
		assert.True(t, IsAPIError(err, status))
		assert.False(t, IsAPIError(err, 999))
	}
}

func TestDoStandardReason(t *testing.T) {
	c := NewClient(cfg, ClientOptions{Transport: StaticResponse(404, "", nil)})
	_, err := c.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/x"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Not Found", apiErr.Reason)
	assert.Equal(t, "404: Not Found. Sauce status not OK", apiErr.Error())
}

func TestDoEmptyBodyIsDecodeError(t *testing.T) {
	for _, body := range []string{``, "   \n"} {
		for _, status := range []int{200, 201} {
			c := NewClient(cfg, ClientOptions{Transport: StaticResponse(status, "OK", []byte(body))})
			got, err := c.Do(context.Background(), RequestOptions{Method: http.MethodDelete, Path: "/rest/v1/u/jobs/j"})
			assert.Nil(t, got)

			var decErr *DecodeError
			require.ErrorAs(t, err, &decErr, "status %d body %q", status, body)
			assert.Equal(t, status, decErr.Response.StatusCode)
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		}
	}
}

func TestStaticResponseConcurrent(t *testing.T) {
	transport := StaticResponse(http.StatusInternalServerError, "", nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, _ := http.NewRequest(http.MethodGet, "https://api.example.com/", nil)
			resp, err := transport.RoundTrip(req)
			if assert.NoError(t, err) {
				assert.Equal(t, "500 Internal Server Error", resp.Status)
			}
		}()
	}
	wg.Wait()
}

func TestDoDecodeError(t *testing.T) {
	c := NewClient(cfg, ClientOptions{Transport: StaticResponse(200, "OK", []byte(`{not json`))})
	_, err := c.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/x"})

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, 200, decErr.Response.StatusCode)
	assert.Equal(t, "{not json", string(decErr.Response.Body))
	assert.False(t, IsAPIError(err))
}

func TestDoTransportError(t *testing.T) {
	boom := errors.New("connection reset")
	c := NewClient(cfg, ClientOptions{Transport: RoundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	})})
	_, err := c.Do(context.Background(), RequestOptions{Method: http.MethodDelete, Path: "/x"})

	var tErr *TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, http.MethodDelete, tErr.Method)
	assert.ErrorIs(t, err, boom)
}

func TestHeaders(t *testing.T) {
	var mu sync.Mutex
	var seen []*http.Request
	var bodies []string
	transport := RoundTripFunc(func(req *http.Request) (*http.Response, error) {
		var body []byte
		if req.Body != nil {
			body, _ = io.ReadAll(req.Body)
		}
		mu.Lock()
		seen = append(seen, req)
		bodies = append(bodies, string(body))
		mu.Unlock()
		return StaticResponse(200, "OK", []byte(`{}`))(req)
	})
	c := NewClient(cfg, ClientOptions{Transport: transport, UserAgent: "sauceclient-go/test"})

	_, err := c.Do(context.Background(), RequestOptions{
		Method:      http.MethodPost,
		Path:        "rest/v1/storage/u/a.zip?overwrite=true",
		Body:        []byte("PK"),
		ContentType: "application/octet-stream",
	})
	require.NoError(t, err)
	_, err = c.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/rest/v1/u/jobs"})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "application/octet-stream", seen[0].Header.Get("Content-Type"))
	assert.Equal(t, "https://api.example.com/rest/v1/storage/u/a.zip?overwrite=true", seen[0].URL.String())
	assert.Equal(t, "PK", bodies[0])

	// the override must not leak into the next call
	assert.Equal(t, "application/json", seen[1].Header.Get("Content-Type"))
	assert.Equal(t, "Basic dTprCg==", seen[1].Header.Get("Authorization"))
	assert.Equal(t, "sauceclient-go/test", seen[1].Header.Get("User-Agent"))
	assert.Equal(t, "", bodies[1])
}

func TestConfiguredContentType(t *testing.T) {
	var got string
	transport := RoundTripFunc(func(req *http.Request) (*http.Response, error) {
		got = req.Header.Get("Content-Type")
		return StaticResponse(200, "OK", []byte(`{}`))(req)
	})
	c := NewClient(testConfig{server: "https://h", contentType: "text/plain"}, ClientOptions{Transport: transport})
	_, err := c.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/"})
	require.NoError(t, err)
	assert.Equal(t, "text/plain", got)
}

func TestHandlerTransport(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/info/status" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"service_operational":true}`))
	})
	c := NewTestClient(cfg, handler)

	got, err := c.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/rest/v1/info/status"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"service_operational": true}, got)

	_, err = c.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/missing"})
	assert.True(t, IsAPIError(err, http.StatusNotFound))
}

func TestRealServerClosesConnections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, r.Close, "client should ask for the connection to be closed")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(testConfig{server: srv.URL})
	got, err := c.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/rest/v1/u/tunnels"})
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(testConfig{server: srv.URL}, ClientOptions{Timeout: 50 * time.Millisecond})
	_, err := c.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/"})
	var tErr *TransportError
	assert.ErrorAs(t, err, &tErr)
}

func TestContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewClient(cfg, ClientOptions{Transport: newTransport()})
	_, err := c.Do(ctx, RequestOptions{Method: http.MethodGet, Path: "/"})
	assert.ErrorIs(t, err, context.Canceled)
}
