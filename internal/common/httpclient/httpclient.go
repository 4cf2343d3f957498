// Package httpclient provides the authenticated request pipeline used by the
// sauce client. Each call opens its own connection, sends the request with
// Basic authentication, buffers the whole response and classifies the status:
// 200 and 201 decode as JSON, everything else becomes an *APIError.
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/sauceclient/sauceclient/internal/common/logtrace"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultContentType is sent when neither the request nor the configurator
// specify one.
const DefaultContentType = "application/json"

// Configurator supplies the server location and credentials for each request.
// Implementations must be safe for concurrent reads.
type Configurator interface {
	GetServerURL() string
	GetAuthString() string
	GetContentType() string
}

// HTTPClient sends requests to a REST API server.
type HTTPClient struct {
	config     Configurator
	httpClient *http.Client
	logger     zerolog.Logger
	userAgent  string
}

// ClientOptions contains options for configuring the HTTP client.
type ClientOptions struct {
	HTTPClient *http.Client      // used as-is when set
	Transport  http.RoundTripper // replaces the default transport when HTTPClient is nil
	Timeout    time.Duration     // per-call deadline, zero means none
	Logger     *zerolog.Logger   // defaults to a disabled logger
	UserAgent  string
}

// NewClient creates a new HTTP client using the provided configuration.
func NewClient(config Configurator, opts ...ClientOptions) *HTTPClient {
	clientOpts := ClientOptions{}
	if len(opts) > 0 {
		clientOpts = opts[0]
	}
	return NewClientWithOptions(config, clientOpts)
}

// NewClientWithOptions creates a new HTTP client using the provided configuration and options.
func NewClientWithOptions(config Configurator, opts ClientOptions) *HTTPClient {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		transport := opts.Transport
		if transport == nil {
			transport = newTransport()
		}
		httpClient = &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		}
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &HTTPClient{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
		userAgent:  opts.UserAgent,
	}
}

// newTransport returns a transport that never reuses connections, so every
// call dials, sends and tears down its own connection.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DisableKeepAlives = true
	return t
}

// RequestOptions contains options for making HTTP requests.
// Path may already carry a query string.
type RequestOptions struct {
	Method      string // HTTP method (GET, POST, PUT, DELETE)
	Path        string // API endpoint path, e.g. /rest/v1/info/status
	Body        []byte // optional request body
	ContentType string // optional, defaults to the configurator's content type
}

// Response is a fully buffered HTTP response.
type Response struct {
	StatusCode int
	Reason     string
	Header     http.Header
	Body       []byte
}

// Do sends the request and returns the decoded JSON value for a successful
// status. The value is whatever the endpoint returned: map[string]any, []any,
// string, float64, bool or nil.
func (c *HTTPClient) Do(ctx context.Context, opts RequestOptions) (any, error) {
	resp, err := c.DoRequest(ctx, opts)
	if err != nil {
		return nil, err
	}
	return decode(resp)
}

// DoRequest sends the request and returns the buffered response. Statuses
// other than 200 and 201 are returned as *APIError.
func (c *HTTPClient) DoRequest(ctx context.Context, opts RequestOptions) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, requestID := logtrace.EnsureRequestID(ctx)

	req, err := c.newRequest(ctx, opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Str("request_id", requestID).
			Str("method", opts.Method).
			Str("path", opts.Path).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("request failed")
		return nil, &TransportError{Method: opts.Method, Path: opts.Path, Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{Method: opts.Method, Path: opts.Path, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Reason:     reasonPhrase(httpResp),
		Header:     httpResp.Header,
		Body:       body,
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", opts.Method).
		Str("path", opts.Path).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if !IsSuccess(resp.StatusCode) {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Reason:     resp.Reason,
			Response:   resp,
		}
	}
	return resp, nil
}

// newRequest builds the outgoing request with headers created fresh for this call.
func (c *HTTPClient) newRequest(ctx context.Context, opts RequestOptions) (*http.Request, error) {
	base := strings.TrimRight(c.config.GetServerURL(), "/")
	path := opts.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, base+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = c.config.GetContentType()
	}
	if contentType == "" {
		contentType = DefaultContentType
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Basic "+c.config.GetAuthString())
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

// IsSuccess reports whether the status is one the service uses for success.
func IsSuccess(status int) bool {
	return status == http.StatusOK || status == http.StatusCreated
}

// reasonPhrase extracts the reason from a status line such as "400 Bad Request".
func reasonPhrase(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, code))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

// decode parses a success body. An empty body is not valid JSON either.
func decode(resp *Response) (any, error) {
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil, &DecodeError{Response: resp, Err: io.ErrUnexpectedEOF}
	}
	var v any
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return nil, &DecodeError{Response: resp, Err: err}
	}
	return v, nil
}
