// Package sauce is a client for the Sauce Labs REST API.
//
// A Client is built from Credentials and exposes the API through resource
// facades (Account, Information, JavaScript, Jobs, Storage, Tunnels,
// Analytics). Every call goes through one pipeline: Basic authentication, one
// connection per call, full buffering of the response, JSON decoding of 200
// and 201 responses and an *APIError for any other status.
//
//	client := sauce.NewClient(sauce.NewCredentials("user", "key"))
//	jobs, err := client.Jobs.GetJobs(ctx, sauce.JobsOptions{Limit: sauce.Int(10)})
package sauce

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sauceclient/sauceclient/internal/common/httpclient"
)

// Version is reported in the User-Agent header.
const Version = "1.0.1"

// Result is a decoded JSON response body: map[string]any, []any, string,
// float64, bool or nil depending on the endpoint.
type Result = any

// Client is safe for concurrent use; it holds no mutable state.
type Client struct {
	creds      Credentials
	dispatcher httpclient.Dispatcher
	logger     zerolog.Logger

	Account     *Account
	Information *Information
	JavaScript  *JavaScript
	Jobs        *Jobs
	Storage     *Storage
	Tunnels     *Tunnels
	Analytics   *Analytics
}

// ClientOption configures a Client.
type ClientOption func(*httpclient.ClientOptions)

// WithHTTPClient makes the client send requests through hc. The caller then
// owns connection reuse and timeouts.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(o *httpclient.ClientOptions) {
		o.HTTPClient = hc
	}
}

// WithTransport replaces the default transport, which opens one connection per call.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(o *httpclient.ClientOptions) {
		o.Transport = rt
	}
}

// WithTimeout bounds every call, including reading the response body.
func WithTimeout(d time.Duration) ClientOption {
	return func(o *httpclient.ClientOptions) {
		o.Timeout = d
	}
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(o *httpclient.ClientOptions) {
		o.Logger = &l
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(o *httpclient.ClientOptions) {
		o.UserAgent = ua
	}
}

// NewClient creates a client for the given credentials.
func NewClient(creds Credentials, opts ...ClientOption) *Client {
	if creds.DefaultContentType == "" {
		creds.DefaultContentType = httpclient.DefaultContentType
	}
	clientOpts := httpclient.ClientOptions{
		UserAgent: "sauceclient-go/" + Version,
	}
	for _, opt := range opts {
		opt(&clientOpts)
	}
	logger := zerolog.Nop()
	if clientOpts.Logger != nil {
		logger = *clientOpts.Logger
	}
	return newClient(creds, httpclient.NewClientWithOptions(configurator{creds: creds}, clientOpts), logger)
}

func newClient(creds Credentials, d httpclient.Dispatcher, logger zerolog.Logger) *Client {
	c := &Client{
		creds:      creds,
		dispatcher: d,
		logger:     logger,
	}
	c.Account = &Account{client: c}
	c.Information = &Information{client: c}
	c.JavaScript = &JavaScript{client: c}
	c.Jobs = &Jobs{client: c}
	c.Storage = &Storage{client: c}
	c.Tunnels = &Tunnels{client: c}
	c.Analytics = &Analytics{client: c}
	return c
}

// Credentials returns a copy of the client's credentials.
func (c *Client) Credentials() Credentials {
	return c.creds
}

// Username is the account all user-scoped paths are built for.
func (c *Client) Username() string {
	return c.creds.Username
}

// Do sends a request to path, which may already include a query string, and
// returns the decoded body. An empty contentType means the credentials' default.
func (c *Client) Do(ctx context.Context, method, path string, body []byte, contentType string) (Result, error) {
	return c.dispatcher.Do(ctx, httpclient.RequestOptions{
		Method:      method,
		Path:        path,
		Body:        body,
		ContentType: contentType,
	})
}

// get sends a GET for path with the query built from opts.
func (c *Client) get(ctx context.Context, path string, opts any) (Result, error) {
	endpoint, err := EncodeQuery(path, opts)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, http.MethodGet, endpoint, nil, "")
}

// send marshals payload, when present, as the JSON body.
func (c *Client) send(ctx context.Context, method, path string, payload any) (Result, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = encodeBody(payload)
		if err != nil {
			return nil, err
		}
	}
	return c.Do(ctx, method, path, body, "")
}
