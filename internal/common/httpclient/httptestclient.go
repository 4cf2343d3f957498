package httpclient

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
)

// RoundTripFunc adapts a function to http.RoundTripper. Tests use it to
// stand in for the network.
type RoundTripFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// StaticResponse returns a transport that answers every request with the given
// status line and body. The reason replaces the standard status text, so
// StaticResponse(400, "BAD", nil) yields a "400 BAD" status.
func StaticResponse(status int, reason string, body []byte) RoundTripFunc {
	if reason == "" {
		reason = http.StatusText(status)
	}
	statusLine := strconv.Itoa(status) + " " + reason
	return func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode:    status,
			Status:        statusLine,
			Proto:         "HTTP/1.1",
			ProtoMajor:    1,
			ProtoMinor:    1,
			Header:        http.Header{"Content-Type": []string{DefaultContentType}},
			Body:          io.NopCloser(bytes.NewReader(body)),
			ContentLength: int64(len(body)),
			Request:       req,
		}, nil
	}
}

// NewHandlerTransport returns a transport that serves requests in-process
// through handler, capturing the response with httptest.NewRecorder instead
// of opening a network connection.
func NewHandlerTransport(handler http.Handler) http.RoundTripper {
	return RoundTripFunc(func(req *http.Request) (*http.Response, error) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		resp := rec.Result()
		resp.Request = req
		return resp, nil
	})
}

// NewTestClient creates an HTTPClient whose requests are served by handler.
func NewTestClient(config Configurator, handler http.Handler) *HTTPClient {
	return NewClientWithOptions(config, ClientOptions{
		Transport: NewHandlerTransport(handler),
	})
}
