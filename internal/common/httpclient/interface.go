package httpclient

import "context"

// Dispatcher is the request pipeline consumed by the resource facades.
type Dispatcher interface {
	// Do sends the request and returns the decoded JSON value of a 200/201 response.
	Do(ctx context.Context, opts RequestOptions) (any, error)

	// DoRequest sends the request and returns the buffered response without decoding it.
	DoRequest(ctx context.Context, opts RequestOptions) (*Response, error)
}

var _ Dispatcher = &HTTPClient{}
