package sauce

import (
	"context"
	"fmt"
	"net/http"
)

// JavaScript starts JavaScript unit tests and polls their status.
type JavaScript struct {
	client *Client
}

// Run starts the tests at req.URL on every requested platform.
func (j *JavaScript) Run(ctx context.Context, req JSTestRequest) (Result, error) {
	endpoint := fmt.Sprintf("/rest/v1/%s/js-tests", j.client.Username())
	return j.client.send(ctx, http.MethodPost, endpoint, req)
}

// Status reports the progress of previously started tests.
func (j *JavaScript) Status(ctx context.Context, ids []string) (Result, error) {
	endpoint := fmt.Sprintf("/rest/v1/%s/js-tests/status", j.client.Username())
	if ids == nil {
		ids = []string{}
	}
	return j.client.send(ctx, http.MethodPost, endpoint, map[string][]string{"js tests": ids})
}
