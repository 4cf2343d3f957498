package sauce

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauceclient/sauceclient/internal/common/httpclient"
	"github.com/sauceclient/sauceclient/internal/saucetest"
)

const (
	testUsername  = "sauce-username"
	testAccessKey = "sauce-access-key"
)

func newTestClient(t *testing.T) (*Client, *saucetest.Server) {
	t.Helper()
	srv := saucetest.New()
	c := NewClient(NewCredentials(testUsername, testAccessKey), WithTransport(httpclient.NewHandlerTransport(srv)))
	return c, srv
}

func staticClient(status int, reason, body string) *Client {
	return NewClient(NewCredentials(testUsername, testAccessKey),
		WithTransport(httpclient.StaticResponse(status, reason, []byte(body))))
}

func TestSuccessStatuses(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated} {
		c := staticClient(status, "OK", `{}`)

		got, err := c.Account.GetConcurrency(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, got)

		got, err = c.Do(context.Background(), http.MethodGet, "/rest/v1/info/status", nil, "")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, got)
	}
}

func TestBadRequest(t *testing.T) {
	c := staticClient(400, "BAD", `{"message":"bad"}`)

	calls := map[string]func() error{
		"status": func() error {
			_, err := c.Information.GetStatus(context.Background())
			return err
		},
		"user": func() error {
			_, err := c.Account.GetUser(context.Background())
			return err
		},
		"jobs": func() error {
			_, err := c.Jobs.GetJobs(context.Background(), JobsOptions{})
			return err
		},
		"delete tunnel": func() error {
			_, err := c.Tunnels.DeleteTunnel(context.Background(), "tunnel-id")
			return err
		},
		"tests": func() error {
			_, err := c.Analytics.GetTests(context.Background(), TestsOptions{})
			return err
		},
	}
	for name, call := range calls {
		err := call()
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr), name)
		assert.Equal(t, 400, apiErr.StatusCode, name)
		assert.Equal(t, "BAD", apiErr.Response.Reason, name)
		assert.Equal(t, `{"message":"bad"}`, string(apiErr.Response.Body), name)
		assert.True(t, IsAPIError(err, http.StatusBadRequest), name)
	}
}

func TestDecodeErrorIsTyped(t *testing.T) {
	c := staticClient(200, "OK", `<html>`)
	_, err := c.Jobs.GetJob(context.Background(), "job-id")
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "<html>", string(decErr.Response.Body))
}

func TestEmptyBodyIsNotASuccess(t *testing.T) {
	c := staticClient(200, "OK", "")
	job, err := c.Jobs.GetJob(context.Background(), "job-id")
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, Job{}, job)

	_, err = staticClient(200, "OK", "  \n").Tunnels.DeleteTunnel(context.Background(), "tunnel-id")
	assert.ErrorAs(t, err, &decErr)
}

func TestUnexpectedShape(t *testing.T) {
	c := staticClient(200, "OK", `"not a job"`)
	_, err := c.Jobs.GetJob(context.Background(), "job-id")
	assert.ErrorContains(t, err, "unexpected response shape")
}

func TestAuthorizationOnEveryCall(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()

	_, err := c.Information.GetStatus(ctx)
	require.NoError(t, err)
	_, err = c.Jobs.DeleteJob(ctx, "job-id")
	require.NoError(t, err)

	for _, r := range srv.Requests() {
		assert.Equal(t, "Basic c2F1Y2UtdXNlcm5hbWU6c2F1Y2UtYWNjZXNzLWtleQ==", r.Authorization)
		assert.Equal(t, "application/json", r.ContentType)
	}
}

func TestConcurrentClients(t *testing.T) {
	srv := saucetest.New()
	transport := httpclient.NewHandlerTransport(srv)
	alice := NewClient(NewCredentials("alice", "a"), WithTransport(transport))
	bob := NewClient(NewCredentials("bob", "b"), WithTransport(transport))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := alice.Jobs.GetJobs(context.Background(), JobsOptions{})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := bob.Storage.Upload(context.Background(), "app.zip", strings.NewReader("PK"), true)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for _, r := range srv.Requests() {
		switch r.Path {
		case "/rest/v1/alice/jobs":
			assert.Equal(t, "application/json", r.ContentType)
			assert.Equal(t, "Basic "+NewCredentials("alice", "a").AuthString(), r.Authorization)
		case "/rest/v1/storage/bob/app.zip":
			assert.Equal(t, OctetStream, r.ContentType)
			assert.Equal(t, "Basic "+NewCredentials("bob", "b").AuthString(), r.Authorization)
		default:
			t.Errorf("unexpected path %s", r.Path)
		}
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Credentials{Username: "u", AccessKey: "k"})
	assert.Equal(t, "application/json", c.Credentials().DefaultContentType)
	assert.Equal(t, "u", c.Username())
	assert.NotNil(t, c.Account)
	assert.NotNil(t, c.Information)
	assert.NotNil(t, c.JavaScript)
	assert.NotNil(t, c.Jobs)
	assert.NotNil(t, c.Storage)
	assert.NotNil(t, c.Tunnels)
	assert.NotNil(t, c.Analytics)
}
