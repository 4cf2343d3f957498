package sauce

import (
	"context"
	"fmt"
	"net/http"
)

// Account provides user account information and management.
type Account struct {
	client *Client
}

// GetUser returns basic account information.
func (a *Account) GetUser(ctx context.Context) (User, error) {
	endpoint := fmt.Sprintf("/rest/v1/users/%s", a.client.Username())
	return decodeAs[User](a.client.get(ctx, endpoint, nil))
}

// CreateUser creates a sub account.
func (a *Account) CreateUser(ctx context.Context, user NewUser) (Result, error) {
	endpoint := fmt.Sprintf("/rest/v1/users/%s", a.client.Username())
	return a.client.send(ctx, http.MethodPost, endpoint, user)
}

// GetConcurrency returns the account's concurrency limits.
func (a *Account) GetConcurrency(ctx context.Context) (Result, error) {
	endpoint := fmt.Sprintf("/rest/v1.1/users/%s/concurrency", a.client.Username())
	return a.client.get(ctx, endpoint, nil)
}

// GetSubaccounts lists the sub accounts of this account.
func (a *Account) GetSubaccounts(ctx context.Context) (Result, error) {
	endpoint := fmt.Sprintf("/rest/v1/users/%s/list-subaccounts", a.client.Username())
	return a.client.get(ctx, endpoint, nil)
}

// GetSiblings lists accounts that share this account's parent.
func (a *Account) GetSiblings(ctx context.Context) (Result, error) {
	endpoint := fmt.Sprintf("/rest/v1.1/users/%s/siblings", a.client.Username())
	return a.client.get(ctx, endpoint, nil)
}

// GetSubaccountInfo returns details about the sub accounts.
func (a *Account) GetSubaccountInfo(ctx context.Context) (Result, error) {
	endpoint := fmt.Sprintf("/rest/v1/users/%s/subaccounts", a.client.Username())
	return a.client.get(ctx, endpoint, nil)
}

// ChangeAccessKey rotates the account's access key. The client keeps using
// the old key; build a new client with the returned one.
func (a *Account) ChangeAccessKey(ctx context.Context) (Result, error) {
	endpoint := fmt.Sprintf("/rest/v1/users/%s/accesskey/change", a.client.Username())
	return a.client.send(ctx, http.MethodPost, endpoint, nil)
}

// GetActivity reports running and queued jobs.
func (a *Account) GetActivity(ctx context.Context) (Activity, error) {
	endpoint := fmt.Sprintf("/rest/v1/%s/activity", a.client.Username())
	return decodeAs[Activity](a.client.get(ctx, endpoint, nil))
}

// GetUsage returns historical usage, optionally limited to a date range.
func (a *Account) GetUsage(ctx context.Context, opts UsageOptions) (Usage, error) {
	endpoint := fmt.Sprintf("/rest/v1/users/%s/usage", a.client.Username())
	return decodeAs[Usage](a.client.get(ctx, endpoint, opts))
}
