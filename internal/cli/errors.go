package cli

import (
	"errors"
	"net/http"

	"github.com/sauceclient/sauceclient/internal/common/apperrors"
	"github.com/sauceclient/sauceclient/pkg/sauce"
)

var (
	// ErrAlreadyHandled marks errors that were already reported to the user.
	ErrAlreadyHandled = errors.New("already handled")

	ErrCLI          = apperrors.New("sauce cli error")
	ErrConfig       = ErrCLI.New("configuration error")
	ErrNoConfig     = ErrConfig.New("no configuration found, run 'sauce config set' first")
	ErrInvalidArgs  = ErrCLI.New("invalid arguments")
	ErrRequest      = ErrCLI.New("request failed")
	ErrUnauthorized = ErrRequest.New("authentication failed, check username and access key").
			SetStatusCode(http.StatusUnauthorized)
	ErrNotFound = ErrRequest.New("not found").SetStatusCode(http.StatusNotFound)
)

// requestError converts a library error into a CLI error that keeps the
// HTTP status and the original cause.
func requestError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *sauce.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			return ErrUnauthorized.Err(err)
		case http.StatusNotFound:
			return ErrNotFound.Err(err)
		}
		return ErrRequest.Err(err).SetStatusCode(apiErr.StatusCode)
	}
	return ErrRequest.Err(err)
}

// errorDetail returns the response body behind err, if any.
func errorDetail(err error) string {
	var apiErr *sauce.APIError
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		return string(apiErr.Response.Body)
	}
	return ""
}
