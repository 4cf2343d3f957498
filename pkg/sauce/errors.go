package sauce

import "github.com/sauceclient/sauceclient/internal/common/httpclient"

type (
	// APIError is returned for any status other than 200 and 201. It keeps
	// the status, the reason phrase and the full buffered Response.
	APIError = httpclient.APIError
	// Response is a fully buffered HTTP response.
	Response = httpclient.Response
	// DecodeError is returned when a successful response is not valid JSON.
	DecodeError = httpclient.DecodeError
	// TransportError is returned when the exchange failed before a status was read.
	TransportError = httpclient.TransportError
)

// IsAPIError reports whether err is an *APIError, optionally restricted to the given statuses.
func IsAPIError(err error, statuses ...int) bool {
	return httpclient.IsAPIError(err, statuses...)
}
