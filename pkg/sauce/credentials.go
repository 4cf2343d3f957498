package sauce

import (
	"encoding/base64"
	"strings"

	"github.com/sauceclient/sauceclient/internal/common/httpclient"
)

// DefaultHost is the API host used when none is configured.
const DefaultHost = "saucelabs.com"

// Credentials identify the account every request is made for. The value is
// copied into the client on construction and never modified afterwards.
// No validation is performed; bad credentials surface as 401 responses.
type Credentials struct {
	Username  string
	AccessKey string
	// Host is a bare host name ("eu-central-1.saucelabs.com") or a full base
	// URL. Bare hosts are reached over https.
	Host string
	// DefaultContentType is sent on requests that do not set their own.
	DefaultContentType string
}

// NewCredentials returns credentials for the default host.
func NewCredentials(username, accessKey string) Credentials {
	return Credentials{
		Username:           username,
		AccessKey:          accessKey,
		Host:               DefaultHost,
		DefaultContentType: httpclient.DefaultContentType,
	}
}

// WithHost returns a copy of c pointing at another API base.
func (c Credentials) WithHost(host string) Credentials {
	c.Host = host
	return c
}

// AuthString returns base64("username:access_key"), the Basic auth value.
func (c Credentials) AuthString() string {
	return base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.AccessKey))
}

// AuthToken returns the share-link token for jobID signed with these credentials.
func (c Credentials) AuthToken(jobID, dateRange string) string {
	return AuthToken(jobID, c.Username+":"+c.AccessKey, dateRange)
}

// ServerURL returns the base URL requests are sent to.
func (c Credentials) ServerURL() string {
	return MorphServer(c.Host)
}

// MorphServer ensures the server URL is properly formatted.
// An empty host maps to the default host, https:// is added when no scheme
// is present and trailing slashes are removed.
func MorphServer(server string) string {
	if server == "" {
		server = DefaultHost
	}

	// Remove any trailing slashes
	server = strings.TrimRight(server, "/")

	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		server = "https://" + server
	}

	return server
}

// configurator adapts Credentials to httpclient.Configurator.
type configurator struct {
	creds Credentials
}

func (c configurator) GetServerURL() string {
	return c.creds.ServerURL()
}

func (c configurator) GetAuthString() string {
	return c.creds.AuthString()
}

func (c configurator) GetContentType() string {
	return c.creds.DefaultContentType
}
