package sauce

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Tunnels inspects and shuts down Sauce Connect tunnels.
type Tunnels struct {
	client *Client
}

// GetTunnels returns the IDs of the user's running tunnels.
func (t *Tunnels) GetTunnels(ctx context.Context) ([]string, error) {
	endpoint := fmt.Sprintf("/rest/v1/%s/tunnels", t.client.Username())
	return decodeAs[[]string](t.client.get(ctx, endpoint, nil))
}

// GetTunnel returns one tunnel.
func (t *Tunnels) GetTunnel(ctx context.Context, tunnelID string) (Tunnel, error) {
	return decodeAs[Tunnel](t.client.get(ctx, t.tunnelPath(tunnelID), nil))
}

// DeleteTunnel shuts a tunnel down.
func (t *Tunnels) DeleteTunnel(ctx context.Context, tunnelID string) (Result, error) {
	return t.client.send(ctx, http.MethodDelete, t.tunnelPath(tunnelID), nil)
}

func (t *Tunnels) tunnelPath(tunnelID string) string {
	return fmt.Sprintf("/rest/v1/%s/tunnels/%s", t.client.Username(), url.PathEscape(tunnelID))
}
