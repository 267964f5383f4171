package pdns

import (
	"context"
	"net/http"
)

// ListServers returns all servers known to the API.
// GET /servers
func (c *Client) ListServers(ctx context.Context) ([]Server, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.path("servers"), nil)
	if err != nil {
		return nil, err
	}
	var servers []Server
	if err := c.do(req, &servers); err != nil {
		return nil, err
	}
	return servers, nil
}

// GetServer returns details about a specific server.
// GET /servers/{server_id}
func (c *Client) GetServer(ctx context.Context, serverID string) (*Server, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.path("servers", serverID), nil)
	if err != nil {
		return nil, err
	}
	var server Server
	if err := c.do(req, &server); err != nil {
		return nil, err
	}
	return &server, nil
}

// GetConfig returns the server configuration settings.
// GET /servers/{server_id}/config
func (c *Client) GetConfig(ctx context.Context, serverID string) ([]ConfigSetting, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.path("servers", serverID, "config"), nil)
	if err != nil {
		return nil, err
	}
	var settings []ConfigSetting
	if err := c.do(req, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}
