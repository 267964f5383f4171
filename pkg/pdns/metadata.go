package pdns

import (
	"context"
	"net/http"
)

// ListMetadata returns all metadata entries of a zone.
// GET /servers/{server_id}/zones/{zone_id}/metadata
func (c *Client) ListMetadata(ctx context.Context, serverID, zone string) ([]Metadata, error) {
	zone = Canonicalize(zone)
	req, err := c.newRequest(ctx, http.MethodGet,
		c.path("servers", serverID, "zones", zone, "metadata"), nil)
	if err != nil {
		return nil, err
	}
	var entries []Metadata
	if err := c.do(req, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetMetadata returns the values of one metadata kind.
// GET /servers/{server_id}/zones/{zone_id}/metadata/{metadata_kind}
func (c *Client) GetMetadata(ctx context.Context, serverID, zone, kind string) (*Metadata, error) {
	zone = Canonicalize(zone)
	req, err := c.newRequest(ctx, http.MethodGet,
		c.path("servers", serverID, "zones", zone, "metadata", kind), nil)
	if err != nil {
		return nil, err
	}
	var entry Metadata
	if err := c.do(req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// SetMetadata replaces the values of one metadata kind.
// PUT /servers/{server_id}/zones/{zone_id}/metadata/{metadata_kind}
func (c *Client) SetMetadata(ctx context.Context, serverID, zone, kind string, values []string) (*Metadata, error) {
	zone = Canonicalize(zone)
	c.log.Info("Setting metadata %s for zone: %s", kind, zone)

	req, err := c.newRequest(ctx, http.MethodPut,
		c.path("servers", serverID, "zones", zone, "metadata", kind),
		&Metadata{Kind: kind, Metadata: values})
	if err != nil {
		return nil, err
	}
	var entry Metadata
	if err := c.do(req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteMetadata removes all values of one metadata kind.
// DELETE /servers/{server_id}/zones/{zone_id}/metadata/{metadata_kind}
func (c *Client) DeleteMetadata(ctx context.Context, serverID, zone, kind string) error {
	zone = Canonicalize(zone)
	c.log.Info("Deleting metadata %s from zone: %s", kind, zone)

	req, err := c.newRequest(ctx, http.MethodDelete,
		c.path("servers", serverID, "zones", zone, "metadata", kind), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
