package pdns

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ListZones returns all zones on the given server, without their RRsets.
// GET /servers/{server_id}/zones
func (c *Client) ListZones(ctx context.Context, serverID string) ([]Zone, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.path("servers", serverID, "zones"), nil)
	if err != nil {
		return nil, err
	}
	var zones []Zone
	if err := c.do(req, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// GetZone retrieves a zone with its RRsets by name. The name is
// canonicalized before the lookup. A missing zone returns (nil, nil).
// GET /servers/{server_id}/zones/{zone_id}
func (c *Client) GetZone(ctx context.Context, serverID, name string) (*Zone, error) {
	name = Canonicalize(name)
	req, err := c.newRequest(ctx, http.MethodGet, c.path("servers", serverID, "zones", name), nil)
	if err != nil {
		return nil, err
	}
	var zone Zone
	if err := c.do(req, &zone); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &zone, nil
}

// CreateZone creates a new zone on the given server. The zone name is
// canonicalized first. A name collision surfaces as an *APIError with the
// server's 409 status.
// POST /servers/{server_id}/zones
func (c *Client) CreateZone(ctx context.Context, serverID string, zone *Zone) (*Zone, error) {
	zone.Name = Canonicalize(zone.Name)
	c.log.Info("Creating zone: %s", zone.Name)

	req, err := c.newRequest(ctx, http.MethodPost, c.path("servers", serverID, "zones"), zone)
	if err != nil {
		return nil, err
	}
	var created Zone
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteZone removes a zone and all its records.
// DELETE /servers/{server_id}/zones/{zone_id}
func (c *Client) DeleteZone(ctx context.Context, serverID, name string) error {
	name = Canonicalize(name)
	c.log.Info("Deleting zone: %s", name)

	req, err := c.newRequest(ctx, http.MethodDelete, c.path("servers", serverID, "zones", name), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// NotifyZone queues a DNS NOTIFY to all slaves of the zone.
// PUT /servers/{server_id}/zones/{zone_id}/notify
func (c *Client) NotifyZone(ctx context.Context, serverID, name string) error {
	name = Canonicalize(name)
	c.log.Info("Notifying of zone: %s", name)

	req, err := c.newRequest(ctx, http.MethodPut, c.path("servers", serverID, "zones", name, "notify"), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// ExportZone returns the zone in AXFR-style presentation format.
// GET /servers/{server_id}/zones/{zone_id}/export
func (c *Client) ExportZone(ctx context.Context, serverID, name string) (string, error) {
	name = Canonicalize(name)
	req, err := c.newRequest(ctx, http.MethodGet, c.path("servers", serverID, "zones", name, "export"), nil)
	if err != nil {
		return "", err
	}
	return c.doText(req)
}

// SuggestZone returns the most specific zone on the server that the
// canonical record name falls under, or nil when none matches.
func (c *Client) SuggestZone(ctx context.Context, serverID, recordName string) (*Zone, error) {
	if !IsCanonical(recordName) {
		return nil, fmt.Errorf("record name %q is not canonical", recordName)
	}

	zones, err := c.ListZones(ctx, serverID)
	if err != nil {
		return nil, err
	}

	var best *Zone
	for i := range zones {
		zone := &zones[i]
		if recordName != zone.Name && !strings.HasSuffix(recordName, "."+zone.Name) {
			continue
		}
		if best == nil || len(zone.Name) > len(best.Name) {
			best = zone
		}
	}
	return best, nil
}
