package pdns

import (
	"context"
	"net/http"
)

// CreateRecords replaces the given RRsets in the zone. Each RRSet fully
// replaces its target on the server; there is no client-side merge. RRSet
// names (and CNAME contents) are qualified with the zone first.
func (c *Client) CreateRecords(ctx context.Context, serverID, zone string, rrsets []RRSet) error {
	zone = Canonicalize(zone)
	c.log.Info("Creating %d record set(s) in %s", len(rrsets), zone)

	for i := range rrsets {
		if err := rrsets[i].EnsureCanonical(zone); err != nil {
			return err
		}
		rrsets[i].ChangeType = ChangeTypeReplace
	}
	return c.patchRRSets(ctx, serverID, zone, rrsets)
}

// UpdateRecords replaces the given RRsets in the zone. PowerDNS has no
// partial update; an update is the same whole-RRSet replacement as a
// create, so both share one code path.
func (c *Client) UpdateRecords(ctx context.Context, serverID, zone string, rrsets []RRSet) error {
	return c.CreateRecords(ctx, serverID, zone, rrsets)
}

// DeleteRecords removes the given RRsets from the zone. Only name and
// type identify an RRSet for deletion; TTL and records must not be sent.
func (c *Client) DeleteRecords(ctx context.Context, serverID, zone string, rrsets []RRSet) error {
	zone = Canonicalize(zone)
	c.log.Info("Deleting %d record set(s) from %s", len(rrsets), zone)

	for i := range rrsets {
		if err := rrsets[i].EnsureCanonical(zone); err != nil {
			return err
		}
		rrsets[i].ChangeType = ChangeTypeDelete
		rrsets[i].TTL = 0
		rrsets[i].Records = nil
		rrsets[i].Comments = nil
	}
	return c.patchRRSets(ctx, serverID, zone, rrsets)
}

// PatchRRSets applies pre-built RRSet changes verbatim. Callers are
// responsible for canonical names and change types.
func (c *Client) PatchRRSets(ctx context.Context, serverID, zone string, rrsets []RRSet) error {
	return c.patchRRSets(ctx, serverID, Canonicalize(zone), rrsets)
}

// patchRRSets sends the PATCH request; a 204 reply means success.
// PATCH /servers/{server_id}/zones/{zone_id}
func (c *Client) patchRRSets(ctx context.Context, serverID, zone string, rrsets []RRSet) error {
	path := c.path("servers", serverID, "zones", zone)
	req, err := c.newRequest(ctx, http.MethodPatch, path, &zonePatch{RRsets: rrsets})
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
