// Package clone copies a zone under a new name and rewrites CNAME
// references that point at the old name.
package clone

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kreigan/pdnsctl/pkg/logger"
	"github.com/kreigan/pdnsctl/pkg/pdns"
)

// ErrZoneExists is returned when the destination zone is already present.
var ErrZoneExists = errors.New("zone already exists")

// ErrZoneNotFound is returned when a required zone is absent.
var ErrZoneNotFound = errors.New("zone not found")

// ZoneClient defines the PowerDNS operations the cloner needs.
type ZoneClient interface {
	GetZone(ctx context.Context, serverID, name string) (*pdns.Zone, error)
	CreateZone(ctx context.Context, serverID string, zone *pdns.Zone) (*pdns.Zone, error)
	CreateRecords(ctx context.Context, serverID, zone string, rrsets []pdns.RRSet) error
}

// Cloner sequences the API calls for a zone copy. Any API error aborts
// the operation; partially created zones are not rolled back.
type Cloner struct {
	client   ZoneClient
	serverID string
	log      *logger.Logger
}

// NewCloner creates a new cloner bound to one server.
func NewCloner(client ZoneClient, serverID string, log *logger.Logger) *Cloner {
	return &Cloner{
		client:   client,
		serverID: serverID,
		log:      log,
	}
}

// Result summarizes a clone operation.
type Result struct {
	// RRSetsCopied counts record sets carried over to the new zone
	RRSetsCopied int
	// RRSetsSkipped counts SOA and apex NS record sets left to the server
	RRSetsSkipped int
}

// Clone copies zone src to dst on the same server. Record set names and
// CNAME targets inside the source zone are rewritten from src to dst.
// SOA and apex NS record sets are not copied; the server regenerates the
// SOA and the nameservers are carried over via the zone document.
func (c *Cloner) Clone(ctx context.Context, src, dst string) (*Result, error) {
	src = pdns.Canonicalize(src)
	dst = pdns.Canonicalize(dst)

	c.log.Info("Fetching source zone: %s", src)
	source, err := c.client.GetZone(ctx, c.serverID, src)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch zone %s: %w", src, err)
	}
	if source == nil {
		return nil, fmt.Errorf("source zone %s: %w", src, ErrZoneNotFound)
	}

	// Never attempt the create call when the destination is taken.
	existing, err := c.client.GetZone(ctx, c.serverID, dst)
	if err != nil {
		return nil, fmt.Errorf("failed to check zone %s: %w", dst, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("destination zone %s: %w", dst, ErrZoneExists)
	}

	result := &Result{}
	zone := &pdns.Zone{
		Name:    dst,
		Kind:    source.Kind,
		Masters: source.Masters,
	}

	for _, rrset := range source.RRsets {
		switch {
		case rrset.Type == "SOA":
			result.RRSetsSkipped++
		case rrset.Type == "NS" && rrset.Name == src:
			for _, r := range rrset.Records {
				zone.Nameservers = append(zone.Nameservers, r.Content)
			}
			result.RRSetsSkipped++
		default:
			copied := rrset
			copied.Name = rewriteSuffix(rrset.Name, src, dst)
			copied.Records = rewriteRecords(rrset.Records, rrset.Type, src, dst)
			zone.RRsets = append(zone.RRsets, copied)
			result.RRSetsCopied++
		}
	}

	c.log.Info("Creating zone %s with %d record set(s)", dst, result.RRSetsCopied)
	if _, err := c.client.CreateZone(ctx, c.serverID, zone); err != nil {
		return nil, fmt.Errorf("failed to create zone %s: %w", dst, err)
	}

	return result, nil
}

// RewriteReferences scans the given zones for CNAME records pointing at
// src and patches them in place to point at dst. It returns the number of
// rewritten record sets per zone.
func (c *Cloner) RewriteReferences(ctx context.Context, zones []string, src, dst string) (map[string]int, error) {
	src = pdns.Canonicalize(src)
	dst = pdns.Canonicalize(dst)
	rewritten := make(map[string]int)

	for _, name := range zones {
		name = pdns.Canonicalize(name)
		c.log.Info("Scanning zone %s for references to %s", name, src)

		zone, err := c.client.GetZone(ctx, c.serverID, name)
		if err != nil {
			return rewritten, fmt.Errorf("failed to fetch zone %s: %w", name, err)
		}
		if zone == nil {
			return rewritten, fmt.Errorf("zone %s: %w", name, ErrZoneNotFound)
		}

		var patches []pdns.RRSet
		for _, rrset := range zone.RRsets {
			if rrset.Type != "CNAME" || !referencesZone(rrset.Records, src) {
				continue
			}
			patch := rrset
			patch.Records = rewriteRecords(rrset.Records, rrset.Type, src, dst)
			c.log.Debug("  Rewriting %s CNAME -> %s", patch.Name, dst)
			patches = append(patches, patch)
		}

		if len(patches) > 0 {
			if err := c.client.CreateRecords(ctx, c.serverID, name, patches); err != nil {
				return rewritten, fmt.Errorf("failed to patch zone %s: %w", name, err)
			}
		}
		rewritten[name] = len(patches)
	}

	return rewritten, nil
}

// rewriteSuffix swaps the zone suffix of a canonical name from src to
// dst. Only an exact match or a "."-separated suffix is rewritten, never
// an arbitrary substring occurrence.
func rewriteSuffix(name, src, dst string) string {
	if name == src {
		return dst
	}
	if strings.HasSuffix(name, "."+src) {
		return strings.TrimSuffix(name, src) + dst
	}
	return name
}

// rewriteRecords rewrites CNAME targets pointing at src. Records of other
// types are returned unchanged.
func rewriteRecords(records []pdns.Record, rtype, src, dst string) []pdns.Record {
	if rtype != "CNAME" {
		out := make([]pdns.Record, len(records))
		copy(out, records)
		return out
	}
	out := make([]pdns.Record, len(records))
	for i, r := range records {
		r.Content = rewriteSuffix(r.Content, src, dst)
		out[i] = r
	}
	return out
}

// referencesZone reports whether any record content points at the zone.
func referencesZone(records []pdns.Record, zone string) bool {
	for _, r := range records {
		if r.Content == zone || strings.HasSuffix(r.Content, "."+zone) {
			return true
		}
	}
	return false
}
