package pdns

import (
	"context"
	"net/http"
	"strconv"
)

// ListCryptoKeys returns all DNSSEC keys of a zone, without private key
// material.
// GET /servers/{server_id}/zones/{zone_id}/cryptokeys
func (c *Client) ListCryptoKeys(ctx context.Context, serverID, zone string) ([]CryptoKey, error) {
	zone = Canonicalize(zone)
	req, err := c.newRequest(ctx, http.MethodGet,
		c.path("servers", serverID, "zones", zone, "cryptokeys"), nil)
	if err != nil {
		return nil, err
	}
	var keys []CryptoKey
	if err := c.do(req, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// GetCryptoKey returns one DNSSEC key, including private key material.
// GET /servers/{server_id}/zones/{zone_id}/cryptokeys/{cryptokey_id}
func (c *Client) GetCryptoKey(ctx context.Context, serverID, zone string, keyID int) (*CryptoKey, error) {
	zone = Canonicalize(zone)
	req, err := c.newRequest(ctx, http.MethodGet,
		c.path("servers", serverID, "zones", zone, "cryptokeys", strconv.Itoa(keyID)), nil)
	if err != nil {
		return nil, err
	}
	var key CryptoKey
	if err := c.do(req, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// CreateCryptoKey adds a DNSSEC key to the zone. When no private key
// material is supplied the server generates a new key.
// POST /servers/{server_id}/zones/{zone_id}/cryptokeys
func (c *Client) CreateCryptoKey(ctx context.Context, serverID, zone string, key *CryptoKey) (*CryptoKey, error) {
	zone = Canonicalize(zone)
	c.log.Info("Creating cryptokey for zone: %s", zone)

	req, err := c.newRequest(ctx, http.MethodPost,
		c.path("servers", serverID, "zones", zone, "cryptokeys"), key)
	if err != nil {
		return nil, err
	}
	var created CryptoKey
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ActivateCryptoKey toggles whether the key is used for signing.
// PUT /servers/{server_id}/zones/{zone_id}/cryptokeys/{cryptokey_id}
func (c *Client) ActivateCryptoKey(ctx context.Context, serverID, zone string, keyID int, active bool) error {
	zone = Canonicalize(zone)
	c.log.Info("Setting cryptokey %d active=%t for zone: %s", keyID, active, zone)

	req, err := c.newRequest(ctx, http.MethodPut,
		c.path("servers", serverID, "zones", zone, "cryptokeys", strconv.Itoa(keyID)),
		&CryptoKey{Active: active})
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// DeleteCryptoKey removes a DNSSEC key from the zone.
// DELETE /servers/{server_id}/zones/{zone_id}/cryptokeys/{cryptokey_id}
func (c *Client) DeleteCryptoKey(ctx context.Context, serverID, zone string, keyID int) error {
	zone = Canonicalize(zone)
	c.log.Info("Deleting cryptokey %d from zone: %s", keyID, zone)

	req, err := c.newRequest(ctx, http.MethodDelete,
		c.path("servers", serverID, "zones", zone, "cryptokeys", strconv.Itoa(keyID)), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
