package pdns

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SearchData searches names and record contents across all zones on the
// server. objectType narrows results to "all", "zone", "record" or
// "comment"; an empty value leaves the server default.
// GET /servers/{server_id}/search-data
func (c *Client) SearchData(ctx context.Context, serverID, q string, max int, objectType string) ([]SearchResult, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.path("servers", serverID, "search-data"), nil)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", q)
	if max > 0 {
		params.Set("max", strconv.Itoa(max))
	}
	if objectType != "" {
		params.Set("object_type", objectType)
	}
	req.URL.RawQuery = params.Encode()

	var results []SearchResult
	if err := c.do(req, &results); err != nil {
		return nil, err
	}
	return results, nil
}
