package pdns

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for every non-2xx API response. It preserves the
// original HTTP status code together with the server's error message.
type APIError struct {
	StatusCode int
	URL        string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// errorMessage extracts the server error message from a response body.
// PowerDNS replies with {"error": "..."} or {"errors": [...]}; anything
// else falls back to the raw body.
func errorMessage(statusCode int, body []byte) string {
	if statusCode == http.StatusNotFound {
		return "Not found"
	}

	var payload struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if len(payload.Errors) > 0 {
			return fmt.Sprintf("%v", payload.Errors)
		}
	}

	msg := string(body)
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return msg
}
