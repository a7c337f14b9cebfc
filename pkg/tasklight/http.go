package tasklight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// headerVariant rewrites the authentication headers on a prepared request.
// A nil variant leaves the default bearer header in place.
type headerVariant func(c *Client, h http.Header)

// do performs a single request against the API: it builds the URL from the
// base URL, path and query, JSON-encodes the body if present, attaches the
// default headers, and decodes a 2xx JSON response into out. Non-2xx
// responses become an *APIError (or *AuthenticationError for 401/403);
// failures without a response become a *TransportError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, variant headerVariant) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	c.setAuthHeader(req.Header)
	if variant != nil {
		variant(c, req.Header)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Endpoint: path, Method: method, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyResponse(method, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// setAuthHeader attaches the standard bearer header when a token is
// configured.
func (c *Client) setAuthHeader(h http.Header) {
	if c.token == "" {
		return
	}
	h.Set("Authorization", "Bearer "+c.token)
}

// classifyResponse turns a non-2xx response into the matching error type,
// preserving the raw body for the caller.
func classifyResponse(method, endpoint string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	apiErr := APIError{
		Message:    messageFromBody(body, resp.Status),
		Endpoint:   endpoint,
		Method:     method,
		StatusCode: resp.StatusCode,
		Response:   string(body),
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &AuthenticationError{APIError: apiErr}
	}
	return &apiErr
}

// messageFromBody extracts the server's error message, falling back to the
// HTTP status line when the body is not the usual JSON error shape.
func messageFromBody(body []byte, status string) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return status
}
