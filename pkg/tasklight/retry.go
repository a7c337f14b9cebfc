package tasklight

import (
	"errors"
	"net/http"
)

// The server intermittently rejects the standard bearer header on the
// assignee and label endpoints even when the token is valid. These are the
// known-working alternate presentations, tried in order after a 401/403.
var authHeaderVariants = []headerVariant{
	// Alternate header name, raw token without the Bearer prefix.
	func(c *Client, h http.Header) {
		h.Del("Authorization")
		h.Set("X-API-Token", c.token)
	},
	// Standard header with a literal lowercase key. Header.Set would
	// canonicalize the key, so it is written into the map directly;
	// net/http transmits non-canonical keys verbatim.
	func(c *Client, h http.Header) {
		h.Del("Authorization")
		h["authorization"] = []string{"Bearer " + c.token}
	},
}

// withAuthFallback runs send with the default bearer header, then once per
// fallback variant for as long as the failure stays in the 401/403 class.
// Each attempt is a full, sequential network request with no delay between
// attempts. When every variant is rejected, the last authentication error
// is handed to wrap so the call site can raise its endpoint-family error.
// Any failure outside the 401/403 class aborts the cascade immediately and
// propagates unchanged.
func withAuthFallback(send func(variant headerVariant) error, wrap func(last *AuthenticationError) error) error {
	err := send(nil)
	if err == nil {
		return nil
	}

	var authErr *AuthenticationError
	if !errors.As(err, &authErr) {
		return err
	}

	for _, variant := range authHeaderVariants {
		err = send(variant)
		if err == nil {
			return nil
		}
		if !errors.As(err, &authErr) {
			return err
		}
	}

	return wrap(authErr)
}
