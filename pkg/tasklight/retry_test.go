package tasklight

import (
	"errors"
	"net/http"
	"testing"
)

func authFailure(status int) error {
	return &AuthenticationError{APIError: APIError{StatusCode: status, Message: "no"}}
}

func TestWithAuthFallbackStopsOnSuccess(t *testing.T) {
	tests := []struct {
		name         string
		results      []error
		wantAttempts int
	}{
		{
			name:         "first attempt succeeds",
			results:      []error{nil},
			wantAttempts: 1,
		},
		{
			name:         "second attempt succeeds",
			results:      []error{authFailure(http.StatusUnauthorized), nil},
			wantAttempts: 2,
		},
		{
			name:         "third attempt succeeds",
			results:      []error{authFailure(http.StatusUnauthorized), authFailure(http.StatusForbidden), nil},
			wantAttempts: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts := 0
			err := withAuthFallback(func(variant headerVariant) error {
				result := tt.results[attempts]
				attempts++
				return result
			}, func(last *AuthenticationError) error {
				t.Error("wrap must not be called on success")
				return last
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if attempts != tt.wantAttempts {
				t.Errorf("expected %d attempts, got %d", tt.wantAttempts, attempts)
			}
		})
	}
}

func TestWithAuthFallbackVariantOrder(t *testing.T) {
	var variants []headerVariant
	_ = withAuthFallback(func(variant headerVariant) error {
		variants = append(variants, variant)
		return authFailure(http.StatusUnauthorized)
	}, func(last *AuthenticationError) error {
		return last
	})

	if len(variants) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(variants))
	}
	if variants[0] != nil {
		t.Error("attempt 1 must use the default header, not a variant")
	}

	c := &Client{token: "tok"}
	h := http.Header{}
	c.setAuthHeader(h)
	variants[1](c, h)
	if h.Get("X-API-Token") != "tok" || h.Get("Authorization") != "" {
		t.Errorf("attempt 2 variant must swap to X-API-Token, got %v", h)
	}

	h = http.Header{}
	c.setAuthHeader(h)
	variants[2](c, h)
	if got := h["authorization"]; len(got) != 1 || got[0] != "Bearer tok" {
		t.Errorf("attempt 3 variant must set a literal lowercase key, got %v", h)
	}
	if _, ok := h["Authorization"]; ok {
		t.Error("attempt 3 variant must remove the canonical Authorization key")
	}
}

func TestWithAuthFallbackShortCircuitsNonAuth(t *testing.T) {
	boom := errors.New("boom")
	attempts := 0
	err := withAuthFallback(func(variant headerVariant) error {
		attempts++
		return boom
	}, func(last *AuthenticationError) error {
		t.Error("wrap must not be called for non-auth failures")
		return last
	})

	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected the original error unchanged, got %v", err)
	}
}

func TestWithAuthFallbackWrapsLastError(t *testing.T) {
	last := authFailure(http.StatusForbidden)
	wrapped := errors.New("wrapped")
	attempts := 0
	err := withAuthFallback(func(variant headerVariant) error {
		attempts++
		return last
	}, func(got *AuthenticationError) error {
		if got.StatusCode != http.StatusForbidden {
			t.Errorf("expected the final error's status, got %d", got.StatusCode)
		}
		return wrapped
	})

	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if !errors.Is(err, wrapped) {
		t.Errorf("expected the wrapped terminal error, got %v", err)
	}
}
