package tasklight

import (
	"fmt"
	"net/http"
	"strings"
)

// Client is an HTTP client for the Tasklight server API.
//
// A Client is immutable after construction and safe for concurrent use:
// it holds no cache and no session state beyond the base URL and the API
// token it was created with.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
}

// NewClient creates a new Tasklight API client for the given base URL.
//
// Optional options:
//   - WithToken: sets the API token sent as a bearer header (default: none)
//   - WithTimeout: sets the HTTP client timeout (default: 30s)
//   - WithHTTPClient: replaces the underlying *http.Client entirely
//   - WithUserAgent: sets the User-Agent header
//
// Example:
//
//	client, err := tasklight.NewClient("https://tasks.example.com/api/v1",
//	    tasklight.WithToken(token),
//	)
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     cfg.token,
		userAgent: cfg.userAgent,
		http:      httpClient,
	}, nil
}
