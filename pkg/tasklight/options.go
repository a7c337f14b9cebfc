package tasklight

import (
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// clientConfig holds the configuration for a Client.
type clientConfig struct {
	token      string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		timeout: 30 * time.Second,
	}
}

// WithToken sets the API token. It is sent as "Authorization: Bearer
// <token>" on every request unless an endpoint swaps the header style.
func WithToken(token string) ClientOption {
	return func(c *clientConfig) {
		c.token = token
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. WithTimeout is
// ignored when this option is used.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = httpClient
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// Order is the sort direction for list endpoints.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ListOption configures a list or search call. Options map one-to-one
// onto URL query parameters; parameters not set by an option are omitted
// from the request.
type ListOption func(url.Values)

// WithPage sets the page number (1-indexed).
func WithPage(page int) ListOption {
	return func(v url.Values) {
		v.Set("page", strconv.Itoa(page))
	}
}

// WithPerPage sets the number of items per page.
func WithPerPage(perPage int) ListOption {
	return func(v url.Values) {
		v.Set("per_page", strconv.Itoa(perPage))
	}
}

// WithSearch sets the free-text search string.
func WithSearch(s string) ListOption {
	return func(v url.Values) {
		v.Set("s", s)
	}
}

// WithSortBy sets the field to sort by.
func WithSortBy(field string) ListOption {
	return func(v url.Values) {
		v.Set("sort_by", field)
	}
}

// WithOrderBy sets the sort direction.
func WithOrderBy(order Order) ListOption {
	return func(v url.Values) {
		v.Set("order_by", string(order))
	}
}

// WithFilter sets the filter expression, passed through verbatim.
func WithFilter(filter string) ListOption {
	return func(v url.Values) {
		v.Set("filter", filter)
	}
}

// WithFilterIncludeNulls controls whether filtered fields may be null.
func WithFilterIncludeNulls(include bool) ListOption {
	return func(v url.Values) {
		v.Set("filter_include_nulls", strconv.FormatBool(include))
	}
}

// listValues collapses list options into query parameters.
func listValues(opts []ListOption) url.Values {
	if len(opts) == 0 {
		return nil
	}
	values := url.Values{}
	for _, opt := range opts {
		opt(values)
	}
	return values
}
