package postmark

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://api.postmarkapp.com"
	defaultTimeout = 30 * time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL         string
	httpClient      *http.Client
	timeout         time.Duration
	userAgent       string
	logger          zerolog.Logger
	registerer      prometheus.Registerer
	bulkConcurrency int
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. Timeouts and connection
// pooling are then entirely up to the supplied client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used for per-request debug and warning
// events. The server token is never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithMetrics registers request counters and latency histograms on reg
// and instruments every request made by the client.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.registerer = reg
	}
}

// WithBulkConcurrency bounds how many requests DeleteAllWebhookConfigurations
// keeps in flight. Zero or negative means unbounded.
func WithBulkConcurrency(n int) Option {
	return func(c *clientConfig) {
		c.bulkConcurrency = n
	}
}
