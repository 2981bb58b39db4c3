package postmark

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/postmark-go/client-go/internal/api"
)

// Client is the Postmark API client for a single server token.
//
// A Client holds only immutable configuration and is safe for concurrent
// use. Every method issues exactly one request, except
// DeleteAllWebhookConfigurations, and none of them retry.
type Client struct {
	apiClient       *api.Client
	logger          zerolog.Logger
	bulkConcurrency int
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(serverToken string, cfg *clientConfig) (*api.Client, error) {
	httpClient := cfg.httpClient
	if cfg.registerer != nil {
		instrumented := &http.Client{Timeout: cfg.timeout}
		if httpClient != nil {
			copied := *httpClient
			instrumented = &copied
		}
		rt, err := api.InstrumentedTransport(instrumented.Transport, cfg.registerer)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		instrumented.Transport = rt
		httpClient = instrumented
	}

	return api.New(serverToken,
		api.WithBaseURL(cfg.baseURL),
		api.WithHTTPClient(httpClient),
		api.WithTimeout(cfg.timeout),
		api.WithUserAgent(cfg.userAgent),
		api.WithLogger(cfg.logger),
	)
}

// New creates a new Postmark client authenticated with a server token.
// No request is made until the first method call.
func New(serverToken string, opts ...Option) (*Client, error) {
	if serverToken == "" {
		return nil, ErrMissingServerToken
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(serverToken, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient:       apiClient,
		logger:          cfg.logger,
		bulkConcurrency: cfg.bulkConcurrency,
	}, nil
}

// BaseURL returns the API endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}
