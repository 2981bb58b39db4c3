package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/postmark-go/client-go/internal/apierrors"
)

const (
	// DefaultBaseURL is the production Postmark API endpoint.
	DefaultBaseURL = "https://api.postmarkapp.com"
	// DefaultTimeout is the HTTP client timeout used when none is configured.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = "postmark-go/1.0"

	// ServerTokenHeader carries the server-scoped API token.
	ServerTokenHeader = "X-Postmark-Server-Token"
)

// maxErrorBody caps how much of an error response is read into memory.
const maxErrorBody = 64 << 10

// Config holds the configuration for creating a new Client.
type Config struct {
	// BaseURL is the API endpoint. Defaults to DefaultBaseURL.
	BaseURL string
	// ServerToken is sent in the X-Postmark-Server-Token header. Required.
	ServerToken string
	// HTTPClient overrides the default client. Its Timeout is left untouched.
	HTTPClient *http.Client
	// Timeout applies to the default HTTP client. Defaults to DefaultTimeout.
	Timeout time.Duration
	// UserAgent defaults to DefaultUserAgent.
	UserAgent string
	// Logger receives per-request debug events. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Client is the HTTP API client. It holds only immutable configuration
// and is safe for concurrent use.
type Client struct {
	baseURL     string
	serverToken string
	userAgent   string
	httpClient  *http.Client
	logger      zerolog.Logger
}

// NewClient creates a Client from an explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ServerToken == "" {
		return nil, apierrors.ErrMissingServerToken
	}

	c := &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		serverToken: cfg.ServerToken,
		userAgent:   cfg.UserAgent,
		httpClient:  cfg.HTTPClient,
		logger:      zerolog.Nop(),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}
	if cfg.Logger != nil {
		c.logger = *cfg.Logger
	}

	return c, nil
}

// Option configures the API client.
type Option func(*Config)

// WithBaseURL sets the base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = &logger
	}
}

// New creates a Client using functional options.
func New(serverToken string, opts ...Option) (*Client, error) {
	cfg := Config{ServerToken: serverToken}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// BaseURL returns the configured API endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Do performs a single request. body, when non-nil, is encoded as JSON.
// result, when non-nil, receives the decoded JSON response. Non-2xx
// responses are returned as *apierrors.ValidationError and failures to
// complete the exchange as *apierrors.TransportError.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	reqURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set(ServerTokenHeader, c.serverToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("postmark request failed")
		return &apierrors.TransportError{Method: method, URL: reqURL, Err: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	elapsed := time.Since(start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		valErr, err := parseErrorResponse(resp)
		if err != nil {
			return &apierrors.TransportError{Method: method, URL: reqURL, Err: err}
		}
		c.logger.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("error_code", valErr.ErrorCode).
			Dur("duration", elapsed).
			Msg(valErr.Message)
		return valErr
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("postmark request")

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// errorEnvelope is the body Postmark sends with every rejected request.
type errorEnvelope struct {
	ErrorCode int    `json:"ErrorCode"`
	Message   string `json:"Message"`
}

func parseErrorResponse(resp *http.Response) (*apierrors.ValidationError, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return nil, fmt.Errorf("read error response: %w", err)
	}

	valErr := &apierrors.ValidationError{StatusCode: resp.StatusCode}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && (env.ErrorCode != 0 || env.Message != "") {
		valErr.ErrorCode = env.ErrorCode
		valErr.Message = env.Message
		return valErr, nil
	}

	valErr.Message = strings.TrimSpace(string(body))
	if valErr.Message == "" {
		valErr.Message = http.StatusText(resp.StatusCode)
	}
	return valErr, nil
}

// unwrapURLError strips the *url.Error layer added by http.Client.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
