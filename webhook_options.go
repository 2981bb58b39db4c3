package postmark

import "github.com/postmark-go/client-go/internal/api"

// webhookCreateConfig holds configuration for creating a webhook configuration.
type webhookCreateConfig struct {
	messageStream string
	httpAuth      *HTTPAuth
	httpHeaders   []HTTPHeader
	triggers      *WebhookTriggers
}

// webhookUpdateConfig holds configuration for editing a webhook configuration.
type webhookUpdateConfig struct {
	url         *string
	httpAuth    *HTTPAuth
	httpHeaders []HTTPHeader
	setHeaders  bool
	triggers    *WebhookTriggers
}

// webhookListConfig holds configuration for listing webhook configurations.
type webhookListConfig struct {
	messageStream string
}

// WebhookCreateOption configures webhook creation.
type WebhookCreateOption func(*webhookCreateConfig)

// WebhookUpdateOption configures webhook edits.
type WebhookUpdateOption func(*webhookUpdateConfig)

// WebhookListOption configures webhook listing.
type WebhookListOption func(*webhookListConfig)

// Create options

// WithMessageStream sets the message stream the webhook applies to.
// When omitted the service uses the default transactional stream, "outbound".
func WithMessageStream(stream string) WebhookCreateOption {
	return func(c *webhookCreateConfig) {
		c.messageStream = stream
	}
}

// WithHTTPAuth sets basic-auth credentials for webhook calls.
func WithHTTPAuth(username, password string) WebhookCreateOption {
	return func(c *webhookCreateConfig) {
		c.httpAuth = &HTTPAuth{Username: username, Password: password}
	}
}

// WithHTTPHeaders sets custom headers for webhook calls.
func WithHTTPHeaders(headers ...HTTPHeader) WebhookCreateOption {
	return func(c *webhookCreateConfig) {
		c.httpHeaders = headers
	}
}

// WithTriggers selects the events that fire the webhook. Kinds left nil
// are disabled.
func WithTriggers(triggers *WebhookTriggers) WebhookCreateOption {
	return func(c *webhookCreateConfig) {
		c.triggers = triggers
	}
}

// Update options

// WithUpdateURL replaces the webhook URL.
func WithUpdateURL(url string) WebhookUpdateOption {
	return func(c *webhookUpdateConfig) {
		c.url = &url
	}
}

// WithUpdateHTTPAuth replaces the basic-auth credentials.
func WithUpdateHTTPAuth(username, password string) WebhookUpdateOption {
	return func(c *webhookUpdateConfig) {
		c.httpAuth = &HTTPAuth{Username: username, Password: password}
	}
}

// WithUpdateHTTPHeaders replaces the custom headers. Calling it with no
// headers removes all of them.
func WithUpdateHTTPHeaders(headers ...HTTPHeader) WebhookUpdateOption {
	return func(c *webhookUpdateConfig) {
		c.httpHeaders = headers
		c.setHeaders = true
	}
}

// WithUpdateTriggers replaces the settings of every non-nil trigger kind.
// Kinds left nil keep their current settings.
func WithUpdateTriggers(triggers *WebhookTriggers) WebhookUpdateOption {
	return func(c *webhookUpdateConfig) {
		c.triggers = triggers
	}
}

// List options

// WithListMessageStream restricts the listing to one message stream.
func WithListMessageStream(stream string) WebhookListOption {
	return func(c *webhookListConfig) {
		c.messageStream = stream
	}
}

// buildCreateRequest builds an API request from create options.
func buildCreateRequest(url string, opts []WebhookCreateOption) *api.CreateWebhookRequest {
	cfg := &webhookCreateConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	req := &api.CreateWebhookRequest{
		URL:           url,
		MessageStream: cfg.messageStream,
		HTTPAuth:      httpAuthToDTO(cfg.httpAuth),
		Triggers:      triggersToDTO(cfg.triggers),
	}
	if len(cfg.httpHeaders) > 0 {
		req.HTTPHeaders = headersToDTO(cfg.httpHeaders)
	}

	return req
}

// buildUpdateRequest builds an API request from update options.
func buildUpdateRequest(opts []WebhookUpdateOption) *api.UpdateWebhookRequest {
	cfg := &webhookUpdateConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	req := &api.UpdateWebhookRequest{
		URL:      cfg.url,
		HTTPAuth: httpAuthToDTO(cfg.httpAuth),
		Triggers: triggersToDTO(cfg.triggers),
	}
	if cfg.setHeaders {
		headers := headersToDTO(cfg.httpHeaders)
		req.HTTPHeaders = &headers
	}

	return req
}

func buildListConfig(opts []WebhookListOption) *webhookListConfig {
	cfg := &webhookListConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
