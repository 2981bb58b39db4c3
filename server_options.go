package postmark

import "github.com/postmark-go/client-go/internal/api"

// serverEditConfig holds the fields set for a server edit. A nil field is
// left out of the request.
type serverEditConfig struct {
	name                 *string
	color                *ServerColor
	rawEmailEnabled      *bool
	smtpAPIActivated     *bool
	inboundHookURL       *string
	bounceHookURL        *string
	openHookURL          *string
	postFirstOpenOnly    *bool
	trackOpens           *bool
	trackLinks           *LinkTracking
	inboundDomain        *string
	inboundSpamThreshold *int
	clickHookURL         *string
	deliveryHookURL      *string
}

// ServerEditOption sets one field of a server edit.
type ServerEditOption func(*serverEditConfig)

// WithServerName sets the server name.
func WithServerName(name string) ServerEditOption {
	return func(c *serverEditConfig) {
		c.name = &name
	}
}

// WithServerColor sets the server color.
func WithServerColor(color ServerColor) ServerEditOption {
	return func(c *serverEditConfig) {
		c.color = &color
	}
}

// WithRawEmailEnabled toggles inclusion of raw email content in inbound webhooks.
func WithRawEmailEnabled(enabled bool) ServerEditOption {
	return func(c *serverEditConfig) {
		c.rawEmailEnabled = &enabled
	}
}

// WithSMTPAPIActivated toggles SMTP sending for the server.
func WithSMTPAPIActivated(activated bool) ServerEditOption {
	return func(c *serverEditConfig) {
		c.smtpAPIActivated = &activated
	}
}

// WithInboundHookURL sets the inbound webhook URL.
func WithInboundHookURL(url string) ServerEditOption {
	return func(c *serverEditConfig) {
		c.inboundHookURL = &url
	}
}

// WithBounceHookURL sets the bounce webhook URL.
func WithBounceHookURL(url string) ServerEditOption {
	return func(c *serverEditConfig) {
		c.bounceHookURL = &url
	}
}

// WithOpenHookURL sets the open-tracking webhook URL.
func WithOpenHookURL(url string) ServerEditOption {
	return func(c *serverEditConfig) {
		c.openHookURL = &url
	}
}

// WithPostFirstOpenOnly limits open webhooks to the first open of a message.
func WithPostFirstOpenOnly(only bool) ServerEditOption {
	return func(c *serverEditConfig) {
		c.postFirstOpenOnly = &only
	}
}

// WithTrackOpens toggles open tracking by default.
func WithTrackOpens(track bool) ServerEditOption {
	return func(c *serverEditConfig) {
		c.trackOpens = &track
	}
}

// WithTrackLinks sets the default link tracking mode.
func WithTrackLinks(mode LinkTracking) ServerEditOption {
	return func(c *serverEditConfig) {
		c.trackLinks = &mode
	}
}

// WithInboundDomain sets the inbound domain for MX setup.
func WithInboundDomain(domain string) ServerEditOption {
	return func(c *serverEditConfig) {
		c.inboundDomain = &domain
	}
}

// WithInboundSpamThreshold sets the maximum spam score for inbound messages.
func WithInboundSpamThreshold(threshold int) ServerEditOption {
	return func(c *serverEditConfig) {
		c.inboundSpamThreshold = &threshold
	}
}

// WithClickHookURL sets the click webhook URL.
func WithClickHookURL(url string) ServerEditOption {
	return func(c *serverEditConfig) {
		c.clickHookURL = &url
	}
}

// WithDeliveryHookURL sets the delivery webhook URL.
func WithDeliveryHookURL(url string) ServerEditOption {
	return func(c *serverEditConfig) {
		c.deliveryHookURL = &url
	}
}

// buildEditServerRequest builds an API request from edit options.
func buildEditServerRequest(opts []ServerEditOption) *api.EditServerRequest {
	cfg := &serverEditConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	req := &api.EditServerRequest{
		Name:                 cfg.name,
		RawEmailEnabled:      cfg.rawEmailEnabled,
		SMTPAPIActivated:     cfg.smtpAPIActivated,
		InboundHookURL:       cfg.inboundHookURL,
		BounceHookURL:        cfg.bounceHookURL,
		OpenHookURL:          cfg.openHookURL,
		PostFirstOpenOnly:    cfg.postFirstOpenOnly,
		TrackOpens:           cfg.trackOpens,
		InboundDomain:        cfg.inboundDomain,
		InboundSpamThreshold: cfg.inboundSpamThreshold,
		ClickHookURL:         cfg.clickHookURL,
		DeliveryHookURL:      cfg.deliveryHookURL,
	}

	if cfg.color != nil {
		color := string(*cfg.color)
		req.Color = &color
	}
	if cfg.trackLinks != nil {
		mode := string(*cfg.trackLinks)
		req.TrackLinks = &mode
	}

	return req
}
