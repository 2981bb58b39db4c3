package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateWebhook creates a new webhook configuration.
func (c *Client) CreateWebhook(ctx context.Context, req *CreateWebhookRequest) (*WebhookDTO, error) {
	var result WebhookDTO
	if err := c.Do(ctx, http.MethodPost, "/webhooks", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListWebhooks returns all webhook configurations, optionally restricted
// to one message stream.
func (c *Client) ListWebhooks(ctx context.Context, messageStream string) (*WebhookListResponseDTO, error) {
	path := "/webhooks"
	if messageStream != "" {
		path += "?" + url.Values{"MessageStream": {messageStream}}.Encode()
	}

	var result WebhookListResponseDTO
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetWebhook returns a specific webhook configuration by ID.
func (c *Client) GetWebhook(ctx context.Context, webhookID int64) (*WebhookDTO, error) {
	var result WebhookDTO
	path := fmt.Sprintf("/webhooks/%d", webhookID)
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateWebhook updates a webhook configuration.
func (c *Client) UpdateWebhook(ctx context.Context, webhookID int64, req *UpdateWebhookRequest) (*WebhookDTO, error) {
	var result WebhookDTO
	path := fmt.Sprintf("/webhooks/%d", webhookID)
	if err := c.Do(ctx, http.MethodPut, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteWebhook deletes a webhook configuration.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID int64) (*StatusResponseDTO, error) {
	var result StatusResponseDTO
	path := fmt.Sprintf("/webhooks/%d", webhookID)
	if err := c.Do(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
