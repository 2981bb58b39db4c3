package postmark

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// CreateWebhookConfiguration registers a webhook URL and returns the
// created configuration, including its newly assigned ID.
//
// It fails with a *ValidationError if url is missing or malformed, or if
// the message stream does not exist on the server.
func (c *Client) CreateWebhookConfiguration(ctx context.Context, url string, opts ...WebhookCreateOption) (*WebhookConfiguration, error) {
	dto, err := c.apiClient.CreateWebhook(ctx, buildCreateRequest(url, opts))
	if err != nil {
		return nil, err
	}
	return webhookFromDTO(dto), nil
}

// GetWebhookConfiguration returns a webhook configuration by ID. A
// deleted or unknown ID fails with a *ValidationError matching ErrNotFound.
func (c *Client) GetWebhookConfiguration(ctx context.Context, id int64) (*WebhookConfiguration, error) {
	dto, err := c.apiClient.GetWebhook(ctx, id)
	if err != nil {
		return nil, err
	}
	return webhookFromDTO(dto), nil
}

// GetWebhookConfigurations lists webhook configurations in the order the
// service returns them.
func (c *Client) GetWebhookConfigurations(ctx context.Context, opts ...WebhookListOption) (*WebhookConfigurationList, error) {
	cfg := buildListConfig(opts)

	dto, err := c.apiClient.ListWebhooks(ctx, cfg.messageStream)
	if err != nil {
		return nil, err
	}
	return webhookListFromDTO(dto), nil
}

// EditWebhookConfiguration applies a partial update. Fields without an
// option are not sent and keep their current values; see WebhookTriggers
// for how trigger kinds are merged. The message stream cannot be changed.
func (c *Client) EditWebhookConfiguration(ctx context.Context, id int64, opts ...WebhookUpdateOption) (*WebhookConfiguration, error) {
	dto, err := c.apiClient.UpdateWebhook(ctx, id, buildUpdateRequest(opts))
	if err != nil {
		return nil, err
	}
	return webhookFromDTO(dto), nil
}

// DeleteWebhookConfiguration permanently removes a webhook configuration.
// Deleting an ID that no longer exists fails with a *ValidationError.
func (c *Client) DeleteWebhookConfiguration(ctx context.Context, id int64) (*Response, error) {
	dto, err := c.apiClient.DeleteWebhook(ctx, id)
	if err != nil {
		return nil, err
	}
	return responseFromDTO(dto), nil
}

// DeleteAllWebhookConfigurations lists the webhook configurations matching
// opts and deletes them concurrently. It returns how many were deleted.
//
// Every deletion is attempted. Failures are joined into the returned
// error, one entry per configuration that could not be deleted.
func (c *Client) DeleteAllWebhookConfigurations(ctx context.Context, opts ...WebhookListOption) (int, error) {
	list, err := c.GetWebhookConfigurations(ctx, opts...)
	if err != nil {
		return 0, err
	}

	var (
		g       errgroup.Group
		mu      sync.Mutex
		deleted int
		errs    []error
	)
	if c.bulkConcurrency > 0 {
		g.SetLimit(c.bulkConcurrency)
	}

	for _, wh := range list.Webhooks {
		id := wh.ID
		g.Go(func() error {
			_, err := c.DeleteWebhookConfiguration(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.logger.Warn().Err(err).Int64("webhook_id", id).Msg("delete webhook configuration")
				errs = append(errs, fmt.Errorf("delete webhook configuration %d: %w", id, err))
				return nil
			}
			deleted++
			return nil
		})
	}
	_ = g.Wait()

	return deleted, errors.Join(errs...)
}
