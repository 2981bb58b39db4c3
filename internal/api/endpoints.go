package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetServer retrieves the server the token belongs to.
func (c *Client) GetServer(ctx context.Context) (*ServerDTO, error) {
	var result ServerDTO
	if err := c.Do(ctx, http.MethodGet, "/server", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EditServer updates the server the token belongs to.
func (c *Client) EditServer(ctx context.Context, req *EditServerRequest) (*ServerDTO, error) {
	var result ServerDTO
	if err := c.Do(ctx, http.MethodPut, "/server", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendEmail sends a single message.
func (c *Client) SendEmail(ctx context.Context, req *EmailRequest) (*SendResultDTO, error) {
	var result SendResultDTO
	if err := c.Do(ctx, http.MethodPost, "/email", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SendEmailBatch sends up to 500 messages in one call. Rejections of
// individual messages are reported per element, not as an error.
func (c *Client) SendEmailBatch(ctx context.Context, reqs []*EmailRequest) ([]*SendResultDTO, error) {
	var result []*SendResultDTO
	if err := c.Do(ctx, http.MethodPost, "/email/batch", reqs, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetDeliveryStats returns bounce counts by type.
func (c *Client) GetDeliveryStats(ctx context.Context) (*DeliveryStatsDTO, error) {
	var result DeliveryStatsDTO
	if err := c.Do(ctx, http.MethodGet, "/deliverystats", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBounces lists bounces matching the query.
func (c *Client) GetBounces(ctx context.Context, q BounceQuery) (*BounceListResponseDTO, error) {
	params := url.Values{}
	params.Set("count", strconv.Itoa(q.Count))
	params.Set("offset", strconv.Itoa(q.Offset))
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	if q.Inactive != nil {
		params.Set("inactive", strconv.FormatBool(*q.Inactive))
	}
	if q.EmailFilter != "" {
		params.Set("emailFilter", q.EmailFilter)
	}
	if q.Tag != "" {
		params.Set("tag", q.Tag)
	}
	if q.MessageStream != "" {
		params.Set("messagestream", q.MessageStream)
	}

	var result BounceListResponseDTO
	if err := c.Do(ctx, http.MethodGet, "/bounces?"+params.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBounce returns a single bounce by ID.
func (c *Client) GetBounce(ctx context.Context, bounceID int64) (*BounceDTO, error) {
	var result BounceDTO
	path := fmt.Sprintf("/bounces/%d", bounceID)
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ActivateBounce reactivates the recipient of a bounce.
func (c *Client) ActivateBounce(ctx context.Context, bounceID int64) (*ActivateBounceResponseDTO, error) {
	var result ActivateBounceResponseDTO
	path := fmt.Sprintf("/bounces/%d/activate", bounceID)
	if err := c.Do(ctx, http.MethodPut, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
