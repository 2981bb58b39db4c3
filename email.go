package postmark

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/postmark-go/client-go/internal/api"
)

// MaxBatchSize is the largest number of messages SendEmailBatch accepts.
const MaxBatchSize = 500

// Header is a custom MIME header added to an outgoing message.
type Header struct {
	Name  string
	Value string
}

// Attachment is a file attached to an outgoing message. Content holds the
// raw bytes; the client encodes them.
type Attachment struct {
	Name        string
	Content     []byte
	ContentType string
	// ContentID makes the attachment addressable inline as cid:ContentID.
	ContentID string
}

// Email is an outgoing message. From and To are required; To, Cc and
// Bcc take comma-separated address lists.
type Email struct {
	From     string
	To       string
	Cc       string
	Bcc      string
	Subject  string
	Tag      string
	HTMLBody string
	TextBody string
	ReplyTo  string
	Headers  []Header
	// TrackOpens overrides the server default when non-nil.
	TrackOpens *bool
	// TrackLinks overrides the server default when non-empty.
	TrackLinks LinkTracking
	Metadata   map[string]string
	// MessageStream defaults to "outbound" on the service side.
	MessageStream string
	Attachments   []Attachment
}

// SendResult is the outcome of sending one message. In a batch, a message
// the service rejected has a non-zero ErrorCode and no MessageID.
type SendResult struct {
	To          string
	SubmittedAt time.Time
	MessageID   string
	ErrorCode   int
	Message     string
}

func emailToDTO(e *Email) *api.EmailRequest {
	req := &api.EmailRequest{
		From:          e.From,
		To:            e.To,
		Cc:            e.Cc,
		Bcc:           e.Bcc,
		Subject:       e.Subject,
		Tag:           e.Tag,
		HTMLBody:      e.HTMLBody,
		TextBody:      e.TextBody,
		ReplyTo:       e.ReplyTo,
		TrackOpens:    e.TrackOpens,
		TrackLinks:    string(e.TrackLinks),
		Metadata:      e.Metadata,
		MessageStream: e.MessageStream,
	}

	for _, h := range e.Headers {
		req.Headers = append(req.Headers, api.HeaderDTO{Name: h.Name, Value: h.Value})
	}
	for _, a := range e.Attachments {
		req.Attachments = append(req.Attachments, api.AttachmentDTO{
			Name:        a.Name,
			Content:     base64.StdEncoding.EncodeToString(a.Content),
			ContentType: a.ContentType,
			ContentID:   a.ContentID,
		})
	}

	return req
}

func sendResultFromDTO(dto *api.SendResultDTO) *SendResult {
	return &SendResult{
		To:          dto.To,
		SubmittedAt: dto.SubmittedAt,
		MessageID:   dto.MessageID,
		ErrorCode:   dto.ErrorCode,
		Message:     dto.Message,
	}
}

// SendEmail sends a single message.
func (c *Client) SendEmail(ctx context.Context, email *Email) (*SendResult, error) {
	if email == nil {
		return nil, fmt.Errorf("email is nil")
	}

	dto, err := c.apiClient.SendEmail(ctx, emailToDTO(email))
	if err != nil {
		return nil, err
	}
	return sendResultFromDTO(dto), nil
}

// SendEmailBatch sends up to MaxBatchSize messages in one request. The
// results are in the order of emails. A message the service rejects does
// not fail the call; check each SendResult's ErrorCode.
func (c *Client) SendEmailBatch(ctx context.Context, emails []*Email) ([]*SendResult, error) {
	if len(emails) > MaxBatchSize {
		return nil, fmt.Errorf("batch of %d messages exceeds maximum of %d", len(emails), MaxBatchSize)
	}

	reqs := make([]*api.EmailRequest, len(emails))
	for i, e := range emails {
		if e == nil {
			return nil, fmt.Errorf("email %d is nil", i)
		}
		reqs[i] = emailToDTO(e)
	}

	dtos, err := c.apiClient.SendEmailBatch(ctx, reqs)
	if err != nil {
		return nil, err
	}

	results := make([]*SendResult, len(dtos))
	for i, dto := range dtos {
		results[i] = sendResultFromDTO(dto)
	}
	return results, nil
}
