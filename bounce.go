package postmark

import (
	"context"
	"time"

	"github.com/postmark-go/client-go/internal/api"
)

// BounceType is the classification Postmark assigns to a bounce.
type BounceType string

// Common bounce types.
const (
	BounceTypeHardBounce          BounceType = "HardBounce"
	BounceTypeTransient           BounceType = "Transient"
	BounceTypeUnsubscribe         BounceType = "Unsubscribe"
	BounceTypeSubscribe           BounceType = "Subscribe"
	BounceTypeAutoResponder       BounceType = "AutoResponder"
	BounceTypeAddressChange       BounceType = "AddressChange"
	BounceTypeDNSError            BounceType = "DnsError"
	BounceTypeSpamNotice          BounceType = "SpamNotification"
	BounceTypeSoftBounce          BounceType = "SoftBounce"
	BounceTypeSpamComplaint       BounceType = "SpamComplaint"
	BounceTypeManuallyDeactivated BounceType = "ManuallyDeactivated"
	BounceTypeBlocked             BounceType = "Blocked"
)

const defaultBounceCount = 100

// Bounce is a message that could not be delivered.
type Bounce struct {
	ID            int64
	Type          BounceType
	TypeCode      int
	Name          string
	Tag           string
	MessageID     string
	ServerID      int64
	MessageStream string
	Description   string
	Details       string
	Email         string
	From          string
	BouncedAt     time.Time
	DumpAvailable bool
	Inactive      bool
	CanActivate   bool
	Subject       string
	// Content is only populated by GetBounce.
	Content string
}

// BounceList is one page of bounces.
type BounceList struct {
	TotalCount int
	Bounces    []*Bounce
}

// BounceCount is the number of bounces of one type.
type BounceCount struct {
	Name  string
	Count int
	Type  BounceType
}

// DeliveryStats summarises inactive addresses and bounces by type.
type DeliveryStats struct {
	InactiveMails int
	Bounces       []BounceCount
}

// ActivateBounceResult is the outcome of reactivating a bounced address.
type ActivateBounceResult struct {
	Message string
	Bounce  *Bounce
}

// BounceListOption filters and pages GetBounces.
type BounceListOption func(*api.BounceQuery)

// WithBounceCount sets the page size. Default: 100
func WithBounceCount(count int) BounceListOption {
	return func(q *api.BounceQuery) {
		q.Count = count
	}
}

// WithBounceOffset sets how many bounces to skip.
func WithBounceOffset(offset int) BounceListOption {
	return func(q *api.BounceQuery) {
		q.Offset = offset
	}
}

// WithBounceType restricts the list to one bounce type.
func WithBounceType(t BounceType) BounceListOption {
	return func(q *api.BounceQuery) {
		q.Type = string(t)
	}
}

// WithBounceInactive restricts the list to bounces that did or did not
// deactivate the recipient.
func WithBounceInactive(inactive bool) BounceListOption {
	return func(q *api.BounceQuery) {
		q.Inactive = &inactive
	}
}

// WithBounceEmailFilter restricts the list to recipients containing filter.
func WithBounceEmailFilter(filter string) BounceListOption {
	return func(q *api.BounceQuery) {
		q.EmailFilter = filter
	}
}

// WithBounceTag restricts the list to one message tag.
func WithBounceTag(tag string) BounceListOption {
	return func(q *api.BounceQuery) {
		q.Tag = tag
	}
}

// WithBounceMessageStream restricts the list to one message stream.
func WithBounceMessageStream(stream string) BounceListOption {
	return func(q *api.BounceQuery) {
		q.MessageStream = stream
	}
}

func bounceFromDTO(dto *api.BounceDTO) *Bounce {
	if dto == nil {
		return nil
	}
	return &Bounce{
		ID:            dto.ID,
		Type:          BounceType(dto.Type),
		TypeCode:      dto.TypeCode,
		Name:          dto.Name,
		Tag:           dto.Tag,
		MessageID:     dto.MessageID,
		ServerID:      dto.ServerID,
		MessageStream: dto.MessageStream,
		Description:   dto.Description,
		Details:       dto.Details,
		Email:         dto.Email,
		From:          dto.From,
		BouncedAt:     dto.BouncedAt,
		DumpAvailable: dto.DumpAvailable,
		Inactive:      dto.Inactive,
		CanActivate:   dto.CanActivate,
		Subject:       dto.Subject,
		Content:       dto.Content,
	}
}

// GetDeliveryStats returns the number of inactive addresses and bounces by type.
func (c *Client) GetDeliveryStats(ctx context.Context) (*DeliveryStats, error) {
	dto, err := c.apiClient.GetDeliveryStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DeliveryStats{
		InactiveMails: dto.InactiveMails,
		Bounces:       make([]BounceCount, len(dto.Bounces)),
	}
	for i, b := range dto.Bounces {
		stats.Bounces[i] = BounceCount{Name: b.Name, Count: b.Count, Type: BounceType(b.Type)}
	}
	return stats, nil
}

// GetBounces returns one page of bounces, newest first.
func (c *Client) GetBounces(ctx context.Context, opts ...BounceListOption) (*BounceList, error) {
	q := api.BounceQuery{Count: defaultBounceCount}
	for _, opt := range opts {
		opt(&q)
	}

	dto, err := c.apiClient.GetBounces(ctx, q)
	if err != nil {
		return nil, err
	}

	list := &BounceList{
		TotalCount: dto.TotalCount,
		Bounces:    make([]*Bounce, 0, len(dto.Bounces)),
	}
	for _, b := range dto.Bounces {
		list.Bounces = append(list.Bounces, bounceFromDTO(b))
	}
	return list, nil
}

// GetBounce returns a single bounce, including the bounced message content.
func (c *Client) GetBounce(ctx context.Context, id int64) (*Bounce, error) {
	dto, err := c.apiClient.GetBounce(ctx, id)
	if err != nil {
		return nil, err
	}
	return bounceFromDTO(dto), nil
}

// ActivateBounce reactivates the recipient of a bounce so it can be sent
// to again. Only bounces with CanActivate set can be activated.
func (c *Client) ActivateBounce(ctx context.Context, id int64) (*ActivateBounceResult, error) {
	dto, err := c.apiClient.ActivateBounce(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ActivateBounceResult{
		Message: dto.Message,
		Bounce:  bounceFromDTO(dto.Bounce),
	}, nil
}
