package api

import "time"

// ServerDTO is the server record returned by GET and PUT /server.
type ServerDTO struct {
	ID                         int64    `json:"ID"`
	Name                       string   `json:"Name"`
	APITokens                  []string `json:"ApiTokens"`
	Color                      string   `json:"Color"`
	SMTPAPIActivated           bool     `json:"SmtpApiActivated"`
	RawEmailEnabled            bool     `json:"RawEmailEnabled"`
	DeliveryType               string   `json:"DeliveryType"`
	ServerLink                 string   `json:"ServerLink"`
	InboundAddress             string   `json:"InboundAddress"`
	InboundHookURL             string   `json:"InboundHookUrl"`
	BounceHookURL              string   `json:"BounceHookUrl"`
	OpenHookURL                string   `json:"OpenHookUrl"`
	DeliveryHookURL            string   `json:"DeliveryHookUrl"`
	ClickHookURL               string   `json:"ClickHookUrl"`
	PostFirstOpenOnly          bool     `json:"PostFirstOpenOnly"`
	InboundDomain              string   `json:"InboundDomain"`
	InboundHash                string   `json:"InboundHash"`
	InboundSpamThreshold       int      `json:"InboundSpamThreshold"`
	TrackOpens                 bool     `json:"TrackOpens"`
	TrackLinks                 string   `json:"TrackLinks"`
	IncludeBounceContentInHook bool     `json:"IncludeBounceContentInHook"`
	EnableSMTPAPIErrorHooks    bool     `json:"EnableSmtpApiErrorHooks"`
}

// EditServerRequest is the request body for PUT /server.
// All fields are optional - only provided fields will be updated.
type EditServerRequest struct {
	Name                 *string `json:"Name,omitempty"`
	Color                *string `json:"Color,omitempty"`
	RawEmailEnabled      *bool   `json:"RawEmailEnabled,omitempty"`
	SMTPAPIActivated     *bool   `json:"SmtpApiActivated,omitempty"`
	InboundHookURL       *string `json:"InboundHookUrl,omitempty"`
	BounceHookURL        *string `json:"BounceHookUrl,omitempty"`
	OpenHookURL          *string `json:"OpenHookUrl,omitempty"`
	PostFirstOpenOnly    *bool   `json:"PostFirstOpenOnly,omitempty"`
	TrackOpens           *bool   `json:"TrackOpens,omitempty"`
	InboundDomain        *string `json:"InboundDomain,omitempty"`
	InboundSpamThreshold *int    `json:"InboundSpamThreshold,omitempty"`
	TrackLinks           *string `json:"TrackLinks,omitempty"`
	ClickHookURL         *string `json:"ClickHookUrl,omitempty"`
	DeliveryHookURL      *string `json:"DeliveryHookUrl,omitempty"`
}

// StatusResponseDTO is the generic {ErrorCode, Message} body returned by
// operations that have no resource to return.
type StatusResponseDTO struct {
	ErrorCode int    `json:"ErrorCode"`
	Message   string `json:"Message"`
}

// HeaderDTO is a name/value pair used for message and webhook headers.
type HeaderDTO struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

// AttachmentDTO is a base64-encoded message attachment.
type AttachmentDTO struct {
	Name        string `json:"Name"`
	Content     string `json:"Content"`
	ContentType string `json:"ContentType"`
	ContentID   string `json:"ContentID,omitempty"`
}

// EmailRequest is the request body for POST /email and each element of
// POST /email/batch.
type EmailRequest struct {
	From          string            `json:"From"`
	To            string            `json:"To"`
	Cc            string            `json:"Cc,omitempty"`
	Bcc           string            `json:"Bcc,omitempty"`
	Subject       string            `json:"Subject,omitempty"`
	Tag           string            `json:"Tag,omitempty"`
	HTMLBody      string            `json:"HtmlBody,omitempty"`
	TextBody      string            `json:"TextBody,omitempty"`
	ReplyTo       string            `json:"ReplyTo,omitempty"`
	Headers       []HeaderDTO       `json:"Headers,omitempty"`
	TrackOpens    *bool             `json:"TrackOpens,omitempty"`
	TrackLinks    string            `json:"TrackLinks,omitempty"`
	Metadata      map[string]string `json:"Metadata,omitempty"`
	MessageStream string            `json:"MessageStream,omitempty"`
	Attachments   []AttachmentDTO   `json:"Attachments,omitempty"`
}

// SendResultDTO is the response for a single sent message.
type SendResultDTO struct {
	To          string    `json:"To"`
	SubmittedAt time.Time `json:"SubmittedAt"`
	MessageID   string    `json:"MessageID"`
	ErrorCode   int       `json:"ErrorCode"`
	Message     string    `json:"Message"`
}

// BounceDTO is a single bounce record.
type BounceDTO struct {
	ID            int64     `json:"ID"`
	Type          string    `json:"Type"`
	TypeCode      int       `json:"TypeCode"`
	Name          string    `json:"Name"`
	Tag           string    `json:"Tag"`
	MessageID     string    `json:"MessageID"`
	ServerID      int64     `json:"ServerID"`
	MessageStream string    `json:"MessageStream"`
	Description   string    `json:"Description"`
	Details       string    `json:"Details"`
	Email         string    `json:"Email"`
	From          string    `json:"From"`
	BouncedAt     time.Time `json:"BouncedAt"`
	DumpAvailable bool      `json:"DumpAvailable"`
	Inactive      bool      `json:"Inactive"`
	CanActivate   bool      `json:"CanActivate"`
	Subject       string    `json:"Subject"`
	Content       string    `json:"Content,omitempty"`
}

// BounceListResponseDTO is the response for GET /bounces.
type BounceListResponseDTO struct {
	TotalCount int          `json:"TotalCount"`
	Bounces    []*BounceDTO `json:"Bounces"`
}

// BounceCountDTO is one row of the delivery stats summary.
type BounceCountDTO struct {
	Name  string `json:"Name"`
	Count int    `json:"Count"`
	Type  string `json:"Type,omitempty"`
}

// DeliveryStatsDTO is the response for GET /deliverystats.
type DeliveryStatsDTO struct {
	InactiveMails int              `json:"InactiveMails"`
	Bounces       []BounceCountDTO `json:"Bounces"`
}

// ActivateBounceResponseDTO is the response for PUT /bounces/{id}/activate.
type ActivateBounceResponseDTO struct {
	Message string     `json:"Message"`
	Bounce  *BounceDTO `json:"Bounce"`
}

// BounceQuery holds the query parameters for GET /bounces.
type BounceQuery struct {
	Count         int
	Offset        int
	Type          string
	Inactive      *bool
	EmailFilter   string
	Tag           string
	MessageStream string
}
