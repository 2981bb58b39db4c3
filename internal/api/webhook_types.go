package api

// HTTPAuthDTO holds basic-auth credentials sent with webhook calls.
type HTTPAuthDTO struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// OpenTriggerDTO configures the Open trigger.
type OpenTriggerDTO struct {
	Enabled           bool `json:"Enabled"`
	PostFirstOpenOnly bool `json:"PostFirstOpenOnly"`
}

// EnabledTriggerDTO configures triggers that only carry an Enabled flag.
type EnabledTriggerDTO struct {
	Enabled bool `json:"Enabled"`
}

// ContentTriggerDTO configures triggers that can include message content.
type ContentTriggerDTO struct {
	Enabled        bool `json:"Enabled"`
	IncludeContent bool `json:"IncludeContent"`
}

// TriggersDTO is the Triggers sub-object. A nil kind is omitted from the
// payload; on edit the service keeps its current settings for that kind.
type TriggersDTO struct {
	Open               *OpenTriggerDTO    `json:"Open,omitempty"`
	Click              *EnabledTriggerDTO `json:"Click,omitempty"`
	Delivery           *EnabledTriggerDTO `json:"Delivery,omitempty"`
	Bounce             *ContentTriggerDTO `json:"Bounce,omitempty"`
	SpamComplaint      *ContentTriggerDTO `json:"SpamComplaint,omitempty"`
	SubscriptionChange *EnabledTriggerDTO `json:"SubscriptionChange,omitempty"`
}

// WebhookDTO represents a webhook configuration from the API.
type WebhookDTO struct {
	ID            int64        `json:"ID"`
	URL           string       `json:"Url"`
	MessageStream string       `json:"MessageStream"`
	HTTPAuth      *HTTPAuthDTO `json:"HttpAuth,omitempty"`
	HTTPHeaders   []HeaderDTO  `json:"HttpHeaders"`
	Triggers      *TriggersDTO `json:"Triggers,omitempty"`
}

// CreateWebhookRequest is the request body for POST /webhooks.
type CreateWebhookRequest struct {
	URL           string       `json:"Url"`
	MessageStream string       `json:"MessageStream,omitempty"`
	HTTPAuth      *HTTPAuthDTO `json:"HttpAuth,omitempty"`
	HTTPHeaders   []HeaderDTO  `json:"HttpHeaders,omitempty"`
	Triggers      *TriggersDTO `json:"Triggers,omitempty"`
}

// UpdateWebhookRequest is the request body for PUT /webhooks/{id}.
// All fields are optional - only provided fields will be updated.
// HTTPHeaders is a pointer so that an empty list can be sent to clear
// the headers.
type UpdateWebhookRequest struct {
	URL         *string      `json:"Url,omitempty"`
	HTTPAuth    *HTTPAuthDTO `json:"HttpAuth,omitempty"`
	HTTPHeaders *[]HeaderDTO `json:"HttpHeaders,omitempty"`
	Triggers    *TriggersDTO `json:"Triggers,omitempty"`
}

// WebhookListResponseDTO represents the response from listing webhooks.
type WebhookListResponseDTO struct {
	Webhooks []*WebhookDTO `json:"Webhooks"`
}
