package postmark

import (
	"github.com/postmark-go/client-go/internal/api"
)

// HTTPAuth holds basic-auth credentials Postmark sends with each webhook call.
type HTTPAuth struct {
	Username string
	Password string
}

// HTTPHeader is a custom header Postmark sends with each webhook call.
type HTTPHeader struct {
	Name  string
	Value string
}

// OpenTrigger configures webhook calls for message opens.
type OpenTrigger struct {
	Enabled bool
	// PostFirstOpenOnly restricts calls to the first open of each message.
	PostFirstOpenOnly bool
}

// ClickTrigger configures webhook calls for link clicks.
type ClickTrigger struct {
	Enabled bool
}

// DeliveryTrigger configures webhook calls for successful deliveries.
type DeliveryTrigger struct {
	Enabled bool
}

// BounceTrigger configures webhook calls for bounces.
type BounceTrigger struct {
	Enabled bool
	// IncludeContent adds the full bounced message to the payload.
	IncludeContent bool
}

// SpamComplaintTrigger configures webhook calls for spam complaints.
type SpamComplaintTrigger struct {
	Enabled bool
	// IncludeContent adds the full complained-about message to the payload.
	IncludeContent bool
}

// SubscriptionChangeTrigger configures webhook calls for suppression changes.
type SubscriptionChangeTrigger struct {
	Enabled bool
}

// WebhookTriggers selects the events a webhook configuration reacts to.
//
// When sent with a create or edit, a nil kind is left out of the request
// and the service keeps its current setting for that kind (disabled on
// create). A non-nil kind replaces that kind's settings as a whole, so
// any flag left false is disabled.
//
// Configurations returned by the client always have every kind set.
type WebhookTriggers struct {
	Open               *OpenTrigger
	Click              *ClickTrigger
	Delivery           *DeliveryTrigger
	Bounce             *BounceTrigger
	SpamComplaint      *SpamComplaintTrigger
	SubscriptionChange *SubscriptionChangeTrigger
}

// WebhookConfiguration is a callback URL registered for a message stream
// together with the events that trigger it.
type WebhookConfiguration struct {
	// ID is assigned by the service on creation.
	ID int64
	// URL is the endpoint Postmark calls.
	URL string
	// MessageStream is the stream the configuration applies to, e.g. "outbound".
	MessageStream string
	// HTTPAuth is nil when no credentials are configured.
	HTTPAuth *HTTPAuth
	// HTTPHeaders are sent with every call, in order.
	HTTPHeaders []HTTPHeader
	Triggers    *WebhookTriggers
}

// WebhookConfigurationList is the result of listing webhook configurations.
type WebhookConfigurationList struct {
	// Webhooks is in the order the service returned them.
	Webhooks []*WebhookConfiguration
}

// webhookFromDTO converts an API DTO to a public WebhookConfiguration.
func webhookFromDTO(dto *api.WebhookDTO) *WebhookConfiguration {
	if dto == nil {
		return nil
	}

	wh := &WebhookConfiguration{
		ID:            dto.ID,
		URL:           dto.URL,
		MessageStream: dto.MessageStream,
		HTTPHeaders:   headersFromDTO(dto.HTTPHeaders),
		Triggers:      triggersFromDTO(dto.Triggers),
	}
	if dto.HTTPAuth != nil {
		wh.HTTPAuth = &HTTPAuth{
			Username: dto.HTTPAuth.Username,
			Password: dto.HTTPAuth.Password,
		}
	}

	return wh
}

func webhookListFromDTO(dto *api.WebhookListResponseDTO) *WebhookConfigurationList {
	list := &WebhookConfigurationList{
		Webhooks: make([]*WebhookConfiguration, 0, len(dto.Webhooks)),
	}
	for _, w := range dto.Webhooks {
		list.Webhooks = append(list.Webhooks, webhookFromDTO(w))
	}
	return list
}

func headersFromDTO(dtos []api.HeaderDTO) []HTTPHeader {
	headers := make([]HTTPHeader, len(dtos))
	for i, h := range dtos {
		headers[i] = HTTPHeader{Name: h.Name, Value: h.Value}
	}
	return headers
}

func headersToDTO(headers []HTTPHeader) []api.HeaderDTO {
	dtos := make([]api.HeaderDTO, len(headers))
	for i, h := range headers {
		dtos[i] = api.HeaderDTO{Name: h.Name, Value: h.Value}
	}
	return dtos
}

func httpAuthToDTO(auth *HTTPAuth) *api.HTTPAuthDTO {
	if auth == nil {
		return nil
	}
	return &api.HTTPAuthDTO{
		Username: auth.Username,
		Password: auth.Password,
	}
}

// triggersFromDTO fills in every kind so callers can read flags directly.
func triggersFromDTO(dto *api.TriggersDTO) *WebhookTriggers {
	if dto == nil {
		dto = &api.TriggersDTO{}
	}

	t := &WebhookTriggers{
		Open:               &OpenTrigger{},
		Click:              &ClickTrigger{},
		Delivery:           &DeliveryTrigger{},
		Bounce:             &BounceTrigger{},
		SpamComplaint:      &SpamComplaintTrigger{},
		SubscriptionChange: &SubscriptionChangeTrigger{},
	}
	if dto.Open != nil {
		t.Open.Enabled = dto.Open.Enabled
		t.Open.PostFirstOpenOnly = dto.Open.PostFirstOpenOnly
	}
	if dto.Click != nil {
		t.Click.Enabled = dto.Click.Enabled
	}
	if dto.Delivery != nil {
		t.Delivery.Enabled = dto.Delivery.Enabled
	}
	if dto.Bounce != nil {
		t.Bounce.Enabled = dto.Bounce.Enabled
		t.Bounce.IncludeContent = dto.Bounce.IncludeContent
	}
	if dto.SpamComplaint != nil {
		t.SpamComplaint.Enabled = dto.SpamComplaint.Enabled
		t.SpamComplaint.IncludeContent = dto.SpamComplaint.IncludeContent
	}
	if dto.SubscriptionChange != nil {
		t.SubscriptionChange.Enabled = dto.SubscriptionChange.Enabled
	}
	return t
}

// triggersToDTO keeps nil kinds nil so they are left out of the request.
func triggersToDTO(t *WebhookTriggers) *api.TriggersDTO {
	if t == nil {
		return nil
	}

	dto := &api.TriggersDTO{}
	if t.Open != nil {
		dto.Open = &api.OpenTriggerDTO{
			Enabled:           t.Open.Enabled,
			PostFirstOpenOnly: t.Open.PostFirstOpenOnly,
		}
	}
	if t.Click != nil {
		dto.Click = &api.EnabledTriggerDTO{Enabled: t.Click.Enabled}
	}
	if t.Delivery != nil {
		dto.Delivery = &api.EnabledTriggerDTO{Enabled: t.Delivery.Enabled}
	}
	if t.Bounce != nil {
		dto.Bounce = &api.ContentTriggerDTO{
			Enabled:        t.Bounce.Enabled,
			IncludeContent: t.Bounce.IncludeContent,
		}
	}
	if t.SpamComplaint != nil {
		dto.SpamComplaint = &api.ContentTriggerDTO{
			Enabled:        t.SpamComplaint.Enabled,
			IncludeContent: t.SpamComplaint.IncludeContent,
		}
	}
	if t.SubscriptionChange != nil {
		dto.SubscriptionChange = &api.EnabledTriggerDTO{Enabled: t.SubscriptionChange.Enabled}
	}
	return dto
}
