package postmark

import (
	"context"

	"github.com/postmark-go/client-go/internal/api"
)

// ServerColor is the color label of a server in the Postmark UI.
type ServerColor string

// Server colors.
const (
	ServerColorPurple    ServerColor = "purple"
	ServerColorBlue      ServerColor = "blue"
	ServerColorTurquoise ServerColor = "turquoise"
	ServerColorGreen     ServerColor = "green"
	ServerColorRed       ServerColor = "red"
	ServerColorYellow    ServerColor = "yellow"
	ServerColorGrey      ServerColor = "grey"
	ServerColorOrange    ServerColor = "orange"
)

// LinkTracking selects which message bodies get click tracking.
type LinkTracking string

const (
	// LinkTrackingNone disables link tracking.
	LinkTrackingNone LinkTracking = "None"
	// LinkTrackingHTMLAndText tracks links in both HTML and text bodies.
	LinkTrackingHTMLAndText LinkTracking = "HtmlAndText"
	// LinkTrackingHTMLOnly tracks links in the HTML body only.
	LinkTrackingHTMLOnly LinkTracking = "HtmlOnly"
	// LinkTrackingTextOnly tracks links in the text body only.
	LinkTrackingTextOnly LinkTracking = "TextOnly"
)

// Server is the sending configuration the server token belongs to.
type Server struct {
	ID                         int64
	Name                       string
	APITokens                  []string
	Color                      ServerColor
	SMTPAPIActivated           bool
	RawEmailEnabled            bool
	DeliveryType               string
	ServerLink                 string
	InboundAddress             string
	InboundHookURL             string
	BounceHookURL              string
	OpenHookURL                string
	DeliveryHookURL            string
	ClickHookURL               string
	PostFirstOpenOnly          bool
	InboundDomain              string
	InboundHash                string
	InboundSpamThreshold       int
	TrackOpens                 bool
	TrackLinks                 LinkTracking
	IncludeBounceContentInHook bool
	EnableSMTPAPIErrorHooks    bool
}

func serverFromDTO(dto *api.ServerDTO) *Server {
	return &Server{
		ID:                         dto.ID,
		Name:                       dto.Name,
		APITokens:                  dto.APITokens,
		Color:                      ServerColor(dto.Color),
		SMTPAPIActivated:           dto.SMTPAPIActivated,
		RawEmailEnabled:            dto.RawEmailEnabled,
		DeliveryType:               dto.DeliveryType,
		ServerLink:                 dto.ServerLink,
		InboundAddress:             dto.InboundAddress,
		InboundHookURL:             dto.InboundHookURL,
		BounceHookURL:              dto.BounceHookURL,
		OpenHookURL:                dto.OpenHookURL,
		DeliveryHookURL:            dto.DeliveryHookURL,
		ClickHookURL:               dto.ClickHookURL,
		PostFirstOpenOnly:          dto.PostFirstOpenOnly,
		InboundDomain:              dto.InboundDomain,
		InboundHash:                dto.InboundHash,
		InboundSpamThreshold:       dto.InboundSpamThreshold,
		TrackOpens:                 dto.TrackOpens,
		TrackLinks:                 LinkTracking(dto.TrackLinks),
		IncludeBounceContentInHook: dto.IncludeBounceContentInHook,
		EnableSMTPAPIErrorHooks:    dto.EnableSMTPAPIErrorHooks,
	}
}

// GetServer returns the server the client's token belongs to.
func (c *Client) GetServer(ctx context.Context) (*Server, error) {
	dto, err := c.apiClient.GetServer(ctx)
	if err != nil {
		return nil, err
	}
	return serverFromDTO(dto), nil
}

// EditServer updates the server the client's token belongs to and returns
// the full updated record. Only the fields set through opts are sent;
// everything else keeps its current value.
func (c *Client) EditServer(ctx context.Context, opts ...ServerEditOption) (*Server, error) {
	dto, err := c.apiClient.EditServer(ctx, buildEditServerRequest(opts))
	if err != nil {
		return nil, err
	}
	return serverFromDTO(dto), nil
}
