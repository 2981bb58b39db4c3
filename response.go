package postmark

import "github.com/postmark-go/client-go/internal/api"

// Status classifies a Response.
type Status int

const (
	// StatusSuccess means the service reported ErrorCode 0.
	StatusSuccess Status = iota
	// StatusUserError means the service reported a non-zero ErrorCode.
	StatusUserError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusUserError:
		return "UserError"
	}
	return "Unknown"
}

// Response is the acknowledgement returned by operations that have no
// resource to return, such as deleting a webhook configuration.
type Response struct {
	ErrorCode int
	Message   string
}

// Status reports whether the service accepted the request.
func (r *Response) Status() Status {
	if r.ErrorCode == 0 {
		return StatusSuccess
	}
	return StatusUserError
}

func responseFromDTO(dto *api.StatusResponseDTO) *Response {
	if dto == nil {
		return &Response{}
	}
	return &Response{
		ErrorCode: dto.ErrorCode,
		Message:   dto.Message,
	}
}
