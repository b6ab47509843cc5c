package dto

type APIErrorResponse struct {
	Message   string            `json:"message"`
	ErrorCode ErrorCode         `json:"error_code,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

type ErrorCode string

const (
	EmailDomainNotAllowed ErrorCode = "email_domain_not_allowed"
	InvalidServiceTicket  ErrorCode = "invalid_service_ticket"
)
