package model

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error codes returned in ErrorResponse.Code
const (
	CodeBadRequest       = "bad_request"
	CodeNotConnected     = "not_connected"
	CodeUnsupported      = "unsupported"
	CodeInsufficientFund = "insufficient_funds"
	CodeNotFound         = "not_found"
	CodeUnavailable      = "unavailable"
	CodeInternal         = "internal"
)
