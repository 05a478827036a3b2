package domain

// ConsultRequest is the body of POST /v1/consult.
type ConsultRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

// ConsultResponse is the reply to a consult request.
type ConsultResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// ErrorResponse is the uniform error body. Code is stable across releases;
// Error is the human-readable message.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
