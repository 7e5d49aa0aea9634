package errors

// Response is the unified error payload shape returned by the HTTP layer.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code and detail alongside the message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}
