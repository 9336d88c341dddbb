package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "INVALID_TRANSITION"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the envelope the error handler writes. Status is "fail" for
// client errors and "error" for server errors, mirroring the success
// envelope's "success".
type Response struct {
	Status  string     `json:"status"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// StatusForHTTPCode maps an HTTP status code to the envelope status word.
func StatusForHTTPCode(code int) string {
	if code >= 500 {
		return "error"
	}

	return "fail"
}
