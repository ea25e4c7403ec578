package common

// ErrorResponse represents the error body of JSON endpoints that answer
// with a bare {"error": "..."} object
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}
