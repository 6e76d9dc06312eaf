package response

const (
	StatusSuccess       = "success"
	DefaultErrorMessage = "An unexpected error occurred"
)

// ErrorResp is the body of every non-2xx response.
type ErrorResp struct {
	Error string `json:"error"`
}

// StatusResp is the body of acknowledgement style responses.
type StatusResp struct {
	Message string `json:"message,omitempty"`
	Status  string `json:"status"`
}
