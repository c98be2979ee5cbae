package responses

// ErrorResponse is returned for rejected input.
type ErrorResponse struct {
	Code          string `json:"code,omitempty"`
	Error         string `json:"error"`
	ErrorInstance error  `json:"-"`
}

// MessageResponse is returned when a lookup fails on the server side.
type MessageResponse struct {
	Message string `json:"message"`
}

const InternalServerErrorMessage = "Internal server error"
