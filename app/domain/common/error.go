package common

// Error represents a standardized error with code and underlying error
type Error struct {
	Err  error  `json:"-"`
	Code string `json:"code"`
}

// NewError creates a new Error instance from an existing error
func NewError(err error, code string) *Error {
	return &Error{
		Err:  err,
		Code: code,
	}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// GetMessage returns the error message from the underlying error
func (e *Error) GetMessage() string {
	return e.Error()
}

func (e *Error) GetCode() string {
	return e.Code
}
