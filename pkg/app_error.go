package pkg

import "fmt"

// AppError is the error shape returned by HTTP handlers.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	// Reference identifies the payment attempt the error is about, when there is one.
	Reference string
}

// HTTPError is the JSON body written for an AppError. Success is always false so
// clients can branch on the same field as in successful responses.
type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message   string `json:"message"`
	Reference string `json:"reference,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

// WithReference attaches the payment reference shown to the client.
func (e *AppError) WithReference(reference string) *AppError {
	e.Reference = reference
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError never exposes the wrapped error to the client.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Reference: e.Reference}
}
