package pkg

import "fmt"

// AppError is a domain error enriched with the HTTP mapping handlers use to
// respond. Use cases never build these; handlers translate sentinel errors
// into AppErrors at the edge.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    interface{}
}

// HTTPError is the JSON body written for a failed request.
type HTTPError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails attaches structured context (e.g. the incomplete milestone
// labels blocking a close) to the response body.
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}
