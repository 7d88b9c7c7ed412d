// Package errors classifies service failures so transports can map them to a response.
package errors

import (
	"errors"
	"net/http"
)

// Category groups failures by who has to act on them.
type Category int

const (
	// CategoryNoError marks a successful outcome.
	CategoryNoError Category = iota
	// CategoryDataError is a malformed or invalid request payload or parameter.
	CategoryDataError
	// CategoryUnauthorized is a request without valid credentials.
	CategoryUnauthorized
	// CategoryResourceNotFound is a lookup of something that does not exist.
	CategoryResourceNotFound
	// CategoryDataConflict is a request that collides with data already stored.
	CategoryDataConflict
	// CategoryUnprocessable is a well formed request that cannot be carried out in the current state,
	// for example a transfer that exceeds the available balance.
	CategoryUnprocessable
	// CategoryDependencyFailure is a failing downstream system such as the chain node.
	CategoryDependencyFailure
	// CategoryGeneralError is anything unexpected.
	CategoryGeneralError
)

var categoryNames = map[Category]string{
	CategoryNoError:           "CategoryNoError",
	CategoryDataError:         "CategoryDataError",
	CategoryUnauthorized:      "CategoryUnauthorized",
	CategoryResourceNotFound:  "CategoryResourceNotFound",
	CategoryDataConflict:      "CategoryDataConflict",
	CategoryUnprocessable:     "CategoryUnprocessable",
	CategoryDependencyFailure: "CategoryDependencyFailure",
}

var categoryStatus = map[Category]int{
	CategoryDataError:         http.StatusBadRequest,
	CategoryUnauthorized:      http.StatusUnauthorized,
	CategoryResourceNotFound:  http.StatusNotFound,
	CategoryDataConflict:      http.StatusConflict,
	CategoryUnprocessable:     http.StatusUnprocessableEntity,
	CategoryDependencyFailure: http.StatusBadGateway,
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "CategoryGeneralError"
}

// ServiceError carries a client-facing Message next to the underlying Err that only gets logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

func (err ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode maps the category to an HTTP status.
func (err ServiceError) StatusCode() int {
	if status, ok := categoryStatus[err.Category]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Is reports whether err wraps a ServiceError of category cat.
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err is something the caller cannot fix by changing the request.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category >= CategoryDependencyFailure
	}
	return true
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// ResourceNotFoundError returns message to the client with a 404.
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "resource not found: "+message)
}

// BadRequestError returns message to the client with a 400.
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request: "+message)
}

// UnAuthorizedError returns message to the client with a 401.
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, message, "unauthorized")
}

// ConflictError returns message to the client with a 409.
func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, message, "conflict")
}

// UnprocessableError returns message to the client with a 422.
func UnprocessableError(err error, message string) error {
	return newError(CategoryUnprocessable, err, message, "unprocessable: "+message)
}

// DependencyError returns message to the client with a 502.
func DependencyError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, message, "dependency failure: "+message)
}
