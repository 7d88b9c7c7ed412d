package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

func TestServiceError_CategoriesAndStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		cat    Category
		status int
	}{
		{"bad request", BadRequestError(errSentinel, "bad"), CategoryDataError, http.StatusBadRequest},
		{"not found", ResourceNotFoundError(errSentinel, "missing"), CategoryResourceNotFound, http.StatusNotFound},
		{"conflict", ConflictError(errSentinel, "dup"), CategoryDataConflict, http.StatusConflict},
		{"unprocessable", UnprocessableError(errSentinel, "broke"), CategoryUnprocessable, http.StatusUnprocessableEntity},
		{"dependency", DependencyError(errSentinel, "node down"), CategoryDependencyFailure, http.StatusBadGateway},
		{"unauthorized", UnAuthorizedError(errSentinel, "no token"), CategoryUnauthorized, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Is(tt.err, tt.cat))
			assert.True(t, errors.Is(tt.err, errSentinel))

			var svcErr *ServiceError
			assert.True(t, errors.As(tt.err, &svcErr))
			assert.Equal(t, tt.status, svcErr.StatusCode())
		})
	}
}

func TestIs_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("dispatch cycle: %w", UnprocessableError(errSentinel, "insufficient funds"))
	assert.True(t, Is(err, CategoryUnprocessable))
	assert.False(t, Is(err, CategoryDataError))
}

func TestIsInternalError(t *testing.T) {
	assert.False(t, IsInternalError(BadRequestError(nil, "x")))
	assert.False(t, IsInternalError(UnprocessableError(nil, "x")))
	assert.True(t, IsInternalError(DependencyError(nil, "x")))
	assert.True(t, IsInternalError(errors.New("plain")))
}

func TestServiceError_UnknownCategory(t *testing.T) {
	err := &ServiceError{Category: Category(99), Message: "odd"}
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode())
	assert.Equal(t, "CategoryGeneralError", err.Category.String())
	assert.Equal(t, "odd", err.Error())
}

func TestServiceError_NilErrGetsFallback(t *testing.T) {
	err := BadRequestError(nil, "amount is required")
	assert.EqualError(t, err, "bad request: amount is required")
	assert.True(t, Is(err, CategoryDataError))
}
