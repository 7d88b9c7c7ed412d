// Package http provides the chi-compatible handler adapter and response writers shared by the intake API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/kevinbg012/mb-crypto-challenge/pkg/app/errors"
)

// HandlerFunc is an http handler that reports failure by returning an error.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError adapts a HandlerFunc to http.HandlerFunc, rendering any returned error.
//
// Usage with chi:
//
//	r.Post("/transactions", apphttp.HandleError(h.createTransfer))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// DefaultErrorHandler maps err to a status code and writes an ErrorBody.
// Only ServiceError messages reach the client; anything else is reported as a generic 500.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError
	switch {
	case errors.As(err, &svcErr):
		writeError(w, svcErr.StatusCode(), svcErr.Message)
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "Request timed out")
	default:
		writeError(w, http.StatusInternalServerError, "Unexpected Service Error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&ErrorBody{Error: message, Code: status})
}
