package service

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/kevinbg012/mb-crypto-challenge/pkg/app/errors"
	apphttp "github.com/kevinbg012/mb-crypto-challenge/pkg/app/http"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the deposit endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/transactions/validate", apphttp.HandleError(h.validate))
	r.Get("/transactions/history", apphttp.HandleError(h.history))
}

func (h *HTTP) validate(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req custody.ValidateDepositRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if req.Hash == "" {
		return apperrors.BadRequestError(nil, "transaction_hash is required")
	}

	history, err := h.service.ValidateDeposit(r.Context(), req.Hash)
	if errors.Is(err, custody.ErrDuplicateDeposit) {
		apphttp.WriteJSON(w, http.StatusOK, "Transaction already validated, history retrieved successfully", history)
		return nil
	}
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, "Transaction validated and history retrieved successfully", history)
	return nil
}

func (h *HTTP) history(w http.ResponseWriter, r *http.Request) error {
	address := r.URL.Query().Get("address")
	if address == "" {
		return apperrors.BadRequestError(nil, "address query parameter is required")
	}

	history, err := h.service.History(r.Context(), address)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, "Transaction history retrieved successfully", history)
	return nil
}
