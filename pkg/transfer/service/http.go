package service

import (
	"encoding/json"
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

// RegisterRoutes registers the transfer endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/transactions", apphttp.HandleError(h.createTransfer))
	r.Get("/transactions", apphttp.HandleError(h.listTransactions))
}

func (h *HTTP) createTransfer(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req custody.TransferRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if req.From == "" || req.To == "" || req.Asset == "" {
		return apperrors.BadRequestError(nil, "from_address, to_address and asset are required")
	}

	tx, err := h.service.CreateTransfer(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, "Transaction created", tx)
	return nil
}

func (h *HTTP) listTransactions(w http.ResponseWriter, r *http.Request) error {
	address := r.URL.Query().Get("address")
	if address == "" {
		return apperrors.BadRequestError(nil, "address query parameter is required")
	}

	txs, err := h.service.ListTransactions(r.Context(), address)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, "", txs)
	return nil
}
