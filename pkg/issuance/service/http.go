package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
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

// RegisterRoutes registers the address endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/address", apphttp.HandleError(h.createJob))
	r.Get("/address", apphttp.HandleError(h.listAddresses))
	r.Get("/address/jobs/{id}", apphttp.HandleError(h.getJob))
}

func (h *HTTP) createJob(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req custody.CreateJobRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	job, err := h.service.SubmitJob(r.Context(), req.Quantity)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, "Address creation job queued", job)
	return nil
}

func (h *HTTP) listAddresses(w http.ResponseWriter, r *http.Request) error {
	addrs, err := h.service.ListAddresses(r.Context())
	if err != nil {
		return err
	}

	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.Address
	}
	apphttp.WriteJSON(w, http.StatusOK, "", out)
	return nil
}

func (h *HTTP) getJob(w http.ResponseWriter, r *http.Request) error {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return apperrors.BadRequestError(err, "invalid job id")
	}

	job, err := h.service.GetJob(r.Context(), id)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, "", job)
	return nil
}
