package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/deposit/service/mocks"
)

func newDepositTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestDepositHTTP_Validate(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ValidateDeposit(mock.Anything, depositHash).Return([]*custody.History{{
		Hash:      depositHash,
		ToAddress: managed.Hex(),
		Asset:     "USDC",
		Amount:    decimal.RequireFromString("12.5"),
	}}, nil).Once()
	handler := newDepositTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/transactions/validate",
		bytes.NewBufferString(`{"transaction_hash":"`+depositHash+`"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Status string `json:"status"`
		Data   []struct {
			Hash   string `json:"transaction_hash"`
			Amount string `json:"amount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "success", got.Status)
	require.Len(t, got.Data, 1)
	assert.Equal(t, "12.5", got.Data[0].Amount)
}

func TestDepositHTTP_ValidateErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{name: "invalid json", body: "{", wantCode: http.StatusBadRequest},
		{name: "missing hash", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "not valid", body: `{"transaction_hash":"` + depositHash + `"}`, err: custody.ValidationError("transaction is not valid"), wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewService(t)
			if tt.err != nil {
				svc.EXPECT().ValidateDeposit(mock.Anything, depositHash).Return(nil, tt.err).Once()
			}
			handler := newDepositTestServer(svc)

			req := httptest.NewRequest(http.MethodPost, "/transactions/validate", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestDepositHTTP_ValidateAlreadyRecorded(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ValidateDeposit(mock.Anything, depositHash).Return([]*custody.History{{
		Hash:      depositHash,
		ToAddress: managed.Hex(),
		Asset:     "ETH",
		Amount:    decimal.RequireFromString("0.25"),
	}}, custody.DuplicateDepositError(depositHash)).Once()
	handler := newDepositTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/transactions/validate",
		bytes.NewBufferString(`{"transaction_hash":"`+depositHash+`"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    []struct {
			Hash   string `json:"transaction_hash"`
			Amount string `json:"amount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "success", got.Status)
	assert.Contains(t, got.Message, "already validated")
	require.Len(t, got.Data, 1)
	assert.Equal(t, depositHash, got.Data[0].Hash)
	assert.Equal(t, "0.25", got.Data[0].Amount)
}

func TestDepositHTTP_History(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().History(mock.Anything, managed.Hex()).Return([]*custody.History{}, nil).Once()
	handler := newDepositTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/transactions/history?address="+managed.Hex(), nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/transactions/history", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
