package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/kevinbg012/mb-crypto-challenge/pkg/app/errors"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
)

const serviceName = "TransferService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the transfer Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// CreateTransfer wraps the service method with logging
func (ls *logService) CreateTransfer(ctx context.Context, req *custody.TransferRequest) (tx *custody.Transaction, err error) {
	start := time.Now()
	ls.logger.Info("CreateTransfer started",
		zap.String("service", serviceName),
		zap.String("method", "CreateTransfer"),
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.String("asset", req.Asset),
		zap.String("amount", req.Amount.String()),
	)

	defer func() {
		if err != nil {
			logf := ls.logger.Error
			if !apperrors.IsInternalError(err) {
				logf = ls.logger.Warn
			}
			logf("CreateTransfer failed",
				zap.String("service", serviceName),
				zap.String("method", "CreateTransfer"),
				zap.String("from", req.From),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "CreateTransfer"),
			zap.String("transaction_id", tx.ID.String()),
			zap.String("status", string(tx.Status)),
			zap.Duration("duration", time.Since(start)),
		}
		if tx.Hash != nil {
			fields = append(fields, zap.String("transaction_hash", *tx.Hash))
		}
		ls.logger.Info("CreateTransfer completed", fields...)
	}()

	return ls.svc.CreateTransfer(ctx, req)
}

// RunDispatchCycle wraps the service method with logging
func (ls *logService) RunDispatchCycle(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("RunDispatchCycle failed",
				zap.String("service", serviceName),
				zap.String("method", "RunDispatchCycle"),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("RunDispatchCycle completed",
			zap.String("service", serviceName),
			zap.String("method", "RunDispatchCycle"),
			zap.Duration("duration", time.Since(start)),
		)
	}()
	return ls.svc.RunDispatchCycle(ctx)
}

// ListTransactions wraps the service method with logging
func (ls *logService) ListTransactions(ctx context.Context, address string) (txs []*custody.Transaction, err error) {
	defer func() {
		if err != nil {
			ls.logger.Debug("ListTransactions failed",
				zap.String("service", serviceName),
				zap.String("address", address),
				zap.Error(err),
			)
		}
	}()
	return ls.svc.ListTransactions(ctx, address)
}
