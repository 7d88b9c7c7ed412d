package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
)

const serviceName = "DepositService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the deposit Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// ValidateDeposit wraps the service method with logging
func (ls *logService) ValidateDeposit(ctx context.Context, hash string) (history []*custody.History, err error) {
	start := time.Now()
	ls.logger.Info("ValidateDeposit started",
		zap.String("service", serviceName),
		zap.String("method", "ValidateDeposit"),
		zap.String("transaction_hash", hash),
	)

	defer func() {
		if errors.Is(err, custody.ErrDuplicateDeposit) {
			ls.logger.Info("ValidateDeposit already recorded",
				zap.String("service", serviceName),
				zap.String("method", "ValidateDeposit"),
				zap.String("transaction_hash", hash),
				zap.Int("history_rows", len(history)),
				zap.Duration("duration", time.Since(start)),
			)
			return
		}
		if err != nil {
			ls.logger.Warn("ValidateDeposit rejected",
				zap.String("service", serviceName),
				zap.String("method", "ValidateDeposit"),
				zap.String("transaction_hash", hash),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("ValidateDeposit completed",
			zap.String("service", serviceName),
			zap.String("method", "ValidateDeposit"),
			zap.String("transaction_hash", hash),
			zap.Int("history_rows", len(history)),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.ValidateDeposit(ctx, hash)
}

// History wraps the service method with logging
func (ls *logService) History(ctx context.Context, address string) (history []*custody.History, err error) {
	defer func() {
		if err != nil {
			ls.logger.Debug("History failed",
				zap.String("service", serviceName),
				zap.String("address", address),
				zap.Error(err),
			)
		}
	}()
	return ls.svc.History(ctx, address)
}
