package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
)

const serviceName = "IssuanceService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the issuance Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// SubmitJob wraps the service method with logging
func (ls *logService) SubmitJob(ctx context.Context, quantity int) (job *custody.AddressJob, err error) {
	start := time.Now()
	ls.logger.Info("SubmitJob started",
		zap.String("service", serviceName),
		zap.String("method", "SubmitJob"),
		zap.Int("quantity", quantity),
	)

	defer func() {
		if err != nil {
			ls.logger.Error("SubmitJob failed",
				zap.String("service", serviceName),
				zap.String("method", "SubmitJob"),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("SubmitJob completed",
			zap.String("service", serviceName),
			zap.String("method", "SubmitJob"),
			zap.String("job_id", job.ID.String()),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.SubmitJob(ctx, quantity)
}

// GetJob wraps the service method with logging
func (ls *logService) GetJob(ctx context.Context, id uuid.UUID) (job *custody.AddressJob, err error) {
	defer func() {
		if err != nil {
			ls.logger.Debug("GetJob failed",
				zap.String("service", serviceName),
				zap.String("job_id", id.String()),
				zap.Error(err),
			)
		}
	}()
	return ls.svc.GetJob(ctx, id)
}

// ListAddresses wraps the service method with logging
func (ls *logService) ListAddresses(ctx context.Context) (addrs []*custody.Address, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("ListAddresses failed",
				zap.String("service", serviceName),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("ListAddresses completed",
			zap.String("service", serviceName),
			zap.Int("count", len(addrs)),
			zap.Duration("duration", time.Since(start)),
		)
	}()
	return ls.svc.ListAddresses(ctx)
}

// RunCycle wraps the service method with logging
func (ls *logService) RunCycle(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("RunCycle failed",
				zap.String("service", serviceName),
				zap.String("method", "RunCycle"),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("RunCycle completed",
			zap.String("service", serviceName),
			zap.String("method", "RunCycle"),
			zap.Duration("duration", time.Since(start)),
		)
	}()
	return ls.svc.RunCycle(ctx)
}
