package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kevinbg012/mb-crypto-challenge/internal/metrics"
	apperrors "github.com/kevinbg012/mb-crypto-challenge/pkg/app/errors"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custodystore"
)

// maxDrawRounds bounds how often colliding derivation indexes are redrawn before a cycle gives up.
const maxDrawRounds = 5

var ErrIndexExhausted = errors.New("could not draw unused derivation indexes")

// Store is the narrow data-access interface for address issuance.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateJob(ctx context.Context, job *custody.AddressJob) error
	GetJob(ctx context.Context, id uuid.UUID) (*custody.AddressJob, error)
	ClaimOldestPendingJob(ctx context.Context) (*custody.AddressJob, error)
	UpdateJobStatus(ctx context.Context, id uuid.UUID, status custody.JobStatus) error
	CreateAddresses(ctx context.Context, addrs []*custody.Address) error
	UsedIndexes(ctx context.Context, pool custody.Pool, indexes []uint32) ([]uint32, error)
	ListAddresses(ctx context.Context) ([]*custody.Address, error)
}

// Deriver maps a pool index to its address.
//
//go:generate mockery --name Deriver --output mocks --outpkg mocks --filename mock_deriver.go --with-expecter
type Deriver interface {
	DeriveAddress(pool custody.Pool, index uint32) (common.Address, error)
}

// Service defines the interface for address issuance
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	SubmitJob(ctx context.Context, quantity int) (*custody.AddressJob, error)
	GetJob(ctx context.Context, id uuid.UUID) (*custody.AddressJob, error)
	ListAddresses(ctx context.Context) ([]*custody.Address, error)
	// RunCycle completes the oldest pending job, or does nothing when none is pending.
	RunCycle(ctx context.Context) error
}

// IndexSource draws a derivation index.
type IndexSource func() (uint32, error)

// Option configures the issuance service
type Option func(*issuanceService)

// WithIndexSource replaces the crypto/rand index source.
func WithIndexSource(src IndexSource) Option {
	return func(s *issuanceService) {
		s.draw = src
	}
}

type issuanceService struct {
	store   Store
	deriver Deriver
	draw    IndexSource
	logger  *zap.Logger
}

// NewService creates a new address issuance service
func NewService(store Store, deriver Deriver, logger *zap.Logger, opts ...Option) Service {
	s := &issuanceService{
		store:   store,
		deriver: deriver,
		draw:    randomIndex,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func randomIndex() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func (s *issuanceService) SubmitJob(ctx context.Context, quantity int) (*custody.AddressJob, error) {
	if quantity < custody.MinJobQuantity || quantity > custody.MaxJobQuantity {
		return nil, custody.ValidationError(fmt.Sprintf("quantity must be between %d and %d",
			custody.MinJobQuantity, custody.MaxJobQuantity))
	}

	job := &custody.AddressJob{
		ID:       uuid.New(),
		Quantity: quantity,
		Status:   custody.JobPending,
	}
	if err := s.store.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to save address job: %w", err)
	}
	return job, nil
}

func (s *issuanceService) GetJob(ctx context.Context, id uuid.UUID) (*custody.AddressJob, error) {
	job, err := s.store.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, custodystore.ErrJobNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "address job not found")
		}
		return nil, fmt.Errorf("failed to get address job: %w", err)
	}
	return job, nil
}

func (s *issuanceService) ListAddresses(ctx context.Context) ([]*custody.Address, error) {
	addrs, err := s.store.ListAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addrs, nil
}

// RunCycle claims the oldest pending job and issues all of its addresses in one database
// transaction. Any failure rolls back and leaves the job pending for the next cycle.
func (s *issuanceService) RunCycle(ctx context.Context) error {
	var (
		job    *custody.AddressJob
		issued int
	)

	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		job, err = s.store.ClaimOldestPendingJob(ctx)
		if err != nil {
			if errors.Is(err, custodystore.ErrJobNotFound) {
				job = nil
				return nil
			}
			return fmt.Errorf("failed to claim address job: %w", err)
		}

		indexes, err := s.drawIndexes(ctx, job.Quantity)
		if err != nil {
			return err
		}

		addrs := make([]*custody.Address, 0, len(indexes))
		for _, idx := range indexes {
			addr, err := s.deriver.DeriveAddress(custody.PoolUser, idx)
			if err != nil {
				return fmt.Errorf("failed to derive address at index %d: %w", idx, err)
			}
			addrs = append(addrs, &custody.Address{
				ID:              uuid.New(),
				Address:         addr.Hex(),
				Pool:            custody.PoolUser,
				DerivationIndex: idx,
			})
		}

		if err := s.store.CreateAddresses(ctx, addrs); err != nil {
			return fmt.Errorf("failed to save addresses: %w", err)
		}
		if err := s.store.UpdateJobStatus(ctx, job.ID, custody.JobCompleted); err != nil {
			return fmt.Errorf("failed to complete address job: %w", err)
		}
		issued = len(addrs)
		return nil
	})
	if err != nil {
		if job != nil {
			s.logger.Warn("Address job left pending",
				zap.String("job_id", job.ID.String()),
				zap.Int("quantity", job.Quantity),
				zap.Error(err))
		}
		return err
	}

	if job != nil {
		metrics.AddressesIssued.Add(float64(issued))
		s.logger.Info("Address job completed",
			zap.String("job_id", job.ID.String()),
			zap.Int("issued", issued))
	}
	return nil
}

// drawIndexes returns n distinct indexes that are not yet recorded for the user pool.
func (s *issuanceService) drawIndexes(ctx context.Context, n int) ([]uint32, error) {
	picked := make([]uint32, 0, n)
	rejected := make(map[uint32]struct{})

	for round := 0; round < maxDrawRounds; round++ {
		fresh := make([]uint32, 0, n-len(picked))
		for len(picked)+len(fresh) < n {
			idx, err := s.draw()
			if err != nil {
				return nil, fmt.Errorf("failed to draw derivation index: %w", err)
			}
			if _, bad := rejected[idx]; bad || slices.Contains(picked, idx) || slices.Contains(fresh, idx) {
				continue
			}
			fresh = append(fresh, idx)
		}

		used, err := s.store.UsedIndexes(ctx, custody.PoolUser, fresh)
		if err != nil {
			return nil, fmt.Errorf("failed to check derivation indexes: %w", err)
		}
		for _, idx := range used {
			rejected[idx] = struct{}{}
		}
		for _, idx := range fresh {
			if _, bad := rejected[idx]; !bad {
				picked = append(picked, idx)
			}
		}
		if len(picked) == n {
			break
		}
		s.logger.Debug("Derivation index collision, redrawing", zap.Int("collisions", len(used)))
	}

	if len(picked) < n {
		return nil, ErrIndexExhausted
	}
	return picked, nil
}
