package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kevinbg012/mb-crypto-challenge/internal/metrics"
	apperrors "github.com/kevinbg012/mb-crypto-challenge/pkg/app/errors"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/asset"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/auth"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custodystore"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/ethereum"
)

const (
	kindNative = "native"
	kindToken  = "token"
)

// Store is the narrow data-access interface for deposit reconciliation.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	GetAddress(ctx context.Context, address string) (*custody.Address, error)
	GetHistoryByHash(ctx context.Context, hash string) (*custody.History, error)
	CreateHistory(ctx context.Context, h *custody.History) error
	ListHistoryByAddress(ctx context.Context, address string) ([]*custody.History, error)
}

// Chain is the subset of the chain gateway used to verify deposits.
//
//go:generate mockery --name Chain --output mocks --outpkg mocks --filename mock_chain.go --with-expecter
type Chain interface {
	Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	Sender(tx *types.Transaction) (common.Address, error)
	CodeAt(ctx context.Context, account common.Address) ([]byte, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Service defines the interface for deposit reconciliation
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// ValidateDeposit records a confirmed inbound transfer once and returns the credited address's history.
	// A hash that is already recorded yields the existing history together with a DuplicateDepositError.
	ValidateDeposit(ctx context.Context, hash string) ([]*custody.History, error)
	History(ctx context.Context, address string) ([]*custody.History, error)
}

type depositService struct {
	store         Store
	chain         Chain
	registry      *asset.Registry
	confirmations uint64
	logger        *zap.Logger
}

// NewService creates a new deposit reconciliation service
func NewService(store Store, chain Chain, registry *asset.Registry, confirmations uint64, logger *zap.Logger) Service {
	return &depositService{
		store:         store,
		chain:         chain,
		registry:      registry,
		confirmations: confirmations,
		logger:        logger,
	}
}

// credit is the movement a deposit adds to the ledger.
type credit struct {
	kind   string
	from   common.Address
	to     *custody.Address
	asset  string
	amount decimal.Decimal
}

func (s *depositService) ValidateDeposit(ctx context.Context, raw string) ([]*custody.History, error) {
	if !auth.ValidateTxHash(raw) {
		return nil, custody.ValidationError("transaction_hash is not a valid hash")
	}
	hash := common.HexToHash(raw)

	receipt, err := s.confirmedReceipt(ctx, hash)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetHistoryByHash(ctx, hash.Hex())
	switch {
	case err == nil:
		metrics.DepositsValidated.WithLabelValues("unknown", "duplicate").Inc()
		return s.duplicate(ctx, hash, existing.ToAddress)
	case !errors.Is(err, custodystore.ErrHistoryNotFound):
		return nil, fmt.Errorf("failed to check history: %w", err)
	}

	tx, _, err := s.chain.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.ErrNotFound) {
			return nil, custody.ValidationError("transaction is not valid")
		}
		return nil, custody.ChainError(err)
	}
	if tx.To() == nil {
		return nil, custody.ValidationError("transaction is not a transfer")
	}

	c, err := s.classify(ctx, tx, receipt)
	if err != nil {
		return nil, err
	}

	gasPrice := decimal.Zero
	if receipt.EffectiveGasPrice != nil {
		gasPrice = decimal.NewFromBigInt(receipt.EffectiveGasPrice, 0)
	}
	h := &custody.History{
		ID:          uuid.New(),
		Hash:        hash.Hex(),
		FromAddress: c.from.Hex(),
		ToAddress:   c.to.Address,
		Asset:       c.asset,
		Amount:      c.amount,
		Gas:         receipt.GasUsed,
		GasPrice:    gasPrice,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}
	if err := s.store.CreateHistory(ctx, h); err != nil {
		if errors.Is(err, custodystore.ErrDuplicateHistory) {
			metrics.DepositsValidated.WithLabelValues(c.kind, "duplicate").Inc()
			return s.duplicate(ctx, hash, c.to.Address)
		}
		return nil, fmt.Errorf("failed to record deposit: %w", err)
	}
	metrics.DepositsValidated.WithLabelValues(c.kind, "credited").Inc()

	s.logger.Info("Deposit credited",
		zap.String("transaction_hash", h.Hash),
		zap.String("to", h.ToAddress),
		zap.String("asset", h.Asset),
		zap.String("amount", h.Amount.String()))

	history, err := s.store.ListHistoryByAddress(ctx, c.to.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return history, nil
}

// duplicate returns the current history of the address a replayed deposit credited.
func (s *depositService) duplicate(ctx context.Context, hash common.Hash, credited string) ([]*custody.History, error) {
	history, err := s.store.ListHistoryByAddress(ctx, credited)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return history, custody.DuplicateDepositError(hash.Hex())
}

func (s *depositService) History(ctx context.Context, address string) ([]*custody.History, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, custody.ValidationError("address is not a valid address")
	}
	addr, err := s.store.GetAddress(ctx, auth.NormalizeAddress(address))
	if err != nil {
		if errors.Is(err, custodystore.ErrAddressNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "address history not found")
		}
		return nil, fmt.Errorf("failed to get address: %w", err)
	}

	history, err := s.store.ListHistoryByAddress(ctx, addr.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return history, nil
}

// confirmedReceipt returns the receipt of hash when it succeeded and is buried deep enough.
func (s *depositService) confirmedReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	receipt, err := s.chain.Receipt(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.ErrNotFound) {
			return nil, custody.ValidationError("transaction is not valid")
		}
		return nil, custody.ChainError(err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, custody.ValidationError("transaction is not valid")
	}

	head, err := s.chain.BlockNumber(ctx)
	if err != nil {
		return nil, custody.ChainError(err)
	}
	if ethereum.ConfirmationsAt(head, receipt) < s.confirmations {
		return nil, custody.ValidationError("transaction is not valid")
	}
	return receipt, nil
}

// classify decides between a token and a native deposit and resolves the credited address.
func (s *depositService) classify(ctx context.Context, tx *types.Transaction, receipt *types.Receipt) (*credit, error) {
	from, err := s.chain.Sender(tx)
	if err != nil {
		return nil, custody.ValidationError("transaction sender could not be recovered")
	}

	target := *tx.To()
	code, err := s.chain.CodeAt(ctx, target)
	if err != nil {
		return nil, custody.ChainError(err)
	}

	if len(code) > 0 && len(tx.Data()) > 0 {
		token, ok := s.registry.TokenByContract(target)
		if !ok {
			return nil, custody.ValidationError("token not recognized")
		}
		ev, ok := ethereum.FirstTransferFrom(receipt.Logs, token.Contract)
		if !ok {
			return nil, custody.ValidationError("transaction is not a transfer")
		}
		to, err := s.managed(ctx, ev.To)
		if err != nil {
			return nil, err
		}
		return &credit{
			kind:   kindToken,
			from:   from,
			to:     to,
			asset:  token.Symbol(),
			amount: asset.FromMinor(ev.Value, token.Decimals()),
		}, nil
	}

	to, err := s.managed(ctx, target)
	if err != nil {
		return nil, err
	}
	native := s.registry.Native()
	return &credit{
		kind:   kindNative,
		from:   from,
		to:     to,
		asset:  native.Symbol(),
		amount: asset.FromMinor(tx.Value(), native.Decimals()),
	}, nil
}

func (s *depositService) managed(ctx context.Context, addr common.Address) (*custody.Address, error) {
	a, err := s.store.GetAddress(ctx, addr.Hex())
	if err != nil {
		if errors.Is(err, custodystore.ErrAddressNotFound) {
			metrics.DepositsValidated.WithLabelValues("unknown", "rejected").Inc()
			return nil, custody.ValidationError("recipient is not a managed address")
		}
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	return a, nil
}
