// Package finalizer resolves broadcast transactions to CONFIRMED or FAILED from their on-chain receipts.
package finalizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kevinbg012/mb-crypto-challenge/internal/metrics"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/config"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custodystore"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/ethereum"
)

// Store provides the ledger operations used during finalization.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	ListTransactionsByStatus(ctx context.Context, status custody.TxStatus) ([]*custody.Transaction, error)
	ClaimTransaction(ctx context.Context, id uuid.UUID, status custody.TxStatus) (*custody.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *custody.Transaction, from custody.TxStatus) error
	HistoryExists(ctx context.Context, hash string) (bool, error)
	CreateHistory(ctx context.Context, h *custody.History) error
}

// Chain provides receipt and head lookups.
//
//go:generate mockery --name Chain --output mocks --outpkg mocks --filename mock_chain.go --with-expecter
type Chain interface {
	Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Finalizer moves STARTED transactions to a terminal state
type Finalizer struct {
	store         Store
	chain         Chain
	confirmations uint64
	stuckAfter    time.Duration
	now           func() time.Time
	logger        *zap.Logger
}

// New creates a new Finalizer
func New(ethCfg *config.EthereumConfig, cfg *config.FinalizerConfig, store Store, chain Chain, logger *zap.Logger) *Finalizer {
	return &Finalizer{
		store:         store,
		chain:         chain,
		confirmations: ethCfg.Confirmations,
		stuckAfter:    cfg.StuckAfter,
		now:           time.Now,
		logger:        logger,
	}
}

// RunCycle inspects every STARTED transaction once. Each row is finalized in its own
// database transaction; a failing row is retried next cycle and does not stop the others.
func (f *Finalizer) RunCycle(ctx context.Context) error {
	rows, err := f.store.ListTransactionsByStatus(ctx, custody.TxStarted)
	if err != nil {
		return fmt.Errorf("failed to list started transactions: %w", err)
	}
	if len(rows) == 0 {
		metrics.StuckTransactions.Set(0)
		return nil
	}

	head, err := f.chain.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to get head block: %w", err)
	}

	var (
		errs                     []error
		confirmed, failed, stuck int
	)
	for _, row := range rows {
		status, err := f.finalize(ctx, row.ID, head)
		if err != nil {
			metrics.ErrorsTotal.WithLabelValues("finalizer", metrics.ClassifyRPCError(err)).Inc()
			f.logger.Warn("Failed to finalize transaction, will retry",
				zap.String("transaction_id", row.ID.String()),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("transaction %s: %w", row.ID, err))
			continue
		}

		switch status {
		case custody.TxConfirmed:
			confirmed++
		case custody.TxFailed:
			failed++
		case custody.TxStarted:
			if f.isStuck(row) {
				stuck++
				f.logger.Warn("Transaction awaiting confirmation past threshold, needs manual review",
					zap.String("transaction_id", row.ID.String()),
					zap.Stringp("transaction_hash", row.Hash),
					zap.Time("started_at", row.UpdatedAt),
					zap.Duration("threshold", f.stuckAfter))
			}
		}
	}
	metrics.StuckTransactions.Set(float64(stuck))

	f.logger.Info("Finalization cycle completed",
		zap.Int("inspected", len(rows)),
		zap.Int("confirmed", confirmed),
		zap.Int("failed", failed),
		zap.Int("stuck", stuck),
		zap.Int("errors", len(errs)))

	return errors.Join(errs...)
}

func (f *Finalizer) isStuck(row *custody.Transaction) bool {
	return f.stuckAfter > 0 && f.now().Sub(row.UpdatedAt) > f.stuckAfter
}

// finalize re-claims one STARTED row and applies the receipt outcome. It returns the
// row's resulting status, or "" when another worker already holds or resolved it.
func (f *Finalizer) finalize(ctx context.Context, id uuid.UUID, head uint64) (custody.TxStatus, error) {
	var result custody.TxStatus

	err := f.store.RunInTx(ctx, func(ctx context.Context) error {
		row, err := f.store.ClaimTransaction(ctx, id, custody.TxStarted)
		if err != nil {
			if errors.Is(err, custodystore.ErrTransactionNotFound) {
				return nil
			}
			return err
		}
		result = custody.TxStarted
		if row.Hash == nil {
			f.logger.Error("Started transaction has no hash", zap.String("transaction_id", row.ID.String()))
			return nil
		}
		hash := common.HexToHash(*row.Hash)

		receipt, err := f.chain.Receipt(ctx, hash)
		switch {
		case errors.Is(err, ethereum.ErrNotFound):
			vanished, err := f.vanished(ctx, hash)
			if err != nil || !vanished {
				return err
			}
			result = custody.TxFailed
			return f.fail(ctx, row, "transaction not found")
		case err != nil:
			return fmt.Errorf("failed to get receipt: %w", err)
		case receipt.Status == types.ReceiptStatusFailed:
			result = custody.TxFailed
			return f.fail(ctx, row, "receipt status failed")
		case ethereum.ConfirmationsAt(head, receipt) >= f.confirmations:
			result = custody.TxConfirmed
			return f.confirm(ctx, row, receipt)
		default:
			return nil
		}
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

// vanished reports whether the node knows nothing about hash.
func (f *Finalizer) vanished(ctx context.Context, hash common.Hash) (bool, error) {
	_, _, err := f.chain.TransactionByHash(ctx, hash)
	if errors.Is(err, ethereum.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get transaction: %w", err)
	}
	return false, nil
}

func (f *Finalizer) fail(ctx context.Context, row *custody.Transaction, reason string) error {
	row.Status = custody.TxFailed
	if err := f.store.UpdateTransaction(ctx, row, custody.TxStarted); err != nil {
		return fmt.Errorf("failed to mark transaction failed: %w", err)
	}

	metrics.TransactionsFinalized.WithLabelValues(string(custody.TxFailed)).Inc()
	f.logger.Warn("Transaction failed on chain",
		zap.String("transaction_id", row.ID.String()),
		zap.Stringp("transaction_hash", row.Hash),
		zap.String("reason", reason),
		zap.NamedError("kind", custody.ErrTerminalChainFailure))
	return nil
}

func (f *Finalizer) confirm(ctx context.Context, row *custody.Transaction, receipt *types.Receipt) error {
	block := receipt.BlockNumber.Uint64()
	row.Status = custody.TxConfirmed
	row.BlockNumber = &block
	if err := f.store.UpdateTransaction(ctx, row, custody.TxStarted); err != nil {
		return fmt.Errorf("failed to mark transaction confirmed: %w", err)
	}

	exists, err := f.store.HistoryExists(ctx, *row.Hash)
	if err != nil {
		return err
	}
	if !exists {
		gasPrice := decimal.Zero
		if receipt.EffectiveGasPrice != nil {
			gasPrice = decimal.NewFromBigInt(receipt.EffectiveGasPrice, 0)
		}
		h := &custody.History{
			ID:          uuid.New(),
			Hash:        *row.Hash,
			FromAddress: row.FromAddress,
			ToAddress:   row.ToAddress,
			Asset:       row.Asset,
			Amount:      row.Amount,
			Gas:         receipt.GasUsed,
			GasPrice:    gasPrice,
			BlockNumber: block,
		}
		if err := f.store.CreateHistory(ctx, h); err != nil {
			return fmt.Errorf("failed to record history: %w", err)
		}
	}

	metrics.TransactionsFinalized.WithLabelValues(string(custody.TxConfirmed)).Inc()
	f.logger.Info("Transaction confirmed",
		zap.String("transaction_id", row.ID.String()),
		zap.Stringp("transaction_hash", row.Hash),
		zap.Uint64("block_number", block))
	return nil
}
