package custodystore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
)

const uniqueViolation = "23505"

type txKey struct{}

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the ledger store
func NewStore(db *bun.DB) Store {
	return &pgStore{db: db}
}

// idb returns the transaction carried by ctx, or the pool.
func (s *pgStore) idb(ctx context.Context) bun.IDB {
	if tx, ok := ctx.Value(txKey{}).(bun.Tx); ok {
		return tx
	}
	return s.db
}

func (s *pgStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(bun.Tx); ok {
		return fn(ctx)
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation
}

func now() time.Time {
	return time.Now().UTC()
}

func (s *pgStore) CreateJob(ctx context.Context, job *custody.AddressJob) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now()
	}
	job.UpdatedAt = job.CreatedAt

	if _, err := s.idb(ctx).NewInsert().Model(toJobDao(job)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create address job: %w", err)
	}
	return nil
}

func (s *pgStore) GetJob(ctx context.Context, id uuid.UUID) (*custody.AddressJob, error) {
	dao := new(AddressJobDao)
	err := s.idb(ctx).NewSelect().Model(dao).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get address job: %w", err)
	}
	return toJob(dao), nil
}

func (s *pgStore) ClaimOldestPendingJob(ctx context.Context) (*custody.AddressJob, error) {
	dao := new(AddressJobDao)
	err := s.idb(ctx).NewSelect().
		Model(dao).
		Where("status = ?", string(custody.JobPending)).
		OrderExpr("created_at ASC, id ASC").
		Limit(1).
		For("UPDATE SKIP LOCKED").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to claim address job: %w", err)
	}
	return toJob(dao), nil
}

func (s *pgStore) UpdateJobStatus(ctx context.Context, id uuid.UUID, status custody.JobStatus) error {
	res, err := s.idb(ctx).NewUpdate().
		Model((*AddressJobDao)(nil)).
		Set("status = ?", string(status)).
		Set("updated_at = ?", now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update address job: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (s *pgStore) CreateAddresses(ctx context.Context, addrs []*custody.Address) error {
	if len(addrs) == 0 {
		return nil
	}
	daos := make([]*AddressDao, len(addrs))
	for i, addr := range addrs {
		if addr.CreatedAt.IsZero() {
			addr.CreatedAt = now()
		}
		daos[i] = toAddressDao(addr)
	}

	if _, err := s.idb(ctx).NewInsert().Model(&daos).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create addresses: %w", err)
	}
	return nil
}

func (s *pgStore) EnsureAddress(ctx context.Context, addr *custody.Address) error {
	if addr.CreatedAt.IsZero() {
		addr.CreatedAt = now()
	}
	_, err := s.idb(ctx).NewInsert().
		Model(toAddressDao(addr)).
		On("CONFLICT (address) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure address: %w", err)
	}
	return nil
}

func (s *pgStore) GetAddress(ctx context.Context, address string) (*custody.Address, error) {
	dao := new(AddressDao)
	err := s.idb(ctx).NewSelect().Model(dao).Where("address = ?", address).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	return toAddress(dao), nil
}

func (s *pgStore) ListAddresses(ctx context.Context) ([]*custody.Address, error) {
	var daos []AddressDao
	err := s.idb(ctx).NewSelect().Model(&daos).OrderExpr("created_at ASC, id ASC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	out := make([]*custody.Address, len(daos))
	for i := range daos {
		out[i] = toAddress(&daos[i])
	}
	return out, nil
}

func (s *pgStore) UsedIndexes(ctx context.Context, pool custody.Pool, indexes []uint32) ([]uint32, error) {
	if len(indexes) == 0 {
		return nil, nil
	}
	wanted := make([]int64, len(indexes))
	for i, idx := range indexes {
		wanted[i] = int64(idx)
	}

	var used []int64
	err := s.idb(ctx).NewSelect().
		Model((*AddressDao)(nil)).
		Column("derivation_index").
		Where("pool = ?", string(pool)).
		Where("derivation_index IN (?)", bun.In(wanted)).
		Scan(ctx, &used)
	if err != nil {
		return nil, fmt.Errorf("failed to check derivation indexes: %w", err)
	}

	out := make([]uint32, len(used))
	for i, idx := range used {
		out[i] = uint32(idx)
	}
	return out, nil
}

func (s *pgStore) CreateTransaction(ctx context.Context, tx *custody.Transaction) error {
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now()
	}
	tx.UpdatedAt = tx.CreatedAt

	if _, err := s.idb(ctx).NewInsert().Model(toTransactionDao(tx)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (s *pgStore) GetTransaction(ctx context.Context, id uuid.UUID) (*custody.Transaction, error) {
	dao := new(TransactionDao)
	err := s.idb(ctx).NewSelect().Model(dao).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return toTransaction(dao), nil
}

func (s *pgStore) ListTransactionsByStatus(ctx context.Context, status custody.TxStatus) ([]*custody.Transaction, error) {
	var daos []TransactionDao
	err := s.idb(ctx).NewSelect().
		Model(&daos).
		Where("status = ?", string(status)).
		OrderExpr("created_at ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return toTransactions(daos), nil
}

func (s *pgStore) ClaimTransactions(ctx context.Context, status custody.TxStatus, limit int) ([]*custody.Transaction, error) {
	var daos []TransactionDao
	q := s.idb(ctx).NewSelect().
		Model(&daos).
		Where("status = ?", string(status)).
		OrderExpr("created_at ASC, id ASC").
		For("UPDATE SKIP LOCKED")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to claim transactions: %w", err)
	}
	return toTransactions(daos), nil
}

func (s *pgStore) ClaimTransaction(ctx context.Context, id uuid.UUID, status custody.TxStatus) (*custody.Transaction, error) {
	dao := new(TransactionDao)
	err := s.idb(ctx).NewSelect().
		Model(dao).
		Where("id = ?", id).
		Where("status = ?", string(status)).
		For("UPDATE SKIP LOCKED").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to claim transaction: %w", err)
	}
	return toTransaction(dao), nil
}

func (s *pgStore) UpdateTransaction(ctx context.Context, tx *custody.Transaction, from custody.TxStatus) error {
	if !from.CanTransitionTo(tx.Status) {
		return fmt.Errorf("illegal transaction transition %s -> %s", from, tx.Status)
	}

	tx.UpdatedAt = now()
	dao := toTransactionDao(tx)
	res, err := s.idb(ctx).NewUpdate().
		Model(dao).
		Column("status", "transaction_hash", "block_number", "updated_at").
		Where("id = ?", dao.ID).
		Where("status = ?", string(from)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStaleTransaction
	}
	return nil
}

func (s *pgStore) DeletePendingTransaction(ctx context.Context, id uuid.UUID) error {
	res, err := s.idb(ctx).NewDelete().
		Model((*TransactionDao)(nil)).
		Where("id = ?", id).
		Where("status = ?", string(custody.TxPending)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete pending transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (s *pgStore) ListTransactionsByAddress(ctx context.Context, address string) ([]*custody.Transaction, error) {
	var daos []TransactionDao
	err := s.idb(ctx).NewSelect().
		Model(&daos).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("from_address = ?", address).WhereOr("to_address = ?", address)
		}).
		OrderExpr("created_at ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by address: %w", err)
	}
	return toTransactions(daos), nil
}

func toTransactions(daos []TransactionDao) []*custody.Transaction {
	out := make([]*custody.Transaction, len(daos))
	for i := range daos {
		out[i] = toTransaction(&daos[i])
	}
	return out
}

func (s *pgStore) CreateHistory(ctx context.Context, h *custody.History) error {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = now()
	}

	_, err := s.idb(ctx).NewInsert().Model(toHistoryDao(h)).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateHistory
		}
		return fmt.Errorf("failed to create history: %w", err)
	}
	return nil
}

func (s *pgStore) HistoryExists(ctx context.Context, hash string) (bool, error) {
	exists, err := s.idb(ctx).NewSelect().
		Model((*HistoryDao)(nil)).
		Where("transaction_hash = ?", hash).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check history exists: %w", err)
	}
	return exists, nil
}

func (s *pgStore) GetHistoryByHash(ctx context.Context, hash string) (*custody.History, error) {
	dao := new(HistoryDao)
	err := s.idb(ctx).NewSelect().
		Model(dao).
		Where("transaction_hash = ?", hash).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return toHistory(dao), nil
}

func (s *pgStore) ListHistoryByAddress(ctx context.Context, address string) ([]*custody.History, error) {
	var daos []HistoryDao
	err := s.idb(ctx).NewSelect().
		Model(&daos).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("from_address = ?", address).WhereOr("to_address = ?", address)
		}).
		OrderExpr("created_at ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	out := make([]*custody.History, len(daos))
	for i := range daos {
		out[i] = toHistory(&daos[i])
	}
	return out, nil
}
