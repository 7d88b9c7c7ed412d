package custodystore

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
)

var (
	// ErrJobNotFound is returned when no address job matches, or none is claimable.
	ErrJobNotFound = errors.New("address job not found")
	// ErrAddressNotFound is returned when an address is not managed.
	ErrAddressNotFound = errors.New("address not found")
	// ErrTransactionNotFound is returned when no transaction matches, or the row is claimed elsewhere.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrStaleTransaction is returned when a status compare-and-swap finds the row in another state.
	ErrStaleTransaction = errors.New("transaction status changed concurrently")
	// ErrDuplicateHistory is returned when a history row for the same hash already exists.
	ErrDuplicateHistory = errors.New("history already recorded for hash")
	// ErrHistoryNotFound is returned when no history row matches a hash.
	ErrHistoryNotFound = errors.New("history not found")
)

// JobStore persists address issuance jobs.
type JobStore interface {
	CreateJob(ctx context.Context, job *custody.AddressJob) error
	GetJob(ctx context.Context, id uuid.UUID) (*custody.AddressJob, error)
	// ClaimOldestPendingJob locks the oldest pending job for the current transaction.
	ClaimOldestPendingJob(ctx context.Context) (*custody.AddressJob, error)
	UpdateJobStatus(ctx context.Context, id uuid.UUID, status custody.JobStatus) error
}

// AddressStore persists derived addresses.
type AddressStore interface {
	CreateAddresses(ctx context.Context, addrs []*custody.Address) error
	// EnsureAddress inserts addr unless the address is already recorded.
	EnsureAddress(ctx context.Context, addr *custody.Address) error
	GetAddress(ctx context.Context, address string) (*custody.Address, error)
	ListAddresses(ctx context.Context) ([]*custody.Address, error)
	// UsedIndexes returns the subset of indexes already recorded for pool.
	UsedIndexes(ctx context.Context, pool custody.Pool, indexes []uint32) ([]uint32, error)
}

// TransactionStore persists outbound transactions.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx *custody.Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*custody.Transaction, error)
	ListTransactionsByStatus(ctx context.Context, status custody.TxStatus) ([]*custody.Transaction, error)
	// ClaimTransactions locks up to limit rows in status, oldest first, skipping rows locked elsewhere.
	ClaimTransactions(ctx context.Context, status custody.TxStatus, limit int) ([]*custody.Transaction, error)
	// ClaimTransaction locks one row if it is still in status.
	ClaimTransaction(ctx context.Context, id uuid.UUID, status custody.TxStatus) (*custody.Transaction, error)
	// UpdateTransaction writes tx's status, hash and block number if the stored status is still from.
	UpdateTransaction(ctx context.Context, tx *custody.Transaction, from custody.TxStatus) error
	// DeletePendingTransaction removes a row that is still PENDING and was never broadcast.
	DeletePendingTransaction(ctx context.Context, id uuid.UUID) error
	ListTransactionsByAddress(ctx context.Context, address string) ([]*custody.Transaction, error)
}

// HistoryStore persists the append-only transaction history.
type HistoryStore interface {
	CreateHistory(ctx context.Context, h *custody.History) error
	HistoryExists(ctx context.Context, hash string) (bool, error)
	GetHistoryByHash(ctx context.Context, hash string) (*custody.History, error)
	ListHistoryByAddress(ctx context.Context, address string) ([]*custody.History, error)
}

// Store is the full ledger store.
type Store interface {
	JobStore
	AddressStore
	TransactionStore
	HistoryStore
	// RunInTx runs fn in a database transaction carried by the context passed to fn.
	// Store calls made with that context join the transaction. Nested calls reuse the outer one.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
