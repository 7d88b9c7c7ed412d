// Package custody holds the domain model shared by the issuance, transfer, finalization and deposit services.
package custody

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Limits for a single address issuance job.
const (
	MinJobQuantity = 1
	MaxJobQuantity = 1000
)

// JobStatus is the lifecycle state of an AddressJob.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// TxStatus is the lifecycle state of an outbound Transaction.
// Transitions only move forward: pending -> started -> confirmed | failed.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxStarted   TxStatus = "started"
	TxConfirmed TxStatus = "confirmed"
	TxFailed    TxStatus = "failed"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s TxStatus) IsTerminal() bool {
	return s == TxConfirmed || s == TxFailed
}

// CanTransitionTo reports whether s -> next is a legal forward transition.
func (s TxStatus) CanTransitionTo(next TxStatus) bool {
	switch s {
	case TxPending:
		return next == TxStarted
	case TxStarted:
		return next == TxConfirmed || next == TxFailed
	default:
		return false
	}
}

// Pool identifies which seed an address was derived from.
type Pool string

const (
	// PoolUser derives the managed addresses handed out to clients.
	PoolUser Pool = "user"
	// PoolMaster derives the treasury; index 0 funds gas for token transfers.
	PoolMaster Pool = "master"
)

// TreasuryIndex is the master-pool derivation index of the treasury address.
const TreasuryIndex uint32 = 0

// AddressJob is a request to derive Quantity new managed addresses.
type AddressJob struct {
	ID        uuid.UUID `json:"job_id"`
	Quantity  int       `json:"quantity"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Address is a derived address recorded in the ledger.
type Address struct {
	ID              uuid.UUID `json:"id"`
	Address         string    `json:"address"`
	Pool            Pool      `json:"-"`
	DerivationIndex uint32    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}

// IsTreasury reports whether a is the fee-funding treasury address.
func (a *Address) IsTreasury() bool {
	return a.Pool == PoolMaster && a.DerivationIndex == TreasuryIndex
}

// Transaction is one outbound transfer intent and its on-chain progress.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	FromAddress string          `json:"from_address"`
	ToAddress   string          `json:"to_address"`
	Asset       string          `json:"asset"`
	Amount      decimal.Decimal `json:"amount"`
	Hash        *string         `json:"transaction_hash,omitempty"`
	BlockNumber *uint64         `json:"block_number,omitempty"`
	Status      TxStatus        `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// History is an append-only record of a confirmed on-chain movement,
// written for finalized outbound transfers and for reconciled deposits.
type History struct {
	ID          uuid.UUID       `json:"id"`
	Hash        string          `json:"transaction_hash"`
	FromAddress string          `json:"from_address"`
	ToAddress   string          `json:"to_address"`
	Asset       string          `json:"asset"`
	Amount      decimal.Decimal `json:"amount"`
	Gas         uint64          `json:"gas"`
	GasPrice    decimal.Decimal `json:"gas_price"`
	BlockNumber uint64          `json:"block_number"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransferRequest is the intake payload for an outbound transfer.
type TransferRequest struct {
	From   string          `json:"from_address"`
	To     string          `json:"to_address"`
	Asset  string          `json:"asset"`
	Amount decimal.Decimal `json:"amount"`
}

// CreateJobRequest is the intake payload for address issuance.
type CreateJobRequest struct {
	Quantity int `json:"quantity"`
}

// ValidateDepositRequest is the intake payload for deposit validation.
type ValidateDepositRequest struct {
	Hash string `json:"transaction_hash"`
}
