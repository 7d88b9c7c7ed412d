package custodystore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
)

// AddressJobDao maps to the 'address_jobs' table.
type AddressJobDao struct {
	bun.BaseModel `bun:"table:address_jobs,alias:aj"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	Quantity      int       `bun:"quantity,notnull"`
	Status        string    `bun:"status,notnull,type:varchar(16)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toJobDao(job *custody.AddressJob) *AddressJobDao {
	return &AddressJobDao{
		ID:        job.ID,
		Quantity:  job.Quantity,
		Status:    string(job.Status),
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}

func toJob(dao *AddressJobDao) *custody.AddressJob {
	return &custody.AddressJob{
		ID:        dao.ID,
		Quantity:  dao.Quantity,
		Status:    custody.JobStatus(dao.Status),
		CreatedAt: dao.CreatedAt,
		UpdatedAt: dao.UpdatedAt,
	}
}

// AddressDao maps to the 'addresses' table. (pool, derivation_index) is unique.
type AddressDao struct {
	bun.BaseModel   `bun:"table:addresses,alias:a"`
	ID              uuid.UUID `bun:"id,pk,type:uuid"`
	Address         string    `bun:"address,unique,notnull,type:varchar(42)"`
	Pool            string    `bun:"pool,notnull,type:varchar(16)"`
	DerivationIndex int64     `bun:"derivation_index,notnull"`
	CreatedAt       time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toAddressDao(addr *custody.Address) *AddressDao {
	return &AddressDao{
		ID:              addr.ID,
		Address:         addr.Address,
		Pool:            string(addr.Pool),
		DerivationIndex: int64(addr.DerivationIndex),
		CreatedAt:       addr.CreatedAt,
	}
}

func toAddress(dao *AddressDao) *custody.Address {
	return &custody.Address{
		ID:              dao.ID,
		Address:         dao.Address,
		Pool:            custody.Pool(dao.Pool),
		DerivationIndex: uint32(dao.DerivationIndex),
		CreatedAt:       dao.CreatedAt,
	}
}

// TransactionDao maps to the 'transactions' table.
type TransactionDao struct {
	bun.BaseModel `bun:"table:transactions,alias:t"`
	ID            uuid.UUID       `bun:"id,pk,type:uuid"`
	FromAddress   string          `bun:"from_address,notnull,type:varchar(42)"`
	ToAddress     string          `bun:"to_address,notnull,type:varchar(42)"`
	Asset         string          `bun:"asset,notnull,type:varchar(20)"`
	Amount        decimal.Decimal `bun:"amount,notnull,type:numeric(78,18)"`
	Hash          *string         `bun:"transaction_hash,unique,type:varchar(66)"`
	BlockNumber   *int64          `bun:"block_number"`
	Status        string          `bun:"status,notnull,type:varchar(16)"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toTransactionDao(tx *custody.Transaction) *TransactionDao {
	dao := &TransactionDao{
		ID:          tx.ID,
		FromAddress: tx.FromAddress,
		ToAddress:   tx.ToAddress,
		Asset:       tx.Asset,
		Amount:      tx.Amount,
		Hash:        tx.Hash,
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
	if tx.BlockNumber != nil {
		block := int64(*tx.BlockNumber)
		dao.BlockNumber = &block
	}
	return dao
}

func toTransaction(dao *TransactionDao) *custody.Transaction {
	tx := &custody.Transaction{
		ID:          dao.ID,
		FromAddress: dao.FromAddress,
		ToAddress:   dao.ToAddress,
		Asset:       dao.Asset,
		Amount:      dao.Amount,
		Hash:        dao.Hash,
		Status:      custody.TxStatus(dao.Status),
		CreatedAt:   dao.CreatedAt,
		UpdatedAt:   dao.UpdatedAt,
	}
	if dao.BlockNumber != nil {
		block := uint64(*dao.BlockNumber)
		tx.BlockNumber = &block
	}
	return tx
}

// HistoryDao maps to the append-only 'transaction_history' table.
type HistoryDao struct {
	bun.BaseModel `bun:"table:transaction_history,alias:th"`
	ID            uuid.UUID       `bun:"id,pk,type:uuid"`
	Hash          string          `bun:"transaction_hash,unique,notnull,type:varchar(66)"`
	FromAddress   string          `bun:"from_address,notnull,type:varchar(42)"`
	ToAddress     string          `bun:"to_address,notnull,type:varchar(42)"`
	Asset         string          `bun:"asset,notnull,type:varchar(20)"`
	Amount        decimal.Decimal `bun:"amount,notnull,type:numeric(78,18)"`
	Gas           int64           `bun:"gas,notnull"`
	GasPrice      decimal.Decimal `bun:"gas_price,notnull,type:numeric(78,0)"`
	BlockNumber   int64           `bun:"block_number,notnull"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toHistoryDao(h *custody.History) *HistoryDao {
	return &HistoryDao{
		ID:          h.ID,
		Hash:        h.Hash,
		FromAddress: h.FromAddress,
		ToAddress:   h.ToAddress,
		Asset:       h.Asset,
		Amount:      h.Amount,
		Gas:         int64(h.Gas),
		GasPrice:    h.GasPrice,
		BlockNumber: int64(h.BlockNumber),
		CreatedAt:   h.CreatedAt,
	}
}

func toHistory(dao *HistoryDao) *custody.History {
	return &custody.History{
		ID:          dao.ID,
		Hash:        dao.Hash,
		FromAddress: dao.FromAddress,
		ToAddress:   dao.ToAddress,
		Asset:       dao.Asset,
		Amount:      dao.Amount,
		Gas:         uint64(dao.Gas),
		GasPrice:    dao.GasPrice,
		BlockNumber: uint64(dao.BlockNumber),
		CreatedAt:   dao.CreatedAt,
	}
}
