package service

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kevinbg012/mb-crypto-challenge/internal/metrics"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/asset"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/auth"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/config"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custodystore"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/ethereum"
)

const (
	kindNative = "native"
	kindToken  = "token"
)

// Store is the narrow data-access interface for outbound transfers.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetAddress(ctx context.Context, address string) (*custody.Address, error)
	CreateTransaction(ctx context.Context, tx *custody.Transaction) error
	ClaimTransactions(ctx context.Context, status custody.TxStatus, limit int) ([]*custody.Transaction, error)
	ClaimTransaction(ctx context.Context, id uuid.UUID, status custody.TxStatus) (*custody.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *custody.Transaction, from custody.TxStatus) error
	DeletePendingTransaction(ctx context.Context, id uuid.UUID) error
	ListTransactionsByAddress(ctx context.Context, address string) ([]*custody.Transaction, error)
}

// Chain is the subset of the chain gateway used to build, price and broadcast transfers.
//
//go:generate mockery --name Chain --output mocks --outpkg mocks --filename mock_chain.go --with-expecter
type Chain interface {
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
	TokenBalance(ctx context.Context, token, holder common.Address) (*big.Int, error)
	PendingNonce(ctx context.Context, account common.Address) (uint64, error)
	GasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, draft *ethereum.TxDraft) (uint64, error)
	SignTx(draft *ethereum.TxDraft, key *ecdsa.PrivateKey) (*types.Transaction, error)
	SendTransaction(ctx context.Context, signed *types.Transaction) error
}

// KeySource derives signing keys and knows the treasury address.
//
//go:generate mockery --name KeySource --output mocks --outpkg mocks --filename mock_key_source.go --with-expecter
type KeySource interface {
	DerivePrivateKey(pool custody.Pool, index uint32) (*ecdsa.PrivateKey, error)
	Treasury() common.Address
}

// Service defines the interface for outbound transfers
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// CreateTransfer broadcasts a native transfer immediately, or queues a token transfer
	// as pending after funding its gas from the treasury.
	CreateTransfer(ctx context.Context, req *custody.TransferRequest) (*custody.Transaction, error)
	// RunDispatchCycle broadcasts every pending token transfer.
	RunDispatchCycle(ctx context.Context) error
	ListTransactions(ctx context.Context, address string) ([]*custody.Transaction, error)
}

type transferService struct {
	store    Store
	chain    Chain
	keys     KeySource
	registry *asset.Registry
	nonces   *NonceLocker
	cfg      *config.EthereumConfig
	logger   *zap.Logger
}

// NewService creates a new transfer service
func NewService(
	cfg *config.EthereumConfig,
	store Store,
	chain Chain,
	keys KeySource,
	registry *asset.Registry,
	nonces *NonceLocker,
	logger *zap.Logger,
) Service {
	if nonces == nil {
		nonces = NewNonceLocker()
	}
	return &transferService{
		store:    store,
		chain:    chain,
		keys:     keys,
		registry: registry,
		nonces:   nonces,
		cfg:      cfg,
		logger:   logger,
	}
}

// plan is a fully priced, unsigned transfer.
type plan struct {
	row    *custody.Transaction
	sender *custody.Address
	kind   string
	draft  *ethereum.TxDraft
}

// fee returns gas*gasPrice.
func (p *plan) fee() *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(p.draft.Gas), p.draft.GasPrice)
}

// cost returns fee plus the native value moved.
func (p *plan) cost() *big.Int {
	c := p.fee()
	if p.draft.Value != nil {
		c.Add(c, p.draft.Value)
	}
	return c
}

func (s *transferService) CreateTransfer(ctx context.Context, req *custody.TransferRequest) (*custody.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, custody.ValidationError("amount must not be negative")
	}
	if !auth.ValidateEVMAddress(req.To) {
		return nil, custody.ValidationError("to_address is not a valid address")
	}
	to := common.HexToAddress(req.To)

	sender, err := s.managedAddress(ctx, req.From)
	if err != nil {
		return nil, err
	}

	a, err := s.registry.Resolve(req.Asset)
	if err != nil {
		return nil, custody.ValidationError(fmt.Sprintf("unsupported asset %q", req.Asset))
	}
	minor, err := asset.ToMinor(req.Amount, a.Decimals())
	if err != nil {
		return nil, custody.ValidationError(err.Error())
	}

	switch a := a.(type) {
	case asset.Native:
		tx, err := s.sendNative(ctx, sender, to, minor, a.Symbol(), req.Amount)
		if err != nil {
			return nil, err
		}
		return tx, nil
	case asset.Token:
		return s.queueToken(ctx, sender, to, a, minor, req.Amount)
	default:
		return nil, custody.ValidationError(fmt.Sprintf("unsupported asset %q", req.Asset))
	}
}

func (s *transferService) ListTransactions(ctx context.Context, address string) ([]*custody.Transaction, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, custody.ValidationError("address is not a valid address")
	}
	txs, err := s.store.ListTransactionsByAddress(ctx, auth.NormalizeAddress(address))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// managedAddress resolves raw to a managed Address or fails with a validation error.
func (s *transferService) managedAddress(ctx context.Context, raw string) (*custody.Address, error) {
	if !auth.ValidateEVMAddress(raw) {
		return nil, custody.ValidationError("from_address is not a valid address")
	}
	addr, err := s.store.GetAddress(ctx, auth.NormalizeAddress(raw))
	if err != nil {
		if errors.Is(err, custodystore.ErrAddressNotFound) {
			return nil, custody.ValidationError("from_address is not a managed address")
		}
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	return addr, nil
}

// treasury returns the fee-funding address as a ledger Address.
func (s *transferService) treasury() *custody.Address {
	return &custody.Address{
		Address:         s.keys.Treasury().Hex(),
		Pool:            custody.PoolMaster,
		DerivationIndex: custody.TreasuryIndex,
	}
}

// bufferedGas applies the configured safety multiplier to an estimate, rounding up.
func (s *transferService) bufferedGas(estimate uint64) uint64 {
	buffer := decimal.NewFromFloat(s.cfg.GasBuffer)
	return uint64(decimal.NewFromInt(int64(estimate)).Mul(buffer).Ceil().IntPart())
}

// price fills Gas and GasPrice of p.draft. Token drafts fall back to the default
// token gas when estimation fails or returns zero.
func (s *transferService) price(ctx context.Context, p *plan) error {
	estimate, err := s.chain.EstimateGas(ctx, p.draft)
	if err != nil {
		if p.kind != kindToken {
			return custody.ChainError(err)
		}
		s.logger.Warn("Token gas estimation failed, using default gas",
			zap.String("from", p.draft.From.Hex()),
			zap.String("contract", p.draft.To.Hex()),
			zap.Uint64("default_gas", s.cfg.DefaultTokenGas),
			zap.Error(err))
		estimate = 0
	}
	if estimate == 0 && p.kind == kindToken {
		estimate = s.cfg.DefaultTokenGas
	}
	gasPrice, err := s.chain.GasPrice(ctx)
	if err != nil {
		return custody.ChainError(err)
	}
	p.draft.Gas = s.bufferedGas(estimate)
	p.draft.GasPrice = gasPrice
	return nil
}

// recordFunc persists the ledger rows for a signed transaction before it is broadcast.
type recordFunc func(ctx context.Context, hash string) error

// send signs p under the sender's nonce lock, records it through record and only then
// broadcasts it. Every transaction that can reach the chain therefore already has a row.
// recorded reports whether record succeeded; a broadcast error with recorded set leaves
// a STARTED row that finalization settles.
func (s *transferService) send(ctx context.Context, p *plan, record recordFunc) (recorded bool, err error) {
	key, err := s.keys.DerivePrivateKey(p.sender.Pool, p.sender.DerivationIndex)
	if err != nil {
		return false, fmt.Errorf("failed to derive signing key: %w", err)
	}

	unlock := s.nonces.Lock(p.draft.From)
	defer unlock()

	nonce, err := s.chain.PendingNonce(ctx, p.draft.From)
	if err != nil {
		return false, custody.ChainError(err)
	}
	p.draft.Nonce = nonce

	signed, err := s.chain.SignTx(p.draft, key)
	if err != nil {
		return false, fmt.Errorf("failed to sign transaction: %w", err)
	}
	hash := signed.Hash().Hex()

	if err := record(ctx, hash); err != nil {
		return false, err
	}

	// the row is committed, so the broadcast must not depend on the caller staying around
	if err := s.chain.SendTransaction(context.WithoutCancel(ctx), signed); err != nil {
		s.logger.Error("Recorded transaction was not broadcast",
			zap.String("transaction_hash", hash),
			zap.String("from", p.draft.From.Hex()),
			zap.Uint64("nonce", nonce),
			zap.Error(err))
		return true, custody.ChainError(err)
	}
	return true, nil
}

// sendNative prices, funds-checks and broadcasts a native transfer recorded as STARTED.
// Rows in with are inserted in the same database transaction as the native row.
// When the broadcast fails after the rows were recorded, the recorded row is returned with the error.
func (s *transferService) sendNative(
	ctx context.Context,
	sender *custody.Address,
	to common.Address,
	value *big.Int,
	symbol string,
	amount decimal.Decimal,
	with ...*custody.Transaction,
) (*custody.Transaction, error) {
	from := common.HexToAddress(sender.Address)
	p := &plan{
		sender: sender,
		kind:   kindNative,
		draft:  &ethereum.TxDraft{From: from, To: to, Value: value},
	}
	if err := s.price(ctx, p); err != nil {
		return nil, err
	}

	balance, err := s.chain.BalanceAt(ctx, from)
	if err != nil {
		return nil, custody.ChainError(err)
	}
	if cost := p.cost(); cost.Cmp(balance) > 0 {
		return nil, custody.InsufficientFundsError("%s needs %s wei, has %s", from.Hex(), cost, balance)
	}

	tx := &custody.Transaction{
		ID:          uuid.New(),
		FromAddress: sender.Address,
		ToAddress:   to.Hex(),
		Asset:       symbol,
		Amount:      amount,
		Status:      custody.TxStarted,
	}
	record := func(ctx context.Context, hash string) error {
		tx.Hash = &hash
		return s.store.RunInTx(ctx, func(ctx context.Context) error {
			for _, row := range with {
				if err := s.store.CreateTransaction(ctx, row); err != nil {
					return fmt.Errorf("failed to save transaction %s: %w", row.ID, err)
				}
			}
			if err := s.store.CreateTransaction(ctx, tx); err != nil {
				return fmt.Errorf("failed to save transaction %s: %w", hash, err)
			}
			return nil
		})
	}

	recorded, err := s.send(ctx, p, record)
	if err != nil {
		metrics.TransactionsDispatched.WithLabelValues(kindNative, "error").Inc()
		if recorded {
			return tx, err
		}
		return nil, err
	}

	metrics.TransactionsDispatched.WithLabelValues(kindNative, string(custody.TxStarted)).Inc()
	return tx, nil
}

// queueToken records a PENDING token transfer and funds its gas from the treasury.
// The PENDING row is written together with the funding row; if the funding broadcast
// then fails, the PENDING row is removed again.
func (s *transferService) queueToken(
	ctx context.Context,
	sender *custody.Address,
	to common.Address,
	token asset.Token,
	minor *big.Int,
	amount decimal.Decimal,
) (*custody.Transaction, error) {
	from := common.HexToAddress(sender.Address)

	held, err := s.chain.TokenBalance(ctx, token.Contract, from)
	if err != nil {
		return nil, custody.ChainError(err)
	}
	if minor.Cmp(held) > 0 {
		return nil, custody.InsufficientFundsError("%s holds %s %s, needs %s", from.Hex(), held, token.Symbol(), minor)
	}

	p, err := s.tokenPlan(sender, to, token, minor)
	if err != nil {
		return nil, err
	}
	if err := s.price(ctx, p); err != nil {
		return nil, err
	}

	tx := &custody.Transaction{
		ID:          uuid.New(),
		FromAddress: sender.Address,
		ToAddress:   to.Hex(),
		Asset:       token.Symbol(),
		Amount:      amount,
		Status:      custody.TxPending,
	}

	fee := p.fee()
	native := s.registry.Native()
	funding, err := s.sendNative(ctx, s.treasury(), from, fee, native.Symbol(), asset.FromMinor(fee, native.Decimals()), tx)
	if err != nil {
		if funding != nil {
			s.dropUnfunded(ctx, tx)
		}
		return nil, fmt.Errorf("failed to fund token transfer gas: %w", err)
	}

	s.logger.Info("Token transfer queued",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("asset", token.Symbol()),
		zap.String("funding_hash", *funding.Hash),
		zap.String("funding_amount", funding.Amount.String()))

	metrics.TransactionsDispatched.WithLabelValues(kindToken, string(custody.TxPending)).Inc()
	return tx, nil
}

// dropUnfunded removes a PENDING token row whose gas funding never went out.
func (s *transferService) dropUnfunded(ctx context.Context, tx *custody.Transaction) {
	err := s.store.DeletePendingTransaction(context.WithoutCancel(ctx), tx.ID)
	if err != nil {
		s.logger.Error("Unfunded token transfer could not be removed",
			zap.String("transaction_id", tx.ID.String()),
			zap.Error(err))
	}
}

func (s *transferService) tokenPlan(sender *custody.Address, to common.Address, token asset.Token, minor *big.Int) (*plan, error) {
	data, err := ethereum.PackTransfer(to, minor)
	if err != nil {
		return nil, fmt.Errorf("failed to pack token transfer: %w", err)
	}
	return &plan{
		sender: sender,
		kind:   kindToken,
		draft: &ethereum.TxDraft{
			From:  common.HexToAddress(sender.Address),
			To:    token.Contract,
			Value: new(big.Int),
			Data:  data,
		},
	}, nil
}

// planRow builds and prices the on-chain transfer for a pending row.
func (s *transferService) planRow(ctx context.Context, row *custody.Transaction) (*plan, error) {
	sender, err := s.store.GetAddress(ctx, row.FromAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to get sender %s: %w", row.FromAddress, err)
	}

	a, err := s.registry.Resolve(row.Asset)
	if err != nil {
		return nil, custody.ValidationError(fmt.Sprintf("unsupported asset %q", row.Asset))
	}
	minor, err := asset.ToMinor(row.Amount, a.Decimals())
	if err != nil {
		return nil, custody.ValidationError(err.Error())
	}

	to := common.HexToAddress(row.ToAddress)
	var p *plan
	switch a := a.(type) {
	case asset.Token:
		p, err = s.tokenPlan(sender, to, a, minor)
		if err != nil {
			return nil, err
		}
	default:
		p = &plan{
			sender: sender,
			kind:   kindNative,
			draft:  &ethereum.TxDraft{From: common.HexToAddress(sender.Address), To: to, Value: minor},
		}
	}
	p.row = row

	if err := s.price(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RunDispatchCycle claims every PENDING row, plans all of them, and only broadcasts once
// every sender is known to cover its aggregate fees. Each row is then recorded as STARTED
// in its own database transaction before it is broadcast, so rows already sent stay
// committed when a later row fails.
func (s *transferService) RunDispatchCycle(ctx context.Context) error {
	plans, err := s.planCycle(ctx)
	if err != nil {
		return err
	}

	var sent int
	for _, p := range plans {
		recorded, err := s.dispatch(ctx, p)
		if errors.Is(err, custodystore.ErrTransactionNotFound) {
			s.logger.Debug("Pending transaction claimed elsewhere, skipping",
				zap.String("transaction_id", p.row.ID.String()))
			continue
		}
		if err != nil {
			metrics.TransactionsDispatched.WithLabelValues(p.kind, "error").Inc()
			if recorded {
				sent++
			}
			if sent > 0 {
				s.logger.Warn("Dispatch cycle stopped after partial broadcast",
					zap.Int("sent", sent),
					zap.Int("planned", len(plans)),
					zap.Error(err))
			}
			return err
		}
		metrics.TransactionsDispatched.WithLabelValues(p.kind, string(custody.TxStarted)).Inc()
		sent++
	}

	if sent > 0 {
		s.logger.Info("Dispatch cycle broadcast pending transfers", zap.Int("sent", sent))
	}
	return nil
}

// planCycle claims and prices every PENDING row and checks each sender's balance against
// the sum of its rows. Nothing is broadcast here.
func (s *transferService) planCycle(ctx context.Context) ([]*plan, error) {
	var plans []*plan
	err := s.store.RunInTx(ctx, func(ctx context.Context) error {
		rows, err := s.store.ClaimTransactions(ctx, custody.TxPending, 0)
		if err != nil {
			return fmt.Errorf("failed to claim pending transactions: %w", err)
		}

		required := make(map[common.Address]*big.Int)
		senders := make([]common.Address, 0)
		for _, row := range rows {
			p, err := s.planRow(ctx, row)
			if err != nil {
				return fmt.Errorf("failed to plan transaction %s: %w", row.ID, err)
			}
			plans = append(plans, p)

			from := p.draft.From
			if _, ok := required[from]; !ok {
				required[from] = new(big.Int)
				senders = append(senders, from)
			}
			required[from].Add(required[from], p.cost())
		}

		for _, from := range senders {
			balance, err := s.chain.BalanceAt(ctx, from)
			if err != nil {
				return custody.ChainError(err)
			}
			if required[from].Cmp(balance) > 0 {
				return custody.InsufficientFundsError("%s needs %s wei for pending fees, has %s",
					from.Hex(), required[from], balance)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// dispatch moves one planned row to STARTED with its signed hash and broadcasts it.
// The row is re-claimed first; a row no longer PENDING yields custodystore.ErrTransactionNotFound.
func (s *transferService) dispatch(ctx context.Context, p *plan) (bool, error) {
	return s.send(ctx, p, func(ctx context.Context, hash string) error {
		return s.store.RunInTx(ctx, func(ctx context.Context) error {
			if _, err := s.store.ClaimTransaction(ctx, p.row.ID, custody.TxPending); err != nil {
				return err
			}

			started := *p.row
			started.Hash = &hash
			started.Status = custody.TxStarted
			if err := s.store.UpdateTransaction(ctx, &started, custody.TxPending); err != nil {
				return fmt.Errorf("failed to update transaction %s: %w", p.row.ID, err)
			}
			*p.row = started
			return nil
		})
	})
}
