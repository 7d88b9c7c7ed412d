package service

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/kevinbg012/mb-crypto-challenge/pkg/app/errors"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/asset"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/config"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custodystore"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/ethereum"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/transfer/service/mocks"
)

const usdcContract = "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"

var (
	gwei     = big.NewInt(1_000_000_000)
	treasury = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	alice    = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob      = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

type fixture struct {
	store *mocks.Store
	chain *mocks.Chain
	keys  *mocks.KeySource
	key   *ecdsa.PrivateKey
	svc   Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	registry, err := asset.NewRegistry([]config.TokenConfig{
		{Symbol: "USDC", Contract: usdcContract, Decimals: 6},
	})
	require.NoError(t, err)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	f := &fixture{
		store: mocks.NewStore(t),
		chain: mocks.NewChain(t),
		keys:  mocks.NewKeySource(t),
		key:   key,
	}
	cfg := &config.EthereumConfig{GasBuffer: 1.2, DefaultTokenGas: 65000}
	f.svc = NewService(cfg, f.store, f.chain, f.keys, registry, NewNonceLocker(), zap.NewNop())
	return f
}

func (f *fixture) passThroughTx() {
	f.store.EXPECT().RunInTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
}

func (f *fixture) managed(addr common.Address, idx uint32) *custody.Address {
	a := &custody.Address{ID: uuid.New(), Address: addr.Hex(), Pool: custody.PoolUser, DerivationIndex: idx}
	f.store.EXPECT().GetAddress(mock.Anything, addr.Hex()).Return(a, nil).Maybe()
	return a
}

func ether(s string) *big.Int {
	return decimal.RequireFromString(s).Shift(18).BigInt()
}

func isPlainTransfer(from common.Address) interface{} {
	return mock.MatchedBy(func(d *ethereum.TxDraft) bool { return d.From == from && len(d.Data) == 0 })
}

func isTokenTransfer(from common.Address) interface{} {
	return mock.MatchedBy(func(d *ethereum.TxDraft) bool {
		return d.From == from && d.To == common.HexToAddress(usdcContract) && len(d.Data) > 0
	})
}

func signedTx(nonce uint64) *types.Transaction {
	return types.NewTx(&types.LegacyTx{Nonce: nonce, Gas: 21000, GasPrice: big.NewInt(1), Value: new(big.Int)})
}

// trackTx runs fn like the store does and appends whether each database transaction committed.
func (f *fixture) trackTx(commits *[]bool) {
	f.store.EXPECT().RunInTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			err := fn(ctx)
			*commits = append(*commits, err == nil)
			return err
		})
}

func (f *fixture) expectNativePricing(from common.Address, balance *big.Int) {
	f.chain.EXPECT().EstimateGas(mock.Anything, isPlainTransfer(from)).Return(uint64(21000), nil).Once()
	f.chain.EXPECT().GasPrice(mock.Anything).Return(new(big.Int).Mul(big.NewInt(20), gwei), nil).Once()
	f.chain.EXPECT().BalanceAt(mock.Anything, from).Return(balance, nil).Once()
}

func nativeRequest() *custody.TransferRequest {
	return &custody.TransferRequest{
		From:   alice.Hex(),
		To:     bob.Hex(),
		Asset:  "ETH",
		Amount: decimal.RequireFromString("1.0"),
	}
}

func tokenRequest() *custody.TransferRequest {
	return &custody.TransferRequest{
		From:   alice.Hex(),
		To:     bob.Hex(),
		Asset:  "USDC",
		Amount: decimal.NewFromInt(100),
	}
}

func TestBufferedGas(t *testing.T) {
	s := &transferService{cfg: &config.EthereumConfig{GasBuffer: 1.2}}
	assert.Equal(t, uint64(25200), s.bufferedGas(21000))
	assert.Equal(t, uint64(78000), s.bufferedGas(65000))
	assert.Equal(t, uint64(2), s.bufferedGas(1))
	assert.Equal(t, uint64(0), s.bufferedGas(0))
}

func TestCreateTransfer_NativeRecordsBeforeBroadcast(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)
	signed := signedTx(3)
	var order []string

	f.expectNativePricing(alice, ether("2.0"))
	f.keys.EXPECT().DerivePrivateKey(custody.PoolUser, uint32(7)).Return(f.key, nil).Once()
	f.chain.EXPECT().PendingNonce(mock.Anything, alice).Return(uint64(3), nil).Once()
	f.chain.EXPECT().SignTx(mock.MatchedBy(func(d *ethereum.TxDraft) bool {
		return d.Nonce == 3 && d.Gas == 25200 && d.To == bob && d.Value.Cmp(ether("1.0")) == 0
	}), f.key).Return(signed, nil).Once()
	f.passThroughTx()
	f.store.EXPECT().CreateTransaction(mock.Anything, mock.MatchedBy(func(tx *custody.Transaction) bool {
		return tx.Status == custody.TxStarted && tx.Hash != nil && *tx.Hash == signed.Hash().Hex()
	})).Run(func(context.Context, *custody.Transaction) { order = append(order, "record") }).Return(nil).Once()
	f.chain.EXPECT().SendTransaction(mock.Anything, signed).
		Run(func(context.Context, *types.Transaction) { order = append(order, "broadcast") }).Return(nil).Once()

	tx, err := f.svc.CreateTransfer(context.Background(), nativeRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"record", "broadcast"}, order)
	assert.Equal(t, custody.TxStarted, tx.Status)
	require.NotNil(t, tx.Hash)
	assert.Equal(t, signed.Hash().Hex(), *tx.Hash)
	assert.Equal(t, "ETH", tx.Asset)
}

func TestCreateTransfer_NativeBroadcastSurvivesCallerCancel(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)
	signed := signedTx(3)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.expectNativePricing(alice, ether("2.0"))
	f.keys.EXPECT().DerivePrivateKey(custody.PoolUser, uint32(7)).Return(f.key, nil).Once()
	f.chain.EXPECT().PendingNonce(mock.Anything, alice).Return(uint64(3), nil).Once()
	f.chain.EXPECT().SignTx(mock.Anything, f.key).Return(signed, nil).Once()
	f.passThroughTx()
	// the client goes away once the row is written
	f.store.EXPECT().CreateTransaction(mock.Anything, mock.Anything).
		Run(func(context.Context, *custody.Transaction) { cancel() }).Return(nil).Once()
	f.chain.EXPECT().SendTransaction(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), signed).Return(nil).Once()

	tx, err := f.svc.CreateTransfer(ctx, nativeRequest())
	require.NoError(t, err)
	assert.Equal(t, custody.TxStarted, tx.Status)
}

func TestCreateTransfer_NativeRecordFailureSkipsBroadcast(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)

	f.expectNativePricing(alice, ether("2.0"))
	f.keys.EXPECT().DerivePrivateKey(custody.PoolUser, uint32(7)).Return(f.key, nil).Once()
	f.chain.EXPECT().PendingNonce(mock.Anything, alice).Return(uint64(3), nil).Once()
	f.chain.EXPECT().SignTx(mock.Anything, f.key).Return(signedTx(3), nil).Once()
	f.passThroughTx()
	f.store.EXPECT().CreateTransaction(mock.Anything, mock.Anything).Return(errors.New("statement timeout")).Once()

	tx, err := f.svc.CreateTransfer(context.Background(), nativeRequest())
	require.Error(t, err)
	assert.Nil(t, tx)
	assert.Contains(t, err.Error(), "statement timeout")
	f.chain.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
}

func TestCreateTransfer_NativeBroadcastFailureKeepsRecordedRow(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)
	signed := signedTx(3)
	var recorded *custody.Transaction

	f.expectNativePricing(alice, ether("2.0"))
	f.keys.EXPECT().DerivePrivateKey(custody.PoolUser, uint32(7)).Return(f.key, nil).Once()
	f.chain.EXPECT().PendingNonce(mock.Anything, alice).Return(uint64(3), nil).Once()
	f.chain.EXPECT().SignTx(mock.Anything, f.key).Return(signed, nil).Once()
	f.passThroughTx()
	f.store.EXPECT().CreateTransaction(mock.Anything, mock.Anything).
		Run(func(_ context.Context, tx *custody.Transaction) { recorded = tx }).Return(nil).Once()
	f.chain.EXPECT().SendTransaction(mock.Anything, signed).
		Return(errors.New("eth_sendRawTransaction: connection refused")).Once()

	_, err := f.svc.CreateTransfer(context.Background(), nativeRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, custody.ErrChainUnavailable)
	require.NotNil(t, recorded)
	assert.Equal(t, custody.TxStarted, recorded.Status)
	require.NotNil(t, recorded.Hash)
	assert.Equal(t, signed.Hash().Hex(), *recorded.Hash)
}

func TestCreateTransfer_NativeInsufficientFunds(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)

	f.chain.EXPECT().EstimateGas(mock.Anything, mock.Anything).Return(uint64(21000), nil).Once()
	f.chain.EXPECT().GasPrice(mock.Anything).Return(gwei, nil).Once()
	f.chain.EXPECT().BalanceAt(mock.Anything, alice).Return(ether("1.0"), nil).Once()

	req := nativeRequest()
	req.Asset = "eth"
	_, err := f.svc.CreateTransfer(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, custody.ErrInsufficientFunds)
	assert.True(t, apperrors.Is(err, apperrors.CategoryUnprocessable))
	f.chain.AssertNotCalled(t, "SignTx", mock.Anything, mock.Anything)
	f.chain.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestCreateTransfer_NativeGasEstimationFailure(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)

	f.chain.EXPECT().EstimateGas(mock.Anything, isPlainTransfer(alice)).
		Return(uint64(0), errors.New("execution reverted")).Once()

	_, err := f.svc.CreateTransfer(context.Background(), nativeRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, custody.ErrChainUnavailable)
	f.chain.AssertNotCalled(t, "GasPrice", mock.Anything)
}

func TestCreateTransfer_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   *custody.TransferRequest
		setup func(f *fixture)
	}{
		{
			name: "negative amount",
			req:  &custody.TransferRequest{From: alice.Hex(), To: bob.Hex(), Asset: "ETH", Amount: decimal.NewFromInt(-1)},
		},
		{
			name: "malformed recipient",
			req:  &custody.TransferRequest{From: alice.Hex(), To: "0x1234", Asset: "ETH", Amount: decimal.NewFromInt(1)},
		},
		{
			name: "unmanaged sender",
			req:  &custody.TransferRequest{From: alice.Hex(), To: bob.Hex(), Asset: "ETH", Amount: decimal.NewFromInt(1)},
			setup: func(f *fixture) {
				f.store.EXPECT().GetAddress(mock.Anything, alice.Hex()).Return(nil, custodystore.ErrAddressNotFound).Once()
			},
		},
		{
			name: "unknown asset",
			req:  &custody.TransferRequest{From: alice.Hex(), To: bob.Hex(), Asset: "DOGE", Amount: decimal.NewFromInt(1)},
			setup: func(f *fixture) {
				f.managed(alice, 1)
			},
		},
		{
			name: "too many decimals",
			req:  &custody.TransferRequest{From: alice.Hex(), To: bob.Hex(), Asset: "USDC", Amount: decimal.RequireFromString("0.0000001")},
			setup: func(f *fixture) {
				f.managed(alice, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}
			_, err := f.svc.CreateTransfer(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, custody.ErrValidation)
			assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
		})
	}
}

// expectTreasuryFunding sets up the native funding leg paid by the treasury.
func (f *fixture) expectTreasuryFunding(wantFee *big.Int, signed *types.Transaction) {
	f.chain.EXPECT().EstimateGas(mock.Anything, isPlainTransfer(treasury)).Return(uint64(21000), nil).Once()
	f.keys.EXPECT().Treasury().Return(treasury)
	f.chain.EXPECT().BalanceAt(mock.Anything, treasury).Return(ether("5"), nil).Once()
	f.keys.EXPECT().DerivePrivateKey(custody.PoolMaster, custody.TreasuryIndex).Return(f.key, nil).Once()
	f.chain.EXPECT().PendingNonce(mock.Anything, treasury).Return(uint64(0), nil).Once()
	f.chain.EXPECT().SignTx(mock.MatchedBy(func(d *ethereum.TxDraft) bool {
		return d.From == treasury && d.To == alice && d.Value.Cmp(wantFee) == 0
	}), f.key).Return(signed, nil).Once()
}

func TestCreateTransfer_TokenQueuesAndFundsGas(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)
	funding := signedTx(0)
	price := new(big.Int).Mul(big.NewInt(10), gwei)
	// 65000 default * 1.2 buffer * 10 gwei
	wantFee := new(big.Int).Mul(big.NewInt(78000), price)

	f.chain.EXPECT().TokenBalance(mock.Anything, common.HexToAddress(usdcContract), alice).
		Return(big.NewInt(250_000_000), nil).Once()
	f.chain.EXPECT().EstimateGas(mock.Anything, isTokenTransfer(alice)).Return(uint64(0), nil).Once()
	f.chain.EXPECT().GasPrice(mock.Anything).Return(price, nil).Twice()
	f.expectTreasuryFunding(wantFee, funding)

	var commits []bool
	f.trackTx(&commits)
	var created []*custody.Transaction
	f.store.EXPECT().CreateTransaction(mock.Anything, mock.Anything).
		Run(func(_ context.Context, tx *custody.Transaction) { created = append(created, tx) }).
		Return(nil).Twice()
	f.chain.EXPECT().SendTransaction(mock.Anything, funding).Return(nil).Once()

	tx, err := f.svc.CreateTransfer(context.Background(), tokenRequest())
	require.NoError(t, err)
	assert.Equal(t, custody.TxPending, tx.Status)
	assert.Nil(t, tx.Hash)
	assert.Equal(t, []bool{true}, commits)

	require.Len(t, created, 2)
	assert.Equal(t, custody.TxPending, created[0].Status)
	assert.Equal(t, "USDC", created[0].Asset)

	fundingRow := created[1]
	assert.Equal(t, custody.TxStarted, fundingRow.Status)
	assert.Equal(t, treasury.Hex(), fundingRow.FromAddress)
	assert.Equal(t, alice.Hex(), fundingRow.ToAddress)
	assert.Equal(t, "ETH", fundingRow.Asset)
	assert.True(t, fundingRow.Amount.Equal(decimal.RequireFromString("0.00078")), fundingRow.Amount.String())
	require.NotNil(t, fundingRow.Hash)
	assert.Equal(t, funding.Hash().Hex(), *fundingRow.Hash)
}

func TestCreateTransfer_TokenGasEstimationErrorUsesDefault(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)
	funding := signedTx(0)
	price := new(big.Int).Mul(big.NewInt(10), gwei)
	wantFee := new(big.Int).Mul(big.NewInt(78000), price)

	f.chain.EXPECT().TokenBalance(mock.Anything, common.HexToAddress(usdcContract), alice).
		Return(big.NewInt(250_000_000), nil).Once()
	// an unfunded holder cannot be simulated by most nodes
	f.chain.EXPECT().EstimateGas(mock.Anything, isTokenTransfer(alice)).
		Return(uint64(0), errors.New("insufficient funds for gas * price + value")).Once()
	f.chain.EXPECT().GasPrice(mock.Anything).Return(price, nil).Twice()
	f.expectTreasuryFunding(wantFee, funding)
	f.passThroughTx()
	f.store.EXPECT().CreateTransaction(mock.Anything, mock.Anything).Return(nil).Twice()
	f.chain.EXPECT().SendTransaction(mock.Anything, funding).Return(nil).Once()

	tx, err := f.svc.CreateTransfer(context.Background(), tokenRequest())
	require.NoError(t, err)
	assert.Equal(t, custody.TxPending, tx.Status)
}

func TestCreateTransfer_TokenInsufficientBalance(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)

	f.chain.EXPECT().TokenBalance(mock.Anything, common.HexToAddress(usdcContract), alice).
		Return(big.NewInt(99_999_999), nil).Once()

	_, err := f.svc.CreateTransfer(context.Background(), tokenRequest())
	assert.ErrorIs(t, err, custody.ErrInsufficientFunds)
	f.store.AssertNotCalled(t, "RunInTx", mock.Anything, mock.Anything)
}

func TestCreateTransfer_TokenFundingRecordFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)
	price := gwei
	wantFee := new(big.Int).Mul(big.NewInt(62400), price)

	f.chain.EXPECT().TokenBalance(mock.Anything, mock.Anything, alice).Return(big.NewInt(100_000_000), nil).Once()
	f.chain.EXPECT().EstimateGas(mock.Anything, isTokenTransfer(alice)).Return(uint64(52000), nil).Once()
	f.chain.EXPECT().GasPrice(mock.Anything).Return(price, nil).Twice()
	f.expectTreasuryFunding(wantFee, signedTx(0))

	var commits []bool
	f.trackTx(&commits)
	f.store.EXPECT().CreateTransaction(mock.Anything, mock.MatchedBy(func(tx *custody.Transaction) bool {
		return tx.Status == custody.TxPending
	})).Return(nil).Once()
	f.store.EXPECT().CreateTransaction(mock.Anything, mock.MatchedBy(func(tx *custody.Transaction) bool {
		return tx.Status == custody.TxStarted
	})).Return(errors.New("statement timeout")).Once()

	_, err := f.svc.CreateTransfer(context.Background(), tokenRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement timeout")
	assert.Equal(t, []bool{false}, commits)
	f.chain.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "DeletePendingTransaction", mock.Anything, mock.Anything)
}

func TestCreateTransfer_TokenFundingBroadcastFailureDropsPendingRow(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)
	price := gwei
	wantFee := new(big.Int).Mul(big.NewInt(62400), price)
	funding := signedTx(9)

	f.chain.EXPECT().TokenBalance(mock.Anything, mock.Anything, alice).Return(big.NewInt(100_000_000), nil).Once()
	f.chain.EXPECT().EstimateGas(mock.Anything, isTokenTransfer(alice)).Return(uint64(52000), nil).Once()
	f.chain.EXPECT().GasPrice(mock.Anything).Return(price, nil).Twice()
	f.expectTreasuryFunding(wantFee, funding)

	f.passThroughTx()
	var pending *custody.Transaction
	f.store.EXPECT().CreateTransaction(mock.Anything, mock.MatchedBy(func(tx *custody.Transaction) bool {
		return tx.Status == custody.TxPending
	})).Run(func(_ context.Context, tx *custody.Transaction) { pending = tx }).Return(nil).Once()
	f.store.EXPECT().CreateTransaction(mock.Anything, mock.MatchedBy(func(tx *custody.Transaction) bool {
		return tx.Status == custody.TxStarted
	})).Return(nil).Once()
	f.chain.EXPECT().SendTransaction(mock.Anything, funding).
		Return(errors.New("eth_sendRawTransaction: connection refused")).Once()
	f.store.EXPECT().DeletePendingTransaction(mock.Anything, mock.MatchedBy(func(id uuid.UUID) bool {
		return pending != nil && id == pending.ID
	})).Return(nil).Once()

	_, err := f.svc.CreateTransfer(context.Background(), tokenRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, custody.ErrChainUnavailable)
}

func pendingToken(from common.Address, amount int64) *custody.Transaction {
	return &custody.Transaction{
		ID:          uuid.New(),
		FromAddress: from.Hex(),
		ToAddress:   bob.Hex(),
		Asset:       "USDC",
		Amount:      decimal.NewFromInt(amount),
		Status:      custody.TxPending,
	}
}

func (f *fixture) expectClaimAndStart(row *custody.Transaction, updateErr error) {
	f.store.EXPECT().ClaimTransaction(mock.Anything, row.ID, custody.TxPending).Return(row, nil).Once()
	f.store.EXPECT().UpdateTransaction(mock.Anything, mock.MatchedBy(func(tx *custody.Transaction) bool {
		return tx.ID == row.ID && tx.Status == custody.TxStarted && tx.Hash != nil
	}), custody.TxPending).Return(updateErr).Once()
}

func TestRunDispatchCycle_NoPendingRows(t *testing.T) {
	f := newFixture(t)
	f.passThroughTx()
	f.store.EXPECT().ClaimTransactions(mock.Anything, custody.TxPending, 0).Return(nil, nil).Once()

	require.NoError(t, f.svc.RunDispatchCycle(context.Background()))
	f.chain.AssertNotCalled(t, "SignTx", mock.Anything, mock.Anything)
}

func TestRunDispatchCycle_BroadcastsPendingTokenRows(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)
	row := pendingToken(alice, 100)
	signed := signedTx(0)
	var order []string

	f.passThroughTx()
	f.store.EXPECT().ClaimTransactions(mock.Anything, custody.TxPending, 0).Return([]*custody.Transaction{row}, nil).Once()
	f.chain.EXPECT().EstimateGas(mock.Anything, isTokenTransfer(alice)).Return(uint64(52000), nil).Once()
	f.chain.EXPECT().GasPrice(mock.Anything).Return(gwei, nil).Once()
	f.chain.EXPECT().BalanceAt(mock.Anything, alice).Return(ether("0.001"), nil).Once()
	f.keys.EXPECT().DerivePrivateKey(custody.PoolUser, uint32(7)).Return(f.key, nil).Once()
	f.chain.EXPECT().PendingNonce(mock.Anything, alice).Return(uint64(0), nil).Once()
	f.chain.EXPECT().SignTx(isTokenTransfer(alice), f.key).Return(signed, nil).Once()
	f.store.EXPECT().ClaimTransaction(mock.Anything, row.ID, custody.TxPending).Return(row, nil).Once()
	f.store.EXPECT().UpdateTransaction(mock.Anything, mock.MatchedBy(func(tx *custody.Transaction) bool {
		return tx.ID == row.ID && tx.Status == custody.TxStarted && tx.Hash != nil && *tx.Hash == signed.Hash().Hex()
	}), custody.TxPending).
		Run(func(context.Context, *custody.Transaction, custody.TxStatus) { order = append(order, "record") }).
		Return(nil).Once()
	f.chain.EXPECT().SendTransaction(mock.Anything, signed).
		Run(func(context.Context, *types.Transaction) { order = append(order, "broadcast") }).
		Return(nil).Once()

	require.NoError(t, f.svc.RunDispatchCycle(context.Background()))
	assert.Equal(t, []string{"record", "broadcast"}, order)
	assert.Equal(t, custody.TxStarted, row.Status)
}

func TestRunDispatchCycle_AggregateFeesExceedBalance(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)
	rows := []*custody.Transaction{pendingToken(alice, 10), pendingToken(alice, 20)}

	var commits []bool
	f.trackTx(&commits)
	f.store.EXPECT().ClaimTransactions(mock.Anything, custody.TxPending, 0).Return(rows, nil).Once()
	f.chain.EXPECT().EstimateGas(mock.Anything, isTokenTransfer(alice)).Return(uint64(50000), nil).Twice()
	f.chain.EXPECT().GasPrice(mock.Anything).Return(gwei, nil).Twice()
	// Each row needs 60000 gwei; the balance covers one row but not both.
	f.chain.EXPECT().BalanceAt(mock.Anything, alice).Return(new(big.Int).Mul(big.NewInt(90000), gwei), nil).Once()

	err := f.svc.RunDispatchCycle(context.Background())
	assert.ErrorIs(t, err, custody.ErrInsufficientFunds)
	assert.Equal(t, []bool{false}, commits)
	f.chain.AssertNotCalled(t, "SignTx", mock.Anything, mock.Anything)
	f.chain.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunDispatchCycle_RecordFailureKeepsEarlierBroadcasts(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)
	first, second := pendingToken(alice, 10), pendingToken(alice, 20)
	firstSigned := signedTx(4)

	var commits []bool
	f.trackTx(&commits)
	f.store.EXPECT().ClaimTransactions(mock.Anything, custody.TxPending, 0).
		Return([]*custody.Transaction{first, second}, nil).Once()
	f.chain.EXPECT().EstimateGas(mock.Anything, mock.Anything).Return(uint64(50000), nil).Twice()
	f.chain.EXPECT().GasPrice(mock.Anything).Return(gwei, nil).Twice()
	f.chain.EXPECT().BalanceAt(mock.Anything, alice).Return(ether("1"), nil).Once()
	f.keys.EXPECT().DerivePrivateKey(custody.PoolUser, uint32(7)).Return(f.key, nil).Twice()
	f.chain.EXPECT().PendingNonce(mock.Anything, alice).Return(uint64(4), nil).Once()
	f.chain.EXPECT().PendingNonce(mock.Anything, alice).Return(uint64(5), nil).Once()
	f.chain.EXPECT().SignTx(mock.Anything, f.key).Return(firstSigned, nil).Once()
	f.chain.EXPECT().SignTx(mock.Anything, f.key).Return(signedTx(5), nil).Once()
	f.expectClaimAndStart(first, nil)
	f.expectClaimAndStart(second, errors.New("statement timeout"))
	f.chain.EXPECT().SendTransaction(mock.Anything, firstSigned).Return(nil).Once()

	err := f.svc.RunDispatchCycle(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement timeout")

	// plan, first row, second row
	assert.Equal(t, []bool{true, true, false}, commits)
	assert.Equal(t, custody.TxStarted, first.Status)
	require.NotNil(t, first.Hash)
	assert.Equal(t, firstSigned.Hash().Hex(), *first.Hash)
	assert.Equal(t, custody.TxPending, second.Status)
	assert.Nil(t, second.Hash)
}

func TestRunDispatchCycle_BroadcastFailureLeavesRowStarted(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)
	first, second := pendingToken(alice, 10), pendingToken(alice, 20)
	signed := signedTx(4)

	var commits []bool
	f.trackTx(&commits)
	f.store.EXPECT().ClaimTransactions(mock.Anything, custody.TxPending, 0).
		Return([]*custody.Transaction{first, second}, nil).Once()
	f.chain.EXPECT().EstimateGas(mock.Anything, mock.Anything).Return(uint64(50000), nil).Twice()
	f.chain.EXPECT().GasPrice(mock.Anything).Return(gwei, nil).Twice()
	f.chain.EXPECT().BalanceAt(mock.Anything, alice).Return(ether("1"), nil).Once()
	f.keys.EXPECT().DerivePrivateKey(custody.PoolUser, uint32(7)).Return(f.key, nil).Once()
	f.chain.EXPECT().PendingNonce(mock.Anything, alice).Return(uint64(4), nil).Once()
	f.chain.EXPECT().SignTx(mock.Anything, f.key).Return(signed, nil).Once()
	f.expectClaimAndStart(first, nil)
	f.chain.EXPECT().SendTransaction(mock.Anything, signed).
		Return(errors.New("eth_sendRawTransaction: timeout")).Once()

	err := f.svc.RunDispatchCycle(context.Background())
	assert.ErrorIs(t, err, custody.ErrChainUnavailable)
	assert.Equal(t, []bool{true, true}, commits)
	assert.Equal(t, custody.TxStarted, first.Status)
	assert.Equal(t, custody.TxPending, second.Status)
	f.store.AssertNotCalled(t, "ClaimTransaction", mock.Anything, second.ID, mock.Anything)
}

func TestRunDispatchCycle_SkipsRowClaimedElsewhere(t *testing.T) {
	f := newFixture(t)
	f.managed(alice, 7)
	taken, free := pendingToken(alice, 10), pendingToken(alice, 20)
	signed := signedTx(4)

	f.passThroughTx()
	f.store.EXPECT().ClaimTransactions(mock.Anything, custody.TxPending, 0).
		Return([]*custody.Transaction{taken, free}, nil).Once()
	f.chain.EXPECT().EstimateGas(mock.Anything, mock.Anything).Return(uint64(50000), nil).Twice()
	f.chain.EXPECT().GasPrice(mock.Anything).Return(gwei, nil).Twice()
	f.chain.EXPECT().BalanceAt(mock.Anything, alice).Return(ether("1"), nil).Once()
	f.keys.EXPECT().DerivePrivateKey(custody.PoolUser, uint32(7)).Return(f.key, nil).Twice()
	f.chain.EXPECT().PendingNonce(mock.Anything, alice).Return(uint64(4), nil).Twice()
	f.chain.EXPECT().SignTx(mock.Anything, f.key).Return(signed, nil).Twice()
	f.store.EXPECT().ClaimTransaction(mock.Anything, taken.ID, custody.TxPending).
		Return(nil, custodystore.ErrTransactionNotFound).Once()
	f.expectClaimAndStart(free, nil)
	f.chain.EXPECT().SendTransaction(mock.Anything, signed).Return(nil).Once()

	require.NoError(t, f.svc.RunDispatchCycle(context.Background()))
	assert.Equal(t, custody.TxPending, taken.Status)
	assert.Equal(t, custody.TxStarted, free.Status)
}

func TestListTransactions_RejectsMalformedAddress(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ListTransactions(context.Background(), "not-an-address")
	assert.ErrorIs(t, err, custody.ErrValidation)
}
