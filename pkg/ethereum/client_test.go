package ethereum

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kevinbg012/mb-crypto-challenge/pkg/config"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
)

type fakeBackend struct {
	chainID  *big.Int
	balance  *big.Int
	nonce    uint64
	gasPrice *big.Int
	gas      uint64
	head     uint64
	receipts map[common.Hash]*types.Receipt
	code     []byte
	callOut  []byte
	lastCall geth.CallMsg
	sent     []*types.Transaction
	err      error
}

func (f *fakeBackend) ChainID(context.Context) (*big.Int, error) { return f.chainID, f.err }
func (f *fakeBackend) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return f.balance, f.err
}
func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return f.nonce, f.err
}
func (f *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) { return f.gasPrice, f.err }
func (f *fakeBackend) EstimateGas(_ context.Context, msg geth.CallMsg) (uint64, error) {
	f.lastCall = msg
	return f.gas, f.err
}
func (f *fakeBackend) CallContract(_ context.Context, msg geth.CallMsg, _ *big.Int) ([]byte, error) {
	f.lastCall = msg
	return f.callOut, f.err
}
func (f *fakeBackend) TransactionByHash(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	for _, tx := range f.sent {
		if tx.Hash() == hash {
			return tx, false, nil
		}
	}
	return nil, false, geth.NotFound
}
func (f *fakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	if r, ok := f.receipts[hash]; ok {
		return r, nil
	}
	return nil, geth.NotFound
}
func (f *fakeBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return f.code, f.err
}
func (f *fakeBackend) BlockNumber(context.Context) (uint64, error) { return f.head, f.err }
func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, tx)
	return nil
}

func testEthConfig() *config.EthereumConfig {
	return &config.EthereumConfig{
		RPCURL:        "http://localhost:8545",
		ChainID:       11155111,
		CallTimeout:   time.Second,
		RateLimit:     0,
		RateBurst:     1,
		Confirmations: 6,
	}
}

func TestClient_ErrorNormalization(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{receipts: map[common.Hash]*types.Receipt{}}
	c := NewClient(testEthConfig(), backend, zap.NewNop())

	_, err := c.Receipt(ctx, common.HexToHash("0xabc"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, custody.ErrChainUnavailable))

	backend.err = errors.New("dial tcp: connection refused")
	_, err = c.BalanceAt(ctx, alice)
	require.Error(t, err)
	assert.True(t, errors.Is(err, custody.ErrChainUnavailable))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestClient_TokenBalance(t *testing.T) {
	backend := &fakeBackend{callOut: common.LeftPadBytes(big.NewInt(5_000_000).Bytes(), 32)}
	c := NewClient(testEthConfig(), backend, zap.NewNop())

	balance, err := c.TokenBalance(context.Background(), usdc, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(5_000_000), balance.Int64())
	require.NotNil(t, backend.lastCall.To)
	assert.Equal(t, usdc, *backend.lastCall.To)
}

func TestClient_EstimateGas(t *testing.T) {
	backend := &fakeBackend{gas: 21000}
	c := NewClient(testEthConfig(), backend, zap.NewNop())

	gas, err := c.EstimateGas(context.Background(), &TxDraft{From: alice, To: bob, Value: big.NewInt(1)})
	require.NoError(t, err)
	assert.Equal(t, uint64(21000), gas)
	assert.Equal(t, alice, backend.lastCall.From)
	assert.Equal(t, bob, *backend.lastCall.To)
}

func TestClient_SignAndSendTransaction(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)

	backend := &fakeBackend{}
	c := NewClient(testEthConfig(), backend, zap.NewNop())

	signed, err := c.SignTx(&TxDraft{
		From:     from,
		To:       bob,
		Value:    big.NewInt(1_000),
		Nonce:    7,
		Gas:      25200,
		GasPrice: big.NewInt(2_000_000_000),
	}, key)
	require.NoError(t, err)
	assert.Empty(t, backend.sent, "signing does not broadcast")
	hash := signed.Hash()

	require.NoError(t, c.SendTransaction(context.Background(), signed))
	require.Len(t, backend.sent, 1)

	sent := backend.sent[0]
	assert.Equal(t, hash, sent.Hash())
	assert.Equal(t, uint8(types.LegacyTxType), sent.Type())
	assert.Equal(t, uint64(7), sent.Nonce())
	assert.Equal(t, big.NewInt(11155111), sent.ChainId())

	sender, err := c.Sender(sent)
	require.NoError(t, err)
	assert.Equal(t, from, sender)

	tx, pending, err := c.TransactionByHash(context.Background(), hash)
	require.NoError(t, err)
	assert.False(t, pending)
	assert.Equal(t, hash, tx.Hash())
}

func TestClient_SendTransaction_BroadcastFailure(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	backend := &fakeBackend{err: errors.New("nonce too low")}
	c := NewClient(testEthConfig(), backend, zap.NewNop())

	signed, err := c.SignTx(&TxDraft{
		To: bob, Gas: 21000, GasPrice: big.NewInt(1),
	}, key)
	require.NoError(t, err)

	err = c.SendTransaction(context.Background(), signed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, custody.ErrChainUnavailable))
	assert.Empty(t, backend.sent)
}

func TestClient_Confirmations(t *testing.T) {
	hash := common.HexToHash("0x01")
	backend := &fakeBackend{
		head: 110,
		receipts: map[common.Hash]*types.Receipt{
			hash: {Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(104)},
		},
	}
	c := NewClient(testEthConfig(), backend, zap.NewNop())

	n, err := c.Confirmations(context.Background(), hash)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), n)

	_, err = c.Confirmations(context.Background(), common.HexToHash("0x02"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestConfirmationsAt(t *testing.T) {
	assert.Equal(t, uint64(0), ConfirmationsAt(10, nil))
	assert.Equal(t, uint64(0), ConfirmationsAt(10, &types.Receipt{}))
	assert.Equal(t, uint64(0), ConfirmationsAt(10, &types.Receipt{BlockNumber: big.NewInt(12)}))
	assert.Equal(t, uint64(4), ConfirmationsAt(10, &types.Receipt{BlockNumber: big.NewInt(6)}))
}

func TestClient_RateLimiterHonorsContext(t *testing.T) {
	cfg := testEthConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	backend := &fakeBackend{head: 1}
	c := NewClient(cfg, backend, zap.NewNop())

	_, err := c.BlockNumber(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = c.BlockNumber(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, custody.ErrChainUnavailable))
}
