// Package ethereum is the chain gateway: balance, nonce, gas, receipt and code lookups,
// plus signing and broadcasting, over a JSON-RPC node.
package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kevinbg012/mb-crypto-challenge/internal/metrics"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/config"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/custody"
)

// ErrNotFound is returned when the node does not know a transaction or receipt.
var ErrNotFound = errors.New("not found on chain")

// Backend is the subset of ethclient.Client used by the gateway.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg geth.CallMsg) (uint64, error)
	CallContract(ctx context.Context, msg geth.CallMsg, blockNumber *big.Int) ([]byte, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	BlockNumber(ctx context.Context) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// TxDraft is an unsigned legacy transaction.
type TxDraft struct {
	From     common.Address
	To       common.Address
	Value    *big.Int
	Data     []byte
	Nonce    uint64
	Gas      uint64
	GasPrice *big.Int
}

// Client represents the chain gateway
type Client struct {
	cfg     *config.EthereumConfig
	backend Backend
	closer  func()
	chainID *big.Int
	signer  types.Signer
	limiter *rate.Limiter
	logger  *zap.Logger
}

// Dial connects to the configured RPC endpoint and checks the node's chain id against the config.
func Dial(ctx context.Context, cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	rpcClient, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	c := NewClient(cfg, rpcClient, logger)
	c.closer = rpcClient.Close

	chainID, err := c.ChainID(ctx)
	if err != nil {
		rpcClient.Close()
		return nil, err
	}
	if chainID.Int64() != cfg.ChainID {
		rpcClient.Close()
		return nil, fmt.Errorf("chain id mismatch: node=%s config=%d", chainID, cfg.ChainID)
	}

	logger.Info("Connected to Ethereum",
		zap.Int64("chain_id", cfg.ChainID),
		zap.Duration("call_timeout", cfg.CallTimeout),
		zap.Float64("rate_limit", cfg.RateLimit))

	return c, nil
}

// NewClient wraps an existing backend.
func NewClient(cfg *config.EthereumConfig, backend Backend, logger *zap.Logger) *Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}
	chainID := big.NewInt(cfg.ChainID)

	return &Client{
		cfg:     cfg,
		backend: backend,
		chainID: chainID,
		signer:  types.LatestSignerForChainID(chainID),
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// Close closes the underlying RPC connection
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// call runs fn under the rate limiter and a per-call timeout, records metrics
// and normalizes errors into ErrNotFound or custody.ErrChainUnavailable.
func (c *Client) call(ctx context.Context, method string, fn func(ctx context.Context) error) error {
	if c.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.CallTimeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		metrics.RecordRPCCall(method, err)
		return fmt.Errorf("%w: %s: rate limiter: %v", custody.ErrChainUnavailable, method, err)
	}

	err := fn(ctx)
	metrics.RecordRPCCall(method, err)
	if err == nil {
		return nil
	}
	if errors.Is(err, geth.NotFound) {
		return fmt.Errorf("%s: %w", method, ErrNotFound)
	}

	c.logger.Debug("Chain call failed", zap.String("method", method), zap.Error(err))
	return fmt.Errorf("%w: %s: %v", custody.ErrChainUnavailable, method, err)
}

// ChainID returns the node's chain id
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	var id *big.Int
	err := c.call(ctx, "eth_chainId", func(ctx context.Context) (err error) {
		id, err = c.backend.ChainID(ctx)
		return err
	})
	return id, err
}

// BalanceAt returns the latest native balance of account in wei
func (c *Client) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	var balance *big.Int
	err := c.call(ctx, "eth_getBalance", func(ctx context.Context) (err error) {
		balance, err = c.backend.BalanceAt(ctx, account, nil)
		return err
	})
	return balance, err
}

// TokenBalance returns holder's balance of the ERC-20 token in minor units
func (c *Client) TokenBalance(ctx context.Context, token, holder common.Address) (*big.Int, error) {
	data, err := packBalanceOf(holder)
	if err != nil {
		return nil, err
	}

	var out []byte
	err = c.call(ctx, "eth_call", func(ctx context.Context) (err error) {
		out, err = c.backend.CallContract(ctx, geth.CallMsg{To: &token, Data: data}, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return unpackBalanceOf(out)
}

// PendingNonce returns the next nonce for account, counting pending transactions
func (c *Client) PendingNonce(ctx context.Context, account common.Address) (uint64, error) {
	var nonce uint64
	err := c.call(ctx, "eth_getTransactionCount", func(ctx context.Context) (err error) {
		nonce, err = c.backend.PendingNonceAt(ctx, account)
		return err
	})
	return nonce, err
}

// GasPrice returns the node's suggested legacy gas price in wei
func (c *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	var price *big.Int
	err := c.call(ctx, "eth_gasPrice", func(ctx context.Context) (err error) {
		price, err = c.backend.SuggestGasPrice(ctx)
		return err
	})
	return price, err
}

// EstimateGas estimates the gas used by draft. Nonce, Gas and GasPrice of the draft are ignored.
func (c *Client) EstimateGas(ctx context.Context, draft *TxDraft) (uint64, error) {
	to := draft.To
	msg := geth.CallMsg{
		From:  draft.From,
		To:    &to,
		Value: draft.Value,
		Data:  draft.Data,
	}

	var gas uint64
	err := c.call(ctx, "eth_estimateGas", func(ctx context.Context) (err error) {
		gas, err = c.backend.EstimateGas(ctx, msg)
		return err
	})
	return gas, err
}

// TransactionByHash returns the transaction and whether it is still pending
func (c *Client) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	var (
		tx      *types.Transaction
		pending bool
	)
	err := c.call(ctx, "eth_getTransactionByHash", func(ctx context.Context) (err error) {
		tx, pending, err = c.backend.TransactionByHash(ctx, hash)
		return err
	})
	return tx, pending, err
}

// Sender recovers the signer of tx for the configured chain
func (c *Client) Sender(tx *types.Transaction) (common.Address, error) {
	from, err := types.Sender(c.signer, tx)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover sender: %w", err)
	}
	return from, nil
}

// Receipt returns the receipt of a mined transaction, ErrNotFound otherwise
func (c *Client) Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := c.call(ctx, "eth_getTransactionReceipt", func(ctx context.Context) (err error) {
		receipt, err = c.backend.TransactionReceipt(ctx, hash)
		return err
	})
	return receipt, err
}

// CodeAt returns the contract code at account; empty for externally owned accounts
func (c *Client) CodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	var code []byte
	err := c.call(ctx, "eth_getCode", func(ctx context.Context) (err error) {
		code, err = c.backend.CodeAt(ctx, account, nil)
		return err
	})
	return code, err
}

// BlockNumber returns the current head block number
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var head uint64
	err := c.call(ctx, "eth_blockNumber", func(ctx context.Context) (err error) {
		head, err = c.backend.BlockNumber(ctx)
		return err
	})
	return head, err
}

// Confirmations returns the number of blocks mined on top of the block that included hash.
func (c *Client) Confirmations(ctx context.Context, hash common.Hash) (uint64, error) {
	receipt, err := c.Receipt(ctx, hash)
	if err != nil {
		return 0, err
	}
	head, err := c.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}
	return ConfirmationsAt(head, receipt), nil
}

// ConfirmationsAt computes head - receipt block, clamped at zero.
func ConfirmationsAt(head uint64, receipt *types.Receipt) uint64 {
	if receipt == nil || receipt.BlockNumber == nil {
		return 0
	}
	block := receipt.BlockNumber.Uint64()
	if head < block {
		return 0
	}
	return head - block
}

// SignTx signs draft with key as an EIP-155 legacy transaction. The hash of the
// result is final, so callers can record it before the transaction is sent.
func (c *Client) SignTx(draft *TxDraft, key *ecdsa.PrivateKey) (*types.Transaction, error) {
	to := draft.To
	value := draft.Value
	if value == nil {
		value = new(big.Int)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    draft.Nonce,
		To:       &to,
		Value:    value,
		Gas:      draft.Gas,
		GasPrice: draft.GasPrice,
		Data:     draft.Data,
	})

	signed, err := types.SignTx(tx, c.signer, key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return signed, nil
}

// SendTransaction broadcasts a signed transaction.
func (c *Client) SendTransaction(ctx context.Context, signed *types.Transaction) error {
	err := c.call(ctx, "eth_sendRawTransaction", func(ctx context.Context) error {
		return c.backend.SendTransaction(ctx, signed)
	})
	if err != nil {
		return err
	}

	to := ""
	if signed.To() != nil {
		to = signed.To().Hex()
	}
	c.logger.Info("Transaction broadcast",
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.String("to", to),
		zap.Uint64("nonce", signed.Nonce()),
		zap.Uint64("gas", signed.Gas()),
		zap.String("gas_price", signed.GasPrice().String()))
	return nil
}
