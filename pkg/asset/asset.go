// Package asset resolves asset symbols into a tagged Native | Token variant and converts
// between decimal amounts and integer minor units.
package asset

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/kevinbg012/mb-crypto-challenge/pkg/config"
)

// NativeDecimals is the precision of the chain's native coin (wei).
const NativeDecimals int32 = 18

var (
	// ErrUnknownAsset is returned when a symbol or contract is not registered.
	ErrUnknownAsset = errors.New("unknown asset")
	// ErrNegativeAmount is returned when converting an amount below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrPrecision is returned when an amount has more fractional digits than the asset supports.
	ErrPrecision = errors.New("amount exceeds asset precision")
)

// Asset is either Native or Token. The set of implementations is closed.
type Asset interface {
	Symbol() string
	Decimals() int32
	asset()
}

// Native is the chain's native coin.
type Native struct {
	symbol string
}

func (n Native) Symbol() string  { return n.symbol }
func (n Native) Decimals() int32 { return NativeDecimals }
func (Native) asset()            {}

// Token is a registered ERC-20 token.
type Token struct {
	symbol   string
	decimals int32
	Contract common.Address
}

func (t Token) Symbol() string  { return t.symbol }
func (t Token) Decimals() int32 { return t.decimals }
func (Token) asset()            {}

// NewToken builds a Token. Mostly useful in tests; production tokens come from the Registry.
func NewToken(symbol string, contract common.Address, decimals int32) Token {
	return Token{symbol: strings.ToUpper(symbol), Contract: contract, decimals: decimals}
}

// Registry is the immutable symbol <-> contract <-> decimals table built at startup.
type Registry struct {
	native     Native
	bySymbol   map[string]Token
	byContract map[common.Address]Token
}

// NewRegistry builds a Registry from the configured token list.
func NewRegistry(tokens []config.TokenConfig) (*Registry, error) {
	r := &Registry{
		native:     Native{symbol: config.NativeSymbol},
		bySymbol:   make(map[string]Token, len(tokens)),
		byContract: make(map[common.Address]Token, len(tokens)),
	}

	for _, tc := range tokens {
		if !common.IsHexAddress(tc.Contract) {
			return nil, fmt.Errorf("token %s: invalid contract address %q", tc.Symbol, tc.Contract)
		}
		tok := NewToken(tc.Symbol, common.HexToAddress(tc.Contract), tc.Decimals)
		if tok.symbol == r.native.symbol {
			return nil, fmt.Errorf("token %s collides with the native coin symbol", tc.Symbol)
		}
		if _, dup := r.bySymbol[tok.symbol]; dup {
			return nil, fmt.Errorf("duplicate token symbol %s", tok.symbol)
		}
		if _, dup := r.byContract[tok.Contract]; dup {
			return nil, fmt.Errorf("duplicate token contract %s", tok.Contract.Hex())
		}
		r.bySymbol[tok.symbol] = tok
		r.byContract[tok.Contract] = tok
	}

	return r, nil
}

// Native returns the native coin.
func (r *Registry) Native() Native {
	return r.native
}

// Resolve maps a symbol (case-insensitive) to its Asset.
func (r *Registry) Resolve(symbol string) (Asset, error) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	if sym == r.native.symbol {
		return r.native, nil
	}
	if tok, ok := r.bySymbol[sym]; ok {
		return tok, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, symbol)
}

// TokenByContract looks up a registered token by its contract address.
func (r *Registry) TokenByContract(contract common.Address) (Token, bool) {
	tok, ok := r.byContract[contract]
	return tok, ok
}

// Tokens returns the registered tokens in no particular order.
func (r *Registry) Tokens() []Token {
	out := make([]Token, 0, len(r.bySymbol))
	for _, tok := range r.bySymbol {
		out = append(out, tok)
	}
	return out
}

// ToMinor converts a decimal amount to integer minor units (amount * 10^decimals).
// Amounts with more fractional digits than decimals are rejected rather than rounded.
func ToMinor(amount decimal.Decimal, decimals int32) (*big.Int, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	scaled := amount.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, fmt.Errorf("%w: %s has more than %d decimals", ErrPrecision, amount.String(), decimals)
	}
	return scaled.BigInt(), nil
}

// FromMinor converts integer minor units back to a decimal amount.
func FromMinor(minor *big.Int, decimals int32) decimal.Decimal {
	if minor == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(minor, -decimals)
}
