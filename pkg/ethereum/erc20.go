package ethereum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Minimal ERC-20 ABI: balance lookup, transfer call and the Transfer event.
const erc20ABI = `[
	{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"type":"function"},
	{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"value","type":"uint256"}],"name":"Transfer","type":"event"}
]`

// TransferEventTopic is keccak256("Transfer(address,address,uint256)").
var TransferEventTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

var parsedERC20 = mustParseABI(erc20ABI)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(fmt.Sprintf("parse erc20 abi: %v", err))
	}
	return parsed
}

// TransferEvent is a decoded ERC-20 Transfer log.
type TransferEvent struct {
	Token common.Address
	From  common.Address
	To    common.Address
	Value *big.Int
}

// PackTransfer encodes calldata for transfer(to, value).
func PackTransfer(to common.Address, value *big.Int) ([]byte, error) {
	data, err := parsedERC20.Pack("transfer", to, value)
	if err != nil {
		return nil, fmt.Errorf("failed to pack transfer: %w", err)
	}
	return data, nil
}

func packBalanceOf(holder common.Address) ([]byte, error) {
	data, err := parsedERC20.Pack("balanceOf", holder)
	if err != nil {
		return nil, fmt.Errorf("failed to pack balanceOf: %w", err)
	}
	return data, nil
}

func unpackBalanceOf(out []byte) (*big.Int, error) {
	values, err := parsedERC20.Unpack("balanceOf", out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack balanceOf: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected balanceOf output length %d", len(values))
	}
	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf output type %T", values[0])
	}
	return balance, nil
}

// DecodeTransferLog decodes lg as an ERC-20 Transfer event. ok is false when lg is not one.
func DecodeTransferLog(lg *types.Log) (*TransferEvent, bool) {
	if lg == nil || len(lg.Topics) != 3 || lg.Topics[0] != TransferEventTopic {
		return nil, false
	}

	values, err := parsedERC20.Unpack("Transfer", lg.Data)
	if err != nil || len(values) != 1 {
		return nil, false
	}
	value, ok := values[0].(*big.Int)
	if !ok {
		return nil, false
	}

	return &TransferEvent{
		Token: lg.Address,
		From:  common.BytesToAddress(lg.Topics[1].Bytes()),
		To:    common.BytesToAddress(lg.Topics[2].Bytes()),
		Value: value,
	}, true
}

// FirstTransferFrom returns the first log in logs emitted by token that decodes as a Transfer.
// Earlier logs from other contracts, or non-Transfer logs from token, are skipped.
func FirstTransferFrom(logs []*types.Log, token common.Address) (*TransferEvent, bool) {
	for _, lg := range logs {
		if lg == nil || lg.Address != token {
			continue
		}
		if ev, ok := DecodeTransferLog(lg); ok {
			return ev, true
		}
	}
	return nil, false
}
