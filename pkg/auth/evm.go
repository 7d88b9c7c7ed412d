package auth

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ValidateEVMAddress checks if a string is a valid EVM address
func ValidateEVMAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") {
		return false
	}
	if len(address) != 42 {
		return false
	}
	_, err := hex.DecodeString(address[2:])
	return err == nil
}

// ValidateTxHash checks if a string is a 0x-prefixed 32-byte transaction hash
func ValidateTxHash(hash string) bool {
	if !strings.HasPrefix(hash, "0x") {
		return false
	}
	if len(hash) != 2+2*common.HashLength {
		return false
	}
	_, err := hex.DecodeString(hash[2:])
	return err == nil
}

// NormalizeAddress returns a checksummed EVM address
func NormalizeAddress(address string) string {
	return common.HexToAddress(address).Hex()
}

// NormalizeTxHash returns the lowercase 0x-prefixed form of a transaction hash
func NormalizeTxHash(hash string) string {
	return common.HexToHash(hash).Hex()
}
