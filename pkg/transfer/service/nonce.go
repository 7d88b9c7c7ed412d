package service

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// NonceLocker serializes nonce acquisition and broadcast per sender address.
// Entries are never evicted; the key space is bounded by the managed addresses.
type NonceLocker struct {
	mu    sync.Mutex
	locks map[common.Address]*sync.Mutex
}

// NewNonceLocker creates an empty NonceLocker
func NewNonceLocker() *NonceLocker {
	return &NonceLocker{locks: make(map[common.Address]*sync.Mutex)}
}

// Lock blocks until addr is free and returns the matching unlock func.
func (l *NonceLocker) Lock(addr common.Address) func() {
	l.mu.Lock()
	m, ok := l.locks[addr]
	if !ok {
		m = &sync.Mutex{}
		l.locks[addr] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
