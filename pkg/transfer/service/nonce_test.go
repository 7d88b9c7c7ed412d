package service

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestNonceLocker_SerializesSameAddress(t *testing.T) {
	l := NewNonceLocker()
	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")

	var (
		inFlight atomic.Int32
		maxSeen  atomic.Int32
		wg       sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock(addr)
			defer unlock()

			n := inFlight.Add(1)
			if n > maxSeen.Load() {
				maxSeen.Store(n)
			}
			time.Sleep(time.Millisecond)
			inFlight.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
}

func TestNonceLocker_IndependentAddresses(t *testing.T) {
	l := NewNonceLocker()
	a := common.HexToAddress("0x1111111111111111111111111111111111111111")
	b := common.HexToAddress("0x2222222222222222222222222222222222222222")

	unlockA := l.Lock(a)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := l.Lock(b)
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different address must not block")
	}
}
