package custody

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/kevinbg012/mb-crypto-challenge/pkg/app/errors"
)

func TestTxStatus_Transitions(t *testing.T) {
	all := []TxStatus{TxPending, TxStarted, TxConfirmed, TxFailed}
	allowed := map[TxStatus][]TxStatus{
		TxPending: {TxStarted},
		TxStarted: {TxConfirmed, TxFailed},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			assert.Equalf(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestTxStatus_IsTerminal(t *testing.T) {
	assert.False(t, TxPending.IsTerminal())
	assert.False(t, TxStarted.IsTerminal())
	assert.True(t, TxConfirmed.IsTerminal())
	assert.True(t, TxFailed.IsTerminal())
}

func TestAddress_IsTreasury(t *testing.T) {
	assert.True(t, (&Address{Pool: PoolMaster, DerivationIndex: 0}).IsTreasury())
	assert.False(t, (&Address{Pool: PoolUser, DerivationIndex: 0}).IsTreasury())
	assert.False(t, (&Address{Pool: PoolMaster, DerivationIndex: 1}).IsTreasury())
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		category apperrors.Category
	}{
		{"validation", ValidationError("unknown asset"), ErrValidation, apperrors.CategoryDataError},
		{"insufficient", InsufficientFundsError("need %s", "1.2"), ErrInsufficientFunds, apperrors.CategoryUnprocessable},
		{"duplicate", DuplicateDepositError("0xabc"), ErrDuplicateDeposit, apperrors.CategoryDataConflict},
		{"chain wrapped", ChainError(fmt.Errorf("%w: eth_call", ErrChainUnavailable)), ErrChainUnavailable, apperrors.CategoryDependencyFailure},
		{"chain raw", ChainError(errors.New("dial tcp")), ErrChainUnavailable, apperrors.CategoryDependencyFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.True(t, apperrors.Is(tt.err, tt.category))
		})
	}
}
