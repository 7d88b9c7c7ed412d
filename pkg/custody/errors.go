package custody

import (
	"errors"
	"fmt"

	apperrors "github.com/kevinbg012/mb-crypto-challenge/pkg/app/errors"
)

// Error kinds shared across services. Callers match them with errors.Is;
// the HTTP layer maps them through apperrors categories.
var (
	// ErrValidation marks an unknown asset, address or hash, or a malformed request. No state changed.
	ErrValidation = errors.New("validation error")
	// ErrInsufficientFunds marks a projected cost plus amount exceeding the available balance. No state changed.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrChainUnavailable marks a failed chain gateway call. The cycle is retried on the next interval.
	ErrChainUnavailable = errors.New("chain unavailable")
	// ErrTerminalChainFailure marks a reverted or vanished transaction. The row is failed permanently.
	ErrTerminalChainFailure = errors.New("terminal chain failure")
	// ErrDuplicateDeposit marks a deposit hash that is already recorded in history.
	ErrDuplicateDeposit = errors.New("deposit already recorded")
)

// ValidationError wraps ErrValidation in a CategoryDataError service error carrying msg.
func ValidationError(msg string) error {
	return apperrors.BadRequestError(fmt.Errorf("%w: %s", ErrValidation, msg), msg)
}

// InsufficientFundsError wraps ErrInsufficientFunds in a CategoryUnprocessable service error.
func InsufficientFundsError(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return apperrors.UnprocessableError(fmt.Errorf("%w: %s", ErrInsufficientFunds, msg), "insufficient funds")
}

// DuplicateDepositError wraps ErrDuplicateDeposit in a CategoryDataConflict service error.
func DuplicateDepositError(hash string) error {
	return apperrors.ConflictError(fmt.Errorf("%w: %s", ErrDuplicateDeposit, hash), "transaction already validated")
}

// ChainError wraps a gateway failure in a CategoryDependencyFailure service error.
// err is expected to wrap ErrChainUnavailable already.
func ChainError(err error) error {
	if !errors.Is(err, ErrChainUnavailable) {
		err = fmt.Errorf("%w: %v", ErrChainUnavailable, err)
	}
	return apperrors.DependencyError(err, "blockchain node unavailable")
}
