package mint

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFoundYet means no transaction mentioning the reference exists yet.
	// It is the expected steady state while waiting for a mobile wallet, not a failure.
	ErrNotFoundYet = errors.New("no transaction found for reference")

	// ErrWalletRejected means the wallet declined to sign the transaction.
	ErrWalletRejected = errors.New("wallet rejected transaction signing")

	// ErrBlockhashExpired means the fetched blockhash is already past its
	// validity window and the transaction must not be submitted.
	ErrBlockhashExpired = errors.New("blockhash past its validity window")
)

// InvalidRequestError is returned when caller input is missing or malformed.
// Requests failing this way never reach the ledger.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + e.Reason
}

// IsInvalidRequest checks if err is an InvalidRequestError.
func IsInvalidRequest(err error) bool {
	var e *InvalidRequestError
	return errors.As(err, &e)
}

// LedgerError wraps a failed RPC interaction with the operation that failed.
type LedgerError struct {
	Op  string
	Err error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s failed: %v", e.Op, e.Err)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

// IsLedgerError checks if err is a LedgerError.
func IsLedgerError(err error) bool {
	var e *LedgerError
	return errors.As(err, &e)
}
