package mint

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// FindReference looks for a confirmed transaction mentioning reference,
// submitted after until (exclusive). Because the mobile wallet submits the
// transaction out of band, this lookup is the only way to learn about it.
//
// Returns ErrNotFoundYet while no such transaction exists; that is the
// expected steady state while waiting, not a failure. Any other error is a
// genuine lookup failure. On success returns the oldest matching signature,
// never equal to until.
func FindReference(ctx context.Context, ledger Ledger, reference solana.PublicKey, until solana.Signature) (solana.Signature, error) {
	sigs, err := ledger.SignaturesForAddress(ctx, reference, until)
	if err != nil {
		return solana.Signature{}, &LedgerError{Op: "signature lookup", Err: err}
	}

	// Results come newest first; take the oldest new one so sequential
	// payments against the same reference are observed in order.
	for i := len(sigs) - 1; i >= 0; i-- {
		if sigs[i] != until {
			return sigs[i], nil
		}
	}
	return solana.Signature{}, ErrNotFoundYet
}
