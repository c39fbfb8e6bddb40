package mint

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindReferenceNotFoundYet(t *testing.T) {
	ledger := &stubLedger{}
	ref := solana.NewWallet().PublicKey()

	// Repeated polls against an unused reference stay in the waiting state.
	for i := 0; i < 3; i++ {
		_, err := FindReference(context.Background(), ledger, ref, solana.Signature{})
		assert.ErrorIs(t, err, ErrNotFoundYet)
	}
}

func TestFindReferenceReturnsOldest(t *testing.T) {
	newest, middle, oldest := sigWithByte(3), sigWithByte(2), sigWithByte(1)

	ledger := &stubLedger{}
	ledger.setSigs(newest, middle, oldest)

	found, err := FindReference(context.Background(), ledger, solana.NewWallet().PublicKey(), solana.Signature{})
	require.NoError(t, err)
	assert.Equal(t, oldest, found, "sequential payments must surface in order")
}

func TestFindReferenceHonorsUntil(t *testing.T) {
	newest, middle, oldest := sigWithByte(3), sigWithByte(2), sigWithByte(1)

	ledger := &stubLedger{}
	ledger.setSigs(newest, middle, oldest)

	found, err := FindReference(context.Background(), ledger, solana.NewWallet().PublicKey(), oldest)
	require.NoError(t, err)
	assert.Equal(t, middle, found)
	assert.NotEqual(t, oldest, found, "the until signature must never be returned")

	_, err = FindReference(context.Background(), ledger, solana.NewWallet().PublicKey(), newest)
	assert.ErrorIs(t, err, ErrNotFoundYet)
}

func TestFindReferenceLookupFailure(t *testing.T) {
	ledger := &stubLedger{sigsErr: errors.New("rpc down")}

	_, err := FindReference(context.Background(), ledger, solana.NewWallet().PublicKey(), solana.Signature{})
	assert.True(t, IsLedgerError(err))
	assert.False(t, errors.Is(err, ErrNotFoundYet), "real failures must not look like the waiting state")
}
