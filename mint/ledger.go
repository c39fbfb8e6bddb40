package mint

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Blockhash is a recent blockhash together with the last block height
// at which a transaction built on it is still accepted by the cluster.
type Blockhash struct {
	Hash                 solana.Hash
	LastValidBlockHeight uint64
}

// Ledger is the subset of Solana RPC this package needs.
// Implemented by internal/client.SolanaClient; test code substitutes stubs.
type Ledger interface {
	// MinimumRentForMint returns the rent-exempt balance for a mint account.
	MinimumRentForMint(ctx context.Context) (uint64, error)

	// LatestBlockhash returns a fresh blockhash and its validity bound.
	LatestBlockhash(ctx context.Context) (Blockhash, error)

	// BlockHeight returns the current block height at confirmed commitment.
	BlockHeight(ctx context.Context) (uint64, error)

	// SendTransaction submits a fully signed transaction once, no retries.
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)

	// SignaturesForAddress returns signatures of confirmed transactions
	// mentioning addr, newest first, excluding until and anything older.
	SignaturesForAddress(ctx context.Context, addr solana.PublicKey, until solana.Signature) ([]solana.Signature, error)
}
