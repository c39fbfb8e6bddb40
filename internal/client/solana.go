package client

import (
	"context"
	"fmt"

	"github.com/solana-developers/solana-pay-nft-minter/mint"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// maximum signatures fetched per reference lookup
const signatureLookupLimit = 100

// SolanaClient implements mint.Ledger over a Solana JSON-RPC node.
type SolanaClient struct {
	rpcClient *rpc.Client
	rpcURL    string
}

// NewSolanaClient creates a client for the given RPC endpoint.
func NewSolanaClient(rpcURL string) *SolanaClient {
	return &SolanaClient{
		rpcClient: rpc.New(rpcURL),
		rpcURL:    rpcURL,
	}
}

// MinimumRentForMint returns the rent-exempt balance for a mint account,
// fetched live rather than hardcoded so cluster rent changes are picked up.
func (c *SolanaClient) MinimumRentForMint(ctx context.Context) (uint64, error) {
	lamports, err := c.rpcClient.GetMinimumBalanceForRentExemption(
		ctx,
		mint.MintAccountSize,
		rpc.CommitmentFinalized,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to get rent-exempt minimum: %w", err)
	}
	return lamports, nil
}

// LatestBlockhash returns a fresh blockhash and the last block height at
// which it remains valid.
func (c *SolanaClient) LatestBlockhash(ctx context.Context) (mint.Blockhash, error) {
	// GetRecentBlockhash is deprecated, use GetLatestBlockhash
	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return mint.Blockhash{}, fmt.Errorf("failed to get latest blockhash: %w", err)
	}
	return mint.Blockhash{
		Hash:                 recent.Value.Blockhash,
		LastValidBlockHeight: recent.Value.LastValidBlockHeight,
	}, nil
}

// BlockHeight returns the current block height at confirmed commitment.
func (c *SolanaClient) BlockHeight(ctx context.Context) (uint64, error) {
	height, err := c.rpcClient.GetBlockHeight(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to get block height: %w", err)
	}
	return height, nil
}

// SendTransaction submits a fully signed transaction. At most one attempt;
// retry policy is the caller's decision.
func (c *SolanaClient) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false, // Transaction validation before node
			PreflightCommitment: rpc.CommitmentConfirmed,
		},
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	return sig, nil
}

// SignaturesForAddress returns signatures of confirmed transactions
// mentioning addr, newest first, bounded below by until when non-zero.
func (c *SolanaClient) SignaturesForAddress(ctx context.Context, addr solana.PublicKey, until solana.Signature) ([]solana.Signature, error) {
	limit := signatureLookupLimit
	opts := &rpc.GetSignaturesForAddressOpts{
		Limit:      &limit,
		Commitment: rpc.CommitmentConfirmed,
	}
	if !until.IsZero() {
		opts.Until = until
	}

	results, err := c.rpcClient.GetSignaturesForAddressWithOpts(ctx, addr, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get signatures for address: %w", err)
	}

	sigs := make([]solana.Signature, 0, len(results))
	for _, r := range results {
		sigs = append(sigs, r.Signature)
	}
	return sigs, nil
}
