package mint

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// SignFunc asks the owner's wallet for the private key matching key.
// Returning nil declines the signature request.
type SignFunc func(key solana.PublicKey) *solana.PrivateKey

// Minter performs the direct mint path: it builds the full six-instruction
// set, has the wallet co-sign together with the asset keypair, and submits
// the transaction once.
type Minter struct {
	ledger  Ledger
	catalog []string
	name    string
	symbol  string
	log     *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMinter creates a Minter issuing assets named name/symbol with off-chain
// metadata picked from catalog.
func NewMinter(ledger Ledger, catalog []string, name, symbol string, log *zap.Logger) *Minter {
	return &Minter{
		ledger:  ledger,
		catalog: catalog,
		name:    name,
		symbol:  symbol,
		log:     log,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// MintNFT mints a one-of-a-kind token to owner, with owner paying fees and
// acting as mint authority. The mint authority is revoked in the same
// transaction, so supply is permanently one.
//
// Wallet rejection and ledger failures are returned as-is; there is no retry.
// Returns the submission signature and the new asset's address.
func (m *Minter) MintNFT(ctx context.Context, owner solana.PublicKey, sign SignFunc) (solana.Signature, solana.PublicKey, error) {
	asset := solana.NewWallet()
	defer clear(asset.PrivateKey)
	assetKey := asset.PublicKey()

	rent, err := m.ledger.MinimumRentForMint(ctx)
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, &LedgerError{Op: "rent lookup", Err: err}
	}

	m.mu.Lock()
	uri, err := PickRandomURI(m.catalog, m.rng)
	m.mu.Unlock()
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}

	instructions, err := BuildInstructions(Params{
		Owner:           owner,
		Payer:           owner,
		Mint:            assetKey,
		Name:            m.name,
		Symbol:          m.symbol,
		URI:             uri,
		RentLamports:    rent,
		RevokeAuthority: true,
	})
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}

	blockhash, err := m.ledger.LatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, &LedgerError{Op: "blockhash lookup", Err: err}
	}

	// The cluster enforces blockhash expiry at submission; check the window
	// explicitly here so a stale transaction is never sent at all.
	height, err := m.ledger.BlockHeight(ctx)
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, &LedgerError{Op: "block height lookup", Err: err}
	}
	if height > blockhash.LastValidBlockHeight {
		return solana.Signature{}, solana.PublicKey{}, ErrBlockhashExpired
	}

	tx, err := solana.NewTransaction(
		instructions,
		blockhash.Hash,
		solana.TransactionPayer(owner),
	)
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}

	// Ask the wallet before signing anything so a declined request is
	// surfaced as a rejection rather than a generic signing error.
	ownerKey := sign(owner)
	if ownerKey == nil {
		return solana.Signature{}, solana.PublicKey{}, ErrWalletRejected
	}

	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(assetKey) {
			return &asset.PrivateKey
		}
		if key.Equals(owner) {
			return ownerKey
		}
		return nil
	}); err != nil {
		return solana.Signature{}, solana.PublicKey{}, err
	}

	sig, err := m.ledger.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, solana.PublicKey{}, &LedgerError{Op: "transaction submission", Err: err}
	}

	m.log.Info("minted NFT",
		zap.String("mint", assetKey.String()),
		zap.String("signature", sig.String()),
		zap.String("uri", uri),
	)

	return sig, assetKey, nil
}
