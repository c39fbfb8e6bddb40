package mint

import (
	"context"
	"encoding/base64"
	"math/rand"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// ServiceInfo is the static display metadata wallets show before requesting
// the real transaction.
type ServiceInfo struct {
	Label string
	Icon  string
}

// TransactionService builds partially signed mint transactions for remote
// wallets. It is stateless per request: every call allocates a fresh asset
// keypair and blockhash, so it is safe under arbitrary concurrency.
type TransactionService struct {
	ledger  Ledger
	info    ServiceInfo
	catalog []string
	name    string
	symbol  string
	log     *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewTransactionService creates a TransactionService issuing assets named
// name/symbol with off-chain metadata picked from catalog.
func NewTransactionService(ledger Ledger, info ServiceInfo, catalog []string, name, symbol string, log *zap.Logger) *TransactionService {
	return &TransactionService{
		ledger:  ledger,
		info:    info,
		catalog: catalog,
		name:    name,
		symbol:  symbol,
		log:     log,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Describe returns the label and icon for the wallet's trust prompt.
func (s *TransactionService) Describe() ServiceInfo {
	return s.info
}

// Prepare builds the five-instruction mint transaction for the requester's
// account, tags the first instruction with the reference key so the web
// client can find the transaction later, partially signs with the asset
// keypair, and returns the base64-encoded wire form for the wallet to
// complete and submit.
//
// This path does not revoke the mint authority after issuance; it trades
// supply-finality for speed, matching the direct path everywhere else.
//
// Missing or malformed inputs fail with InvalidRequestError before any
// ledger contact. Ledger failures are wrapped as LedgerError.
func (s *TransactionService) Prepare(ctx context.Context, account, reference string) (string, error) {
	if account == "" {
		return "", &InvalidRequestError{Reason: "account not provided"}
	}
	if reference == "" {
		return "", &InvalidRequestError{Reason: "reference not provided"}
	}

	owner, err := solana.PublicKeyFromBase58(account)
	if err != nil {
		return "", &InvalidRequestError{Reason: "account is not a valid base58 public key"}
	}
	ref, err := solana.PublicKeyFromBase58(reference)
	if err != nil {
		return "", &InvalidRequestError{Reason: "reference is not a valid base58 public key"}
	}

	asset := solana.NewWallet()
	defer clear(asset.PrivateKey)
	assetKey := asset.PublicKey()

	rent, err := s.ledger.MinimumRentForMint(ctx)
	if err != nil {
		return "", &LedgerError{Op: "rent lookup", Err: err}
	}

	s.mu.Lock()
	uri, err := PickRandomURI(s.catalog, s.rng)
	s.mu.Unlock()
	if err != nil {
		return "", err
	}

	instructions, err := BuildInstructions(Params{
		Owner:           owner,
		Payer:           owner,
		Mint:            assetKey,
		Name:            s.name,
		Symbol:          s.symbol,
		URI:             uri,
		RentLamports:    rent,
		RevokeAuthority: false,
	})
	if err != nil {
		return "", err
	}

	// Tag the first instruction only, so the reference is recorded exactly
	// once on the eventual transaction.
	tagged, err := withReference(instructions[0], ref)
	if err != nil {
		return "", err
	}
	instructions[0] = tagged

	blockhash, err := s.ledger.LatestBlockhash(ctx)
	if err != nil {
		return "", &LedgerError{Op: "blockhash lookup", Err: err}
	}

	tx, err := solana.NewTransaction(
		instructions,
		blockhash.Hash,
		solana.TransactionPayer(owner),
	)
	if err != nil {
		return "", err
	}

	// Sign with the asset keypair only. The requester adds the fee payer
	// signature on their device before submitting.
	if _, err := tx.PartialSign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(assetKey) {
			return &asset.PrivateKey
		}
		return nil
	}); err != nil {
		return "", err
	}

	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", err
	}

	s.log.Debug("prepared mint transaction",
		zap.String("account", owner.String()),
		zap.String("reference", ref.String()),
		zap.String("mint", assetKey.String()),
	)

	return base64.StdEncoding.EncodeToString(raw), nil
}
