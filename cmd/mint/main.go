// The mint command performs a direct mint: it signs the full six-instruction
// transaction with the local keypair and submits it to the cluster.
// Usage: KEYPAIR_PATH=owner.keypair go run ./cmd/mint
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/solana-developers/solana-pay-nft-minter/internal/client"
	"github.com/solana-developers/solana-pay-nft-minter/internal/config"
	"github.com/solana-developers/solana-pay-nft-minter/internal/keystore"
	"github.com/solana-developers/solana-pay-nft-minter/internal/logger"
	"github.com/solana-developers/solana-pay-nft-minter/mint"

	"github.com/gagliardetto/solana-go"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path := config.GetKeypairPath()
	if path == "" {
		return fmt.Errorf("KEYPAIR_PATH not set")
	}

	log, err := logger.New(config.GetLogDev())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	password, err := keystore.PromptPassword("Enter keypair password")
	if err != nil {
		return err
	}
	defer clear(password)

	priv, err := keystore.Decrypt(path, password)
	if err != nil {
		return fmt.Errorf("failed to decrypt keypair: %w", err)
	}
	defer clear(priv)

	owner := priv.PublicKey()
	ledger := client.NewSolanaClient(config.GetSolanaRPCURL())

	minter := mint.NewMinter(
		ledger,
		mint.DefaultMetadataURIs,
		config.GetMintName(),
		config.GetMintSymbol(),
		log,
	)

	sig, asset, err := minter.MintNFT(context.Background(), owner, func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(owner) {
			return &priv
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("mint failed: %w", err)
	}

	fmt.Printf("minted NFT %s\ntransaction %s\n", asset, sig)
	return nil
}
