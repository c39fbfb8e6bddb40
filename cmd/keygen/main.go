// The keygen command generates a Solana keypair and stores it encrypted for
// use by cmd/mint.
// Usage: go run ./cmd/keygen owner.keypair
package main

import (
	"fmt"
	"os"

	"github.com/solana-developers/solana-pay-nft-minter/internal/keystore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) != 2 {
		return fmt.Errorf("usage: keygen <path/to/file.keypair>")
	}
	path := os.Args[1]

	password, err := keystore.PromptPassword("Enter new keypair password")
	if err != nil {
		return err
	}
	defer clear(password)

	confirm, err := keystore.PromptPassword("Confirm password")
	if err != nil {
		return err
	}
	defer clear(confirm)

	if string(password) != string(confirm) {
		return fmt.Errorf("passwords do not match")
	}

	address, err := keystore.Generate(path, password)
	if err != nil {
		return fmt.Errorf("failed to generate keypair: %w", err)
	}

	fmt.Printf("generated keypair %s\naddress %s\n", path, address)
	return nil
}
