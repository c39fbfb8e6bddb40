package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	SolanaRPCURL   string `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	MintLabel      string `envconfig:"MINT_LABEL" default:"NFT Minter"`
	MintIconURL    string `envconfig:"MINT_ICON_URL" default:"https://solanapay.com/src/img/branding/Solanapay.com/downloads/gradient.svg"`
	MintName       string `envconfig:"MINT_NAME" default:"OPOS"`
	MintSymbol     string `envconfig:"MINT_SYMBOL" default:"OPOS"`
	PollIntervalMS int    `envconfig:"POLL_INTERVAL_MS" default:"1000"`
	KeypairPath    string `envconfig:"KEYPAIR_PATH"`
	ServiceURL     string `envconfig:"SERVICE_URL" default:"http://localhost:8080/transaction"`
	LogDev         bool   `envconfig:"LOG_DEV" default:"false"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetSolanaRPCURL returns Solana RPC URL from configuration
func GetSolanaRPCURL() string {
	return Get().SolanaRPCURL
}

// GetMintLabel returns the display label wallets show before fetching the transaction
func GetMintLabel() string {
	return Get().MintLabel
}

// GetMintIconURL returns the icon URL wallets show before fetching the transaction
func GetMintIconURL() string {
	return Get().MintIconURL
}

// GetMintName returns the on-chain display name for minted assets
func GetMintName() string {
	return Get().MintName
}

// GetMintSymbol returns the on-chain symbol for minted assets
func GetMintSymbol() string {
	return Get().MintSymbol
}

// GetPollInterval returns the QR session polling cadence
func GetPollInterval() time.Duration {
	return time.Duration(Get().PollIntervalMS) * time.Millisecond
}

// GetKeypairPath returns the path to the encrypted signer keypair file
func GetKeypairPath() string {
	return Get().KeypairPath
}

// GetServiceURL returns the public transaction-request endpoint URL
func GetServiceURL() string {
	return Get().ServiceURL
}

// GetLogDev reports whether development logging is enabled
func GetLogDev() bool {
	return Get().LogDev
}
