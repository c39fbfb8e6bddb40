// The server command exposes the Solana Pay transaction-request endpoint
// mobile wallets use to fetch a partially signed mint transaction.
package main

import (
	"net/http"
	"os"

	"github.com/solana-developers/solana-pay-nft-minter/internal/api"
	"github.com/solana-developers/solana-pay-nft-minter/internal/client"
	"github.com/solana-developers/solana-pay-nft-minter/internal/config"
	"github.com/solana-developers/solana-pay-nft-minter/internal/handler"
	"github.com/solana-developers/solana-pay-nft-minter/internal/logger"
	"github.com/solana-developers/solana-pay-nft-minter/mint"

	"go.uber.org/zap"
)

// @title        Solana Pay NFT Minter API
// @version      1.0
// @description  Builds and serves partially signed NFT mint transactions for Solana Pay wallets.
// @BasePath     /
func main() {
	if err := config.Init(); err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(config.GetLogDev())
	if err != nil {
		os.Stderr.WriteString("failed to create logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	ledger := client.NewSolanaClient(config.GetSolanaRPCURL())

	svc := mint.NewTransactionService(
		ledger,
		mint.ServiceInfo{
			Label: config.GetMintLabel(),
			Icon:  config.GetMintIconURL(),
		},
		mint.DefaultMetadataURIs,
		config.GetMintName(),
		config.GetMintSymbol(),
		log,
	)

	router := api.SetupRouter(handler.NewTransactionHandler(svc, log))

	addr := ":" + config.GetPort()
	log.Info("transaction request service listening",
		zap.String("addr", addr),
		zap.String("rpc", config.GetSolanaRPCURL()),
	)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
