// The qr command runs one QR mint session: it writes the scannable code to a
// PNG file and polls the cluster until interrupted, logging every mint
// transaction submitted against the session's reference key.
// Usage: SERVICE_URL=https://example.com/transaction go run ./cmd/qr [qr.png]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/solana-developers/solana-pay-nft-minter/internal/client"
	"github.com/solana-developers/solana-pay-nft-minter/internal/config"
	"github.com/solana-developers/solana-pay-nft-minter/internal/logger"
	"github.com/solana-developers/solana-pay-nft-minter/mint"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

const qrSizePixels = 512

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

	out := "qr.png"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	log, err := logger.New(config.GetLogDev())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	ledger := client.NewSolanaClient(config.GetSolanaRPCURL())

	session := mint.NewQRSession(
		ledger,
		config.GetServiceURL(),
		config.GetPollInterval(),
		func(sig solana.Signature) {
			log.Info("mint confirmed", zap.String("signature", sig.String()))
		},
		log,
	)
	defer session.Close()

	png, err := session.QRCode(qrSizePixels)
	if err != nil {
		return fmt.Errorf("failed to render QR code: %w", err)
	}
	if err := os.WriteFile(out, png, 0644); err != nil {
		return fmt.Errorf("failed to write QR code: %w", err)
	}

	log.Info("QR session started",
		zap.String("qr", out),
		zap.String("reference", session.Reference().String()),
		zap.String("url", session.MintURL()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session.Start(ctx)
	return nil
}
