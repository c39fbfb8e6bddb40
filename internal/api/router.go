package api

import (
	"net/http"

	_ "github.com/solana-developers/solana-pay-nft-minter/docs"
	"github.com/solana-developers/solana-pay-nft-minter/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(transactionHandler *handler.TransactionHandler) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Solana Pay transaction request endpoint
	mux.HandleFunc("/transaction", transactionHandler.Transaction)

	return mux
}
