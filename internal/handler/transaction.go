package handler

import (
	"encoding/json"
	"net/http"

	"github.com/solana-developers/solana-pay-nft-minter/internal/model"
	"github.com/solana-developers/solana-pay-nft-minter/mint"

	"go.uber.org/zap"
)

// confirmMessage is shown by the wallet next to the approve button.
const confirmMessage = "Confirm to Mint NFT"

// TransactionHandler serves the Solana Pay transaction-request endpoint.
type TransactionHandler struct {
	svc *mint.TransactionService
	log *zap.Logger
}

// NewTransactionHandler creates a TransactionHandler.
func NewTransactionHandler(svc *mint.TransactionService, log *zap.Logger) *TransactionHandler {
	return &TransactionHandler{svc: svc, log: log}
}

// Transaction dispatches GET and POST /transaction.
func (h *TransactionHandler) Transaction(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.describe(w)
	case http.MethodPost:
		h.prepare(w, r)
	default:
		http.Error(w, "Method not allowed. Should be GET or POST", http.StatusMethodNotAllowed)
	}
}

// describe handles GET /transaction
// @Summary      Describe the minting endpoint
// @Description  Returns the label and icon a wallet displays before requesting the real transaction
// @Tags         transaction
// @Produce      json
// @Success      200  {object}  model.TransactionInfoResponse
// @Router       /transaction [get]
func (h *TransactionHandler) describe(w http.ResponseWriter) {
	info := h.svc.Describe()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(model.TransactionInfoResponse{
		Label: info.Label,
		Icon:  info.Icon,
	})
}

// prepare handles POST /transaction?reference=<base58 key>
// @Summary      Build a partially signed mint transaction
// @Description  Builds the mint transaction for the posted account, tagged with the reference key, signed by the asset keypair only
// @Tags         transaction
// @Accept       json
// @Produce      json
// @Param        reference  query     string                    true  "Reference public key (base58)"
// @Param        request    body      model.TransactionRequest  true  "Signer account"
// @Success      200        {object}  model.TransactionResponse
// @Failure      400        {object}  model.ErrorResponse
// @Failure      500        {object}  model.ErrorResponse
// @Router       /transaction [post]
func (h *TransactionHandler) prepare(w http.ResponseWriter, r *http.Request) {
	var req model.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reference := r.URL.Query().Get("reference")

	encoded, err := h.svc.Prepare(r.Context(), req.Account, reference)
	if err != nil {
		if mint.IsInvalidRequest(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Internal cause is logged, never leaked to the wallet.
		h.log.Error("failed to build mint transaction", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "error creating transaction")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(model.TransactionResponse{
		Transaction: encoded,
		Message:     confirmMessage,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}
