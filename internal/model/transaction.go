package model

// TransactionInfoResponse represents response for GET /transaction
type TransactionInfoResponse struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// TransactionRequest represents request body for POST /transaction
type TransactionRequest struct {
	Account string `json:"account"`
}

// TransactionResponse represents response for POST /transaction
type TransactionResponse struct {
	Transaction string `json:"transaction"`
	Message     string `json:"message"`
}
