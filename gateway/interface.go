package gateway

import (
	"context"
)

// RailClient is the boundary to the external payment rail. Implementations
// must normalize every failure mode (transport errors, non-2xx responses,
// malformed bodies) into a plain error; nothing past this interface may
// panic into the ledger code.
type RailClient interface {
	SendTransfer(ctx context.Context, req TransferRequest) (*TransferResponse, error)
	GetWalletBalance(ctx context.Context) (int64, error)
}

type TransferRequest struct {
	// Amount in minor units, net of the processing fee.
	Amount        int64  `json:"amount"`
	BankCode      string `json:"bank_code"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	Description   string `json:"description,omitempty"`
	// IdempotencyKey deduplicates retried transfers on the rail side.
	IdempotencyKey string `json:"idempotency_key"`
}

type TransferResponse struct {
	ReferenceNumber string `json:"reference_number"`
}
