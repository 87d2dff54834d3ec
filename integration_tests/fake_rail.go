package integration_tests

import (
	"context"
	"fmt"
	"sync"

	"github.com/labelops/royhub/gateway"
)

// FakeRail is a scriptable in-memory rail. Transfers to account numbers in
// failFor fail; everything else succeeds with a deterministic reference.
type FakeRail struct {
	mu            sync.Mutex
	walletBalance int64
	failFor       map[string]bool
	transfers     []gateway.TransferRequest
}

func NewFakeRail(walletBalance int64) *FakeRail {
	return &FakeRail{
		walletBalance: walletBalance,
		failFor:       map[string]bool{},
	}
}

func (rail *FakeRail) FailTransfersTo(accountNumber string, fail bool) {
	rail.mu.Lock()
	defer rail.mu.Unlock()
	rail.failFor[accountNumber] = fail
}

func (rail *FakeRail) Transfers() []gateway.TransferRequest {
	rail.mu.Lock()
	defer rail.mu.Unlock()
	out := make([]gateway.TransferRequest, len(rail.transfers))
	copy(out, rail.transfers)
	return out
}

func (rail *FakeRail) SendTransfer(ctx context.Context, req gateway.TransferRequest) (*gateway.TransferResponse, error) {
	rail.mu.Lock()
	defer rail.mu.Unlock()
	if rail.failFor[req.AccountNumber] {
		return nil, fmt.Errorf("transfer rejected by rail for account %s", req.AccountNumber)
	}
	rail.transfers = append(rail.transfers, req)
	return &gateway.TransferResponse{ReferenceNumber: fmt.Sprintf("TRF-%06d", len(rail.transfers))}, nil
}

func (rail *FakeRail) GetWalletBalance(ctx context.Context) (int64, error) {
	rail.mu.Lock()
	defer rail.mu.Unlock()
	return rail.walletBalance, nil
}

var _ gateway.RailClient = (*FakeRail)(nil)
