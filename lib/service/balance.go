package service

import (
	"context"

	"github.com/labelops/royhub/db/models"
)

type BalanceSummary struct {
	TotalRoyalties int64 `json:"total_royalties"`
	TotalPayments  int64 `json:"total_payments"`
	Balance        int64 `json:"balance"`
}

// ArtistBalance recomputes the artist's payable balance from the ledger rows
// on every call. The balance is never stored redundantly; the append-only
// tables keep this both correct and cheap to audit.
func (svc *Service) ArtistBalance(ctx context.Context, artistID int64) (*BalanceSummary, error) {
	summary := &BalanceSummary{}

	err := svc.DB.NewSelect().
		Model((*models.Royalty)(nil)).
		ColumnExpr("COALESCE(SUM(amount), 0)").
		Where("artist_id = ?", artistID).
		Scan(ctx, &summary.TotalRoyalties)
	if err != nil {
		return nil, err
	}

	err = svc.DB.NewSelect().
		Model((*models.Payment)(nil)).
		ColumnExpr("COALESCE(SUM(amount), 0)").
		Where("artist_id = ?", artistID).
		Scan(ctx, &summary.TotalPayments)
	if err != nil {
		return nil, err
	}

	summary.Balance = summary.TotalRoyalties - summary.TotalPayments
	return summary, nil
}
