package service

import (
	"context"

	"github.com/labelops/royhub/db/models"
	"github.com/uptrace/bun"
)

// RecoupSplit computes how much of an earning is absorbed by the release's
// outstanding recoupment balance and what remains for royalty distribution.
// recouped + remainder == amount holds exactly for any input.
func RecoupSplit(amount, balance int64) (recouped, remainder int64) {
	if balance <= 0 {
		return 0, amount
	}
	recouped = balance
	if amount < balance {
		recouped = amount
	}
	return recouped, amount - recouped
}

// ReleaseRecoupmentBalance returns the outstanding recoupment balance for a
// release: the signed sum over all recoupable expense rows.
func (svc *Service) ReleaseRecoupmentBalance(ctx context.Context, releaseID int64) (int64, error) {
	return recoupmentBalance(ctx, svc.DB, releaseID)
}

func recoupmentBalance(ctx context.Context, db bun.IDB, releaseID int64) (int64, error) {
	var balance int64
	err := db.NewSelect().
		Model((*models.RecoupableExpense)(nil)).
		ColumnExpr("COALESCE(SUM(amount), 0)").
		Where("release_id = ?", releaseID).
		Scan(ctx, &balance)
	return balance, err
}
