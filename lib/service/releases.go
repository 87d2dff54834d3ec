package service

import (
	"context"
	"database/sql"

	"github.com/labelops/royhub/db/models"
	"github.com/uptrace/bun"
)

func (svc *Service) CreateRelease(ctx context.Context, release *models.Release) (*models.Release, error) {
	_, err := svc.DB.NewInsert().Model(release).Exec(ctx)
	return release, err
}

func (svc *Service) UpdateRelease(ctx context.Context, release *models.Release) (*models.Release, error) {
	_, err := svc.DB.NewUpdate().Model(release).WherePK().Exec(ctx)
	return release, err
}

func (svc *Service) FindRelease(ctx context.Context, releaseID int64) (*models.Release, error) {
	var release models.Release
	err := svc.DB.NewSelect().Model(&release).Where("id = ?", releaseID).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &release, nil
}

// AddExpense appends a manual recoupable expense entry. Negative amounts are
// allowed for corrections but must not drive the release's recoupment
// balance below zero; the check runs under the same release row lock the
// earning path takes.
func (svc *Service) AddExpense(ctx context.Context, expense *models.RecoupableExpense) (*models.RecoupableExpense, error) {
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		release := new(models.Release)
		if err := tx.NewSelect().Model(release).Where("id = ?", expense.ReleaseID).For("UPDATE").Scan(ctx); err != nil {
			return err
		}
		if expense.Amount < 0 {
			balance, err := recoupmentBalance(ctx, tx, expense.ReleaseID)
			if err != nil {
				return err
			}
			if balance+expense.Amount < 0 {
				return ErrExpenseBalance
			}
		}
		_, err := tx.NewInsert().Model(expense).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

func (svc *Service) ExpensesForRelease(ctx context.Context, releaseID int64) ([]models.RecoupableExpense, error) {
	expenses := []models.RecoupableExpense{}
	err := svc.DB.NewSelect().Model(&expenses).Where("release_id = ?", releaseID).OrderExpr("id ASC").Scan(ctx)
	return expenses, err
}
