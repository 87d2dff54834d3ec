package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/labelops/royhub/common"
	"github.com/labelops/royhub/db/models"
	"github.com/uptrace/bun"
)

// small float headroom so 3 × 1/3 style configurations pass the sum check
const splitSumEpsilon = 1e-9

// UpsertRoyaltySplit creates or replaces the (release, artist, category)
// split. The ≤100% invariant across all artists on the release is enforced
// here, at edit time, not when earnings are processed.
func (svc *Service) UpsertRoyaltySplit(ctx context.Context, split *models.RoyaltySplit) (*models.RoyaltySplit, error) {
	if !common.ValidCategory(split.Category) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, split.Category)
	}
	if split.Percentage < 0 || split.Percentage > 1 {
		return nil, ErrInvalidPercentage
	}
	if split.Basis == "" {
		split.Basis = common.BasisRevenue
	}

	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var othersSum float64
		err := tx.NewSelect().
			Model((*models.RoyaltySplit)(nil)).
			ColumnExpr("COALESCE(SUM(percentage), 0)").
			Where("release_id = ? AND category = ? AND artist_id != ?", split.ReleaseID, split.Category, split.ArtistID).
			Scan(ctx, &othersSum)
		if err != nil {
			return err
		}
		if othersSum+split.Percentage > 1+splitSumEpsilon {
			return ErrSplitSumExceeded
		}
		_, err = tx.NewInsert().Model(split).
			On("CONFLICT (release_id, artist_id, category) DO UPDATE").
			Set("percentage = EXCLUDED.percentage").
			Set("basis = EXCLUDED.basis").
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return split, nil
}
