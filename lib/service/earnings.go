package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/labelops/royhub/common"
	"github.com/labelops/royhub/db/models"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

type EarningResult struct {
	Earning   *models.Earning  `json:"earning"`
	BrandID   int64            `json:"brand_id"`
	Recouped  int64            `json:"recouped_amount"`
	Remainder int64            `json:"remainder"`
	Royalties []models.Royalty `json:"royalties"`
}

// RecordEarning is the single entry point for earning ingestion. Inside one
// database transaction, holding the release row lock, it records the earning,
// recoups outstanding expenses and distributes the remainder to the artists
// on the release. Either every row commits or none do.
//
// Lock contention with a concurrent earning for the same release is retried
// a bounded number of times; exhaustion returns ErrLockContention with no
// rows written.
func (svc *Service) RecordEarning(ctx context.Context, releaseID int64, category string, amount int64, description string, date time.Time, calculateRoyalties bool) (*EarningResult, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	if !common.ValidCategory(category) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	var result *EarningResult
	var splits []models.RoyaltySplit
	operation := func() error {
		res, sp, err := svc.recordEarningTx(ctx, releaseID, category, amount, description, date, calculateRoyalties)
		if err != nil {
			if isLockContention(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		result = res
		splits = sp
		return nil
	}
	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), svc.Config.EarningLockRetries), ctx))
	if err != nil {
		if isLockContention(err) {
			svc.Logger.Warnf("Giving up on release lock [release_id:%d]: %v", releaseID, err)
			return nil, ErrLockContention
		}
		return nil, err
	}

	svc.publishEarningEvents(result, splits)
	return result, nil
}

func (svc *Service) recordEarningTx(ctx context.Context, releaseID int64, category string, amount int64, description string, date time.Time, calculateRoyalties bool) (result *EarningResult, splits []models.RoyaltySplit, err error) {
	err = svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%ds'", svc.Config.EarningLockTimeout)); err != nil {
			return err
		}

		// Serialize earnings per release: the read of the recoupment balance
		// and the inserts below must not interleave with another earning for
		// the same release, or the release could under- or over-recoup.
		release := new(models.Release)
		if err := tx.NewSelect().Model(release).Where("id = ?", releaseID).For("UPDATE").Scan(ctx); err != nil {
			return err
		}

		earning := &models.Earning{
			ReleaseID:    releaseID,
			Category:     category,
			Amount:       amount,
			Description:  description,
			DateRecorded: date,
		}
		if _, err := tx.NewInsert().Model(earning).Exec(ctx); err != nil {
			return err
		}

		result = &EarningResult{Earning: earning, BrandID: release.BrandID, Remainder: amount, Royalties: []models.Royalty{}}
		if !calculateRoyalties {
			return nil
		}

		balance, err := recoupmentBalance(ctx, tx, releaseID)
		if err != nil {
			return err
		}
		recouped, remainder := RecoupSplit(amount, balance)
		result.Recouped = recouped
		result.Remainder = remainder

		if recouped > 0 {
			// dated with the earning's date, not wall clock, so historical
			// reconstructions stay deterministic
			expense := &models.RecoupableExpense{
				ReleaseID:    releaseID,
				Description:  common.ExpenseDescriptionRecouped,
				Amount:       -recouped,
				DateRecorded: date,
			}
			if _, err := tx.NewInsert().Model(expense).Exec(ctx); err != nil {
				return err
			}
		}

		splits = []models.RoyaltySplit{}
		err = tx.NewSelect().Model(&splits).
			Where("release_id = ? AND category = ?", releaseID, category).
			OrderExpr("artist_id ASC").
			Scan(ctx)
		if err != nil {
			return err
		}
		for _, split := range splits {
			if split.Basis != common.BasisRevenue {
				svc.Logger.Warnf("Skipping split with unrecognized basis [split_id:%d basis:%s]", split.ID, split.Basis)
			}
		}

		if remainder <= 0 {
			return nil
		}

		for _, share := range ComputeShares(splits, remainder) {
			// truncation can leave a share at zero; only positive shares
			// become ledger rows
			if share.Amount == 0 {
				continue
			}
			royalty := models.Royalty{
				ArtistID:     share.ArtistID,
				ReleaseID:    releaseID,
				EarningID:    earning.ID,
				Amount:       share.Amount,
				Description:  "Royalties from " + earning.Description,
				DateRecorded: earning.DateRecorded,
			}
			if _, err := tx.NewInsert().Model(&royalty).Exec(ctx); err != nil {
				return err
			}
			result.Royalties = append(result.Royalties, royalty)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return result, splits, nil
}

// publishEarningEvents notifies every artist on the release, including the
// ones without a payable share: stakeholders still see the earning with a
// "(Not applied)" status when it was fully recouped.
func (svc *Service) publishEarningEvents(result *EarningResult, splits []models.RoyaltySplit) {
	amounts := map[int64]int64{}
	for _, royalty := range result.Royalties {
		amounts[royalty.ArtistID] = royalty.Amount
	}
	for _, split := range splits {
		status := common.RoyaltyStatusApplied
		amount, ok := amounts[split.ArtistID]
		if !ok {
			status = common.RoyaltyStatusNotApplied
		}
		svc.EventPubSub.Publish(common.EventTypeEarningPosted, LedgerEvent{
			Type:        common.EventTypeEarningPosted,
			BrandID:     result.BrandID,
			ArtistID:    split.ArtistID,
			ReleaseID:   result.Earning.ReleaseID,
			EarningID:   result.Earning.ID,
			Category:    result.Earning.Category,
			Amount:      amount,
			Status:      status,
			Description: result.Earning.Description,
			Date:        result.Earning.DateRecorded,
		})
	}
}

func (svc *Service) EarningsForRelease(ctx context.Context, releaseID int64) ([]models.Earning, error) {
	earnings := []models.Earning{}
	err := svc.DB.NewSelect().Model(&earnings).Where("release_id = ?", releaseID).OrderExpr("id ASC").Scan(ctx)
	return earnings, err
}

// isLockContention reports whether err is the Postgres lock_not_available
// error raised when the per-release row lock times out.
func isLockContention(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "55P03"
	}
	return false
}
