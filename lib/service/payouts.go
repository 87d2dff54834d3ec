package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/labelops/royhub/common"
	"github.com/labelops/royhub/db/models"
	"github.com/labelops/royhub/gateway"
)

type BatchResult struct {
	Paid   int64 `json:"paid"`
	Failed int64 `json:"failed"`
}

// RunPayoutBatch walks every artist of the brand once and pays out the ones
// whose balance strictly exceeds their payout point. Artists are processed
// by a bounded worker pool since every transfer is a blocking rail
// round-trip. One artist's failure never aborts or rolls back the others;
// the batch always completes and reports aggregate counts.
//
// Re-running the batch is safe: balances are recomputed from the ledger, so
// an artist paid down below their payout point is simply skipped next run.
func (svc *Service) RunPayoutBatch(ctx context.Context, brandID int64) (*BatchResult, error) {
	brand, err := svc.FindBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}
	artists, err := svc.ArtistsForBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}

	// advisory only: the per-artist transfer result stays authoritative
	if wallet, err := svc.RailClient.GetWalletBalance(ctx); err != nil {
		svc.Logger.Warnf("Could not pre-check wallet balance [brand_id:%d]: %v", brandID, err)
	} else {
		svc.Logger.Infof("Starting payout batch [brand_id:%d artists:%d wallet:%d]", brandID, len(artists), wallet)
	}

	workers := svc.Config.PayoutWorkers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan models.Artist)
	result := &BatchResult{}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for artist := range jobs {
				payment, err := svc.settleArtist(ctx, brand, &artist)
				switch {
				case err == nil:
					atomic.AddInt64(&result.Paid, 1)
					svc.Logger.Infof("Paid artist [artist_id:%d amount:%d reference:%s]", artist.ID, payment.Amount, payment.ReferenceNumber)
				case isPayoutSkip(err):
					svc.Logger.Debugf("Skipping artist [artist_id:%d]: %v", artist.ID, err)
				default:
					atomic.AddInt64(&result.Failed, 1)
					svc.Logger.Errorf("Payout failed [artist_id:%d]: %v", artist.ID, err)
				}
			}
		}()
	}

	// cancellation stops scheduling new artists; in-flight transfers run to
	// completion or timeout before the result is finalized
schedule:
	for _, artist := range artists {
		select {
		case <-ctx.Done():
			break schedule
		case jobs <- artist:
		}
	}
	close(jobs)
	wg.Wait()

	svc.Logger.Infof("Payout batch done [brand_id:%d paid:%d failed:%d]", brandID, result.Paid, result.Failed)
	return result, nil
}

// PayArtist is the single-artist variant used for manual, targeted payouts.
// The same eligibility rules apply; skip reasons come back as typed errors.
func (svc *Service) PayArtist(ctx context.Context, artistID int64) (*models.Payment, error) {
	artist, err := svc.FindArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	brand, err := svc.FindBrand(ctx, artist.BrandID)
	if err != nil {
		return nil, err
	}
	return svc.settleArtist(ctx, brand, artist)
}

func (svc *Service) settleArtist(ctx context.Context, brand *models.Brand, artist *models.Artist) (*models.Payment, error) {
	if artist.HoldPayouts {
		return nil, ErrPayoutsOnHold
	}
	summary, err := svc.ArtistBalance(ctx, artist.ID)
	if err != nil {
		return nil, err
	}
	// strictly exceeds: a balance equal to the payout point does not trigger
	if summary.Balance <= artist.PayoutPoint {
		return nil, ErrBelowPayoutPoint
	}
	method, err := svc.DefaultPaymentMethod(ctx, artist.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoPaymentMethod
		}
		return nil, err
	}

	// the fee is billed to the brand, deducted from the wire amount; the
	// payment row keeps the gross balance paid down
	fee := brand.ProcessingFee
	wireAmount := summary.Balance - fee
	if wireAmount <= 0 {
		return nil, fmt.Errorf("balance %d does not cover the processing fee %d", summary.Balance, fee)
	}

	railCtx, cancel := context.WithTimeout(ctx, time.Duration(svc.Config.RailTimeout)*time.Second)
	defer cancel()
	transfer, err := svc.RailClient.SendTransfer(railCtx, gateway.TransferRequest{
		Amount:         wireAmount,
		BankCode:       method.BankCode,
		AccountName:    method.AccountName,
		AccountNumber:  method.AccountNumber,
		Description:    fmt.Sprintf("Royalty payout for %s", artist.Name),
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ArtistID:        artist.ID,
		PaymentMethodID: method.ID,
		Amount:          summary.Balance,
		ProcessingFee:   fee,
		ReferenceNumber: transfer.ReferenceNumber,
		DatePaid:        time.Now(),
	}
	if _, err := svc.DB.NewInsert().Model(payment).Exec(ctx); err != nil {
		// the transfer went out but the row did not land, this needs an
		// operator to reconcile against the rail's reference number
		svc.Logger.Errorf("Transfer sent but payment row not persisted [artist_id:%d reference:%s]: %v", artist.ID, transfer.ReferenceNumber, err)
		sentry.CaptureException(err)
		return nil, err
	}

	svc.EventPubSub.Publish(common.EventTypePaymentMade, LedgerEvent{
		Type:      common.EventTypePaymentMade,
		BrandID:   brand.ID,
		ArtistID:  artist.ID,
		PaymentID: payment.ID,
		Amount:    payment.Amount,
		Date:      payment.DatePaid,
	})
	return payment, nil
}

func isPayoutSkip(err error) bool {
	return errors.Is(err, ErrPayoutsOnHold) || errors.Is(err, ErrBelowPayoutPoint) || errors.Is(err, ErrNoPaymentMethod)
}
