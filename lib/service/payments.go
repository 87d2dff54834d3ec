package service

import (
	"context"

	"github.com/labelops/royhub/db/models"
)

// RecordManualPayment appends an off-rail payment (cash, legacy transfer).
// No payment method, no reference number, no processing fee.
func (svc *Service) RecordManualPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if payment.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	_, err := svc.DB.NewInsert().Model(payment).Exec(ctx)
	return payment, err
}

func (svc *Service) PaymentsForArtist(ctx context.Context, artistID int64) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := svc.DB.NewSelect().Model(&payments).Where("artist_id = ?", artistID).OrderExpr("id ASC").Scan(ctx)
	return payments, err
}
