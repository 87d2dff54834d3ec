package service

import (
	"context"

	"github.com/labelops/royhub/db/models"
)

func (svc *Service) CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	_, err := svc.DB.NewInsert().Model(artist).Exec(ctx)
	return artist, err
}

func (svc *Service) UpdateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	_, err := svc.DB.NewUpdate().Model(artist).WherePK().Exec(ctx)
	return artist, err
}

func (svc *Service) FindArtist(ctx context.Context, artistID int64) (*models.Artist, error) {
	var artist models.Artist
	err := svc.DB.NewSelect().Model(&artist).Where("id = ?", artistID).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (svc *Service) ArtistsForBrand(ctx context.Context, brandID int64) ([]models.Artist, error) {
	artists := []models.Artist{}
	err := svc.DB.NewSelect().Model(&artists).Where("brand_id = ?", brandID).OrderExpr("id ASC").Scan(ctx)
	return artists, err
}

func (svc *Service) AddPaymentMethod(ctx context.Context, method *models.PaymentMethod) (*models.PaymentMethod, error) {
	_, err := svc.DB.NewInsert().Model(method).Exec(ctx)
	return method, err
}

// DefaultPaymentMethod returns the artist's default method, falling back to
// the oldest one on record. sql.ErrNoRows when the artist has none.
func (svc *Service) DefaultPaymentMethod(ctx context.Context, artistID int64) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	err := svc.DB.NewSelect().Model(&method).
		Where("artist_id = ?", artistID).
		OrderExpr("is_default DESC NULLS LAST, id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &method, nil
}
