package service

import (
	"context"

	"github.com/labelops/royhub/db/models"
)

func (svc *Service) CreateBrand(ctx context.Context, brand *models.Brand) (*models.Brand, error) {
	_, err := svc.DB.NewInsert().Model(brand).Exec(ctx)
	return brand, err
}

func (svc *Service) UpdateBrand(ctx context.Context, brand *models.Brand) (*models.Brand, error) {
	_, err := svc.DB.NewUpdate().Model(brand).WherePK().Exec(ctx)
	return brand, err
}

func (svc *Service) FindBrand(ctx context.Context, brandID int64) (*models.Brand, error) {
	var brand models.Brand
	err := svc.DB.NewSelect().Model(&brand).Where("id = ?", brandID).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &brand, nil
}
