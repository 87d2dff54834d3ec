package service

import (
	"context"
	"sort"

	"github.com/labelops/royhub/common"
	"github.com/labelops/royhub/db/models"
)

type Share struct {
	ArtistID int64
	Amount   int64
}

// ComputeShares fans the post-recoupment remainder out to the artists on the
// given splits. Only the revenue basis computes an amount; splits with an
// unrecognized basis yield no share. The result is ordered by artist id so a
// replay over the same configuration always produces the same royalty set.
func ComputeShares(splits []models.RoyaltySplit, remainder int64) []Share {
	shares := make([]Share, 0, len(splits))
	for _, split := range splits {
		if split.Basis != common.BasisRevenue {
			continue
		}
		shares = append(shares, Share{
			ArtistID: split.ArtistID,
			// truncating division: the sum over all artists can fall short of
			// remainder * ΣP by at most one minor unit per artist, never over
			Amount: int64(float64(remainder) * split.Percentage),
		})
	}
	sort.Slice(shares, func(i, j int) bool { return shares[i].ArtistID < shares[j].ArtistID })
	return shares
}

func (svc *Service) SplitsForRelease(ctx context.Context, releaseID int64, category string) ([]models.RoyaltySplit, error) {
	splits := []models.RoyaltySplit{}
	query := svc.DB.NewSelect().Model(&splits).Where("release_id = ?", releaseID)
	if category != "" {
		query.Where("category = ?", category)
	}
	err := query.OrderExpr("artist_id ASC").Scan(ctx)
	return splits, err
}

func (svc *Service) RoyaltiesForArtist(ctx context.Context, artistID int64) ([]models.Royalty, error) {
	royalties := []models.Royalty{}
	err := svc.DB.NewSelect().Model(&royalties).Where("artist_id = ?", artistID).OrderExpr("id ASC").Scan(ctx)
	return royalties, err
}
