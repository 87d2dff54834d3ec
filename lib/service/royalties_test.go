package service

import (
	"testing"

	"github.com/labelops/royhub/common"
	"github.com/labelops/royhub/db/models"
	"github.com/stretchr/testify/assert"
)

func streamingSplit(artistID int64, percentage float64) models.RoyaltySplit {
	return models.RoyaltySplit{
		ArtistID:   artistID,
		Category:   common.CategoryStreaming,
		Percentage: percentage,
		Basis:      common.BasisRevenue,
	}
}

func TestComputeSharesEvenSplit(t *testing.T) {
	splits := []models.RoyaltySplit{
		streamingSplit(1, 0.5),
		streamingSplit(2, 0.5),
	}

	shares := ComputeShares(splits, 500)
	assert.Len(t, shares, 2)
	assert.Equal(t, int64(250), shares[0].Amount)
	assert.Equal(t, int64(250), shares[1].Amount)
}

func TestComputeSharesSkipsUnknownBasis(t *testing.T) {
	splits := []models.RoyaltySplit{
		streamingSplit(1, 0.5),
		{ArtistID: 2, Category: common.CategoryStreaming, Percentage: 0.5, Basis: "net_receipts"},
	}

	shares := ComputeShares(splits, 500)
	assert.Len(t, shares, 1)
	assert.Equal(t, int64(1), shares[0].ArtistID)
}

func TestComputeSharesOrderedByArtist(t *testing.T) {
	splits := []models.RoyaltySplit{
		streamingSplit(9, 0.25),
		streamingSplit(1, 0.25),
		streamingSplit(5, 0.25),
	}

	shares := ComputeShares(splits, 1000)
	assert.Equal(t, int64(1), shares[0].ArtistID)
	assert.Equal(t, int64(5), shares[1].ArtistID)
	assert.Equal(t, int64(9), shares[2].ArtistID)
}

func TestComputeSharesDeterministic(t *testing.T) {
	splits := []models.RoyaltySplit{
		streamingSplit(1, 0.3),
		streamingSplit(2, 0.3),
		streamingSplit(3, 0.4),
	}

	first := ComputeShares(splits, 12345)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ComputeShares(splits, 12345))
	}
}

// The distributed total matches remainder * ΣP within one minor unit per
// artist, and never exceeds it.
func TestComputeSharesSumTolerance(t *testing.T) {
	splits := []models.RoyaltySplit{
		streamingSplit(1, 1.0 / 3),
		streamingSplit(2, 1.0 / 3),
		streamingSplit(3, 1.0 / 3),
	}

	remainder := int64(1000)
	shares := ComputeShares(splits, remainder)
	var sum int64
	for _, share := range shares {
		sum += share.Amount
	}
	assert.LessOrEqual(t, sum, remainder)
	assert.GreaterOrEqual(t, sum, remainder-int64(len(splits)))
}

func TestComputeSharesEmptyRemainderStillZeroShares(t *testing.T) {
	shares := ComputeShares([]models.RoyaltySplit{streamingSplit(1, 0.5)}, 0)
	assert.Len(t, shares, 1)
	assert.Equal(t, int64(0), shares[0].Amount)
}
