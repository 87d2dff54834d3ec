package integration_tests

import (
	"context"
	"testing"
	"time"

	"github.com/labelops/royhub/common"
	"github.com/labelops/royhub/db/models"
	"github.com/labelops/royhub/lib/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type EarningTestSuite struct {
	suite.Suite
	svc     *service.Service
	brand   *models.Brand
	artistX *models.Artist
	artistY *models.Artist
	release *models.Release
}

func (suite *EarningTestSuite) SetupSuite() {
	svc, err := RoyhubTestServiceInit(NewFakeRail(1_000_000))
	if err != nil {
		suite.T().Fatalf("Error initializing test service: %v", err)
	}
	suite.svc = svc
}

func (suite *EarningTestSuite) SetupTest() {
	err := clearLedger(suite.svc)
	assert.NoError(suite.T(), err)
	suite.brand, err = createBrand(suite.svc, 0)
	assert.NoError(suite.T(), err)
	suite.artistX, err = createArtist(suite.svc, suite.brand.ID, "Artist X", 0, false)
	assert.NoError(suite.T(), err)
	suite.artistY, err = createArtist(suite.svc, suite.brand.ID, "Artist Y", 0, false)
	assert.NoError(suite.T(), err)
	suite.release, err = createRelease(suite.svc, suite.brand.ID, "Night Drive EP")
	assert.NoError(suite.T(), err)
	err = addStreamingSplit(suite.svc, suite.release.ID, suite.artistX.ID, 0.5)
	assert.NoError(suite.T(), err)
	err = addStreamingSplit(suite.svc, suite.release.ID, suite.artistY.ID, 0.5)
	assert.NoError(suite.T(), err)
}

// An earning larger than the outstanding expenses recoups them in full and
// distributes only the remainder.
func (suite *EarningTestSuite) TestRecoupThenDistribute() {
	ctx := context.Background()
	err := addExpense(suite.svc, suite.release.ID, 1000)
	assert.NoError(suite.T(), err)

	result, err := suite.svc.RecordEarning(ctx, suite.release.ID, common.CategoryStreaming, 1500, "Q1 streaming", time.Now(), true)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1000), result.Recouped)
	assert.Equal(suite.T(), int64(500), result.Remainder)
	assert.Len(suite.T(), result.Royalties, 2)
	for _, royalty := range result.Royalties {
		assert.Equal(suite.T(), int64(250), royalty.Amount)
	}

	balance, err := suite.svc.ReleaseRecoupmentBalance(ctx, suite.release.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), balance)

	// the next earning hits a settled ledger and distributes in full
	result, err = suite.svc.RecordEarning(ctx, suite.release.ID, common.CategoryStreaming, 300, "Q2 streaming", time.Now(), true)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), result.Recouped)
	assert.Equal(suite.T(), int64(300), result.Remainder)

	summary, err := suite.svc.ArtistBalance(ctx, suite.artistX.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(400), summary.Balance)
}

// An earning smaller than the outstanding expenses recoups what it can and
// writes no royalty rows at all.
func (suite *EarningTestSuite) TestFullyRecoupedEarning() {
	ctx := context.Background()
	err := addExpense(suite.svc, suite.release.ID, 5000)
	assert.NoError(suite.T(), err)

	result, err := suite.svc.RecordEarning(ctx, suite.release.ID, common.CategoryStreaming, 1200, "March streaming", time.Now(), true)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1200), result.Recouped)
	assert.Equal(suite.T(), int64(0), result.Remainder)
	assert.Empty(suite.T(), result.Royalties)

	balance, err := suite.svc.ReleaseRecoupmentBalance(ctx, suite.release.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3800), balance)

	summary, err := suite.svc.ArtistBalance(ctx, suite.artistX.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), summary.Balance)
}

func (suite *EarningTestSuite) TestZeroAmountEarning() {
	ctx := context.Background()
	result, err := suite.svc.RecordEarning(ctx, suite.release.ID, common.CategoryStreaming, 0, "empty report", time.Now(), true)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), result.Recouped)
	assert.Equal(suite.T(), int64(0), result.Remainder)
	assert.Empty(suite.T(), result.Royalties)
}

func (suite *EarningTestSuite) TestRejectsBadInput() {
	ctx := context.Background()
	_, err := suite.svc.RecordEarning(ctx, suite.release.ID, common.CategoryStreaming, -1, "negative", time.Now(), true)
	assert.ErrorIs(suite.T(), err, service.ErrInvalidAmount)
	_, err = suite.svc.RecordEarning(ctx, suite.release.ID, "merchandise", 100, "unknown", time.Now(), true)
	assert.ErrorIs(suite.T(), err, service.ErrUnknownCategory)
}

// calculate_royalties=false records the raw earning only, for reports that
// were already settled off-system.
func (suite *EarningTestSuite) TestEarningWithoutCalculation() {
	ctx := context.Background()
	err := addExpense(suite.svc, suite.release.ID, 1000)
	assert.NoError(suite.T(), err)

	result, err := suite.svc.RecordEarning(ctx, suite.release.ID, common.CategoryStreaming, 800, "backfill", time.Now(), false)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), result.Recouped)
	assert.Empty(suite.T(), result.Royalties)

	balance, err := suite.svc.ReleaseRecoupmentBalance(ctx, suite.release.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1000), balance)
}

func (suite *EarningTestSuite) TestSplitSumValidation() {
	ctx := context.Background()
	_, err := suite.svc.UpsertRoyaltySplit(ctx, &models.RoyaltySplit{
		ReleaseID:  suite.release.ID,
		ArtistID:   suite.artistX.ID,
		Category:   common.CategoryDownloads,
		Percentage: 1.2,
		Basis:      common.BasisRevenue,
	})
	assert.ErrorIs(suite.T(), err, service.ErrInvalidPercentage)

	_, err = suite.svc.UpsertRoyaltySplit(ctx, &models.RoyaltySplit{
		ReleaseID:  suite.release.ID,
		ArtistID:   suite.artistX.ID,
		Category:   common.CategoryStreaming,
		Percentage: 0.6,
	})
	assert.ErrorIs(suite.T(), err, service.ErrSplitSumExceeded)
}

func (suite *EarningTestSuite) TestExpenseCorrectionGuard() {
	ctx := context.Background()
	err := addExpense(suite.svc, suite.release.ID, 500)
	assert.NoError(suite.T(), err)
	_, err = suite.svc.AddExpense(ctx, &models.RecoupableExpense{
		ReleaseID:    suite.release.ID,
		Description:  "over-correction",
		Amount:       -700,
		DateRecorded: time.Now(),
	})
	assert.ErrorIs(suite.T(), err, service.ErrExpenseBalance)
}

func TestEarningTestSuite(t *testing.T) {
	suite.Run(t, new(EarningTestSuite))
}
