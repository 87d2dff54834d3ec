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

type PayoutTestSuite struct {
	suite.Suite
	svc   *service.Service
	rail  *FakeRail
	brand *models.Brand
}

func (suite *PayoutTestSuite) SetupSuite() {
	suite.rail = NewFakeRail(10_000_000)
	svc, err := RoyhubTestServiceInit(suite.rail)
	if err != nil {
		suite.T().Fatalf("Error initializing test service: %v", err)
	}
	suite.svc = svc
}

func (suite *PayoutTestSuite) SetupTest() {
	err := clearLedger(suite.svc)
	assert.NoError(suite.T(), err)
	suite.rail.mu.Lock()
	suite.rail.failFor = map[string]bool{}
	suite.rail.transfers = nil
	suite.rail.mu.Unlock()
	suite.brand, err = createBrand(suite.svc, 50)
	assert.NoError(suite.T(), err)
}

// creates an artist with a 50/50-less release of their own and credits them
// royalties worth `royalties` through the earning pipeline
func (suite *PayoutTestSuite) fundedArtist(name string, royalties int64, payoutPoint int64, hold bool, accountNumber string) *models.Artist {
	ctx := context.Background()
	artist, err := createArtist(suite.svc, suite.brand.ID, name, payoutPoint, hold)
	assert.NoError(suite.T(), err)
	if accountNumber != "" {
		_, err = createPaymentMethod(suite.svc, artist.ID, accountNumber)
		assert.NoError(suite.T(), err)
	}
	release, err := createRelease(suite.svc, suite.brand.ID, name+" LP")
	assert.NoError(suite.T(), err)
	err = addStreamingSplit(suite.svc, release.ID, artist.ID, 1.0)
	assert.NoError(suite.T(), err)
	if royalties > 0 {
		_, err = suite.svc.RecordEarning(ctx, release.ID, common.CategoryStreaming, royalties, "statement", time.Now(), true)
		assert.NoError(suite.T(), err)
	}
	return artist
}

// One failing transfer must not abort the batch, and skipped artists count
// neither as paid nor as failed.
func (suite *PayoutTestSuite) TestBatchPartialFailureIsolation() {
	ctx := context.Background()
	payable := suite.fundedArtist("Aba Dame", 5000, 100, false, "1111111111")
	failing := suite.fundedArtist("Beka Sounds", 5000, 100, false, "2222222222")
	onHold := suite.fundedArtist("Cela Duo", 5000, 100, true, "3333333333")
	belowPoint := suite.fundedArtist("Dena Trio", 80, 100, false, "4444444444")
	noMethod := suite.fundedArtist("Eno Band", 5000, 100, false, "")
	suite.rail.FailTransfersTo("2222222222", true)

	result, err := suite.svc.RunPayoutBatch(ctx, suite.brand.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), result.Paid)
	assert.Equal(suite.T(), int64(1), result.Failed)

	payments, err := suite.svc.PaymentsForArtist(ctx, payable.ID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), payments, 1)
	assert.Equal(suite.T(), int64(5000), payments[0].Amount)
	assert.Equal(suite.T(), int64(50), payments[0].ProcessingFee)
	assert.NotEmpty(suite.T(), payments[0].ReferenceNumber)

	// no ledger rows for the failed transfer, balance untouched
	payments, err = suite.svc.PaymentsForArtist(ctx, failing.ID)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), payments)
	summary, err := suite.svc.ArtistBalance(ctx, failing.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5000), summary.Balance)

	for _, skipped := range []*models.Artist{onHold, belowPoint, noMethod} {
		payments, err = suite.svc.PaymentsForArtist(ctx, skipped.ID)
		assert.NoError(suite.T(), err)
		assert.Empty(suite.T(), payments)
	}
}

// Re-running a batch pays nobody new; fixing the broken rail account and
// re-running pays exactly the artist that failed before.
func (suite *PayoutTestSuite) TestBatchRerunIsIdempotent() {
	ctx := context.Background()
	suite.fundedArtist("Aba Dame", 5000, 100, false, "1111111111")
	failing := suite.fundedArtist("Beka Sounds", 5000, 100, false, "2222222222")
	suite.rail.FailTransfersTo("2222222222", true)

	result, err := suite.svc.RunPayoutBatch(ctx, suite.brand.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), result.Paid)
	assert.Equal(suite.T(), int64(1), result.Failed)

	suite.rail.FailTransfersTo("2222222222", false)
	result, err = suite.svc.RunPayoutBatch(ctx, suite.brand.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), result.Paid)
	assert.Equal(suite.T(), int64(0), result.Failed)

	summary, err := suite.svc.ArtistBalance(ctx, failing.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), summary.Balance)

	result, err = suite.svc.RunPayoutBatch(ctx, suite.brand.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), result.Paid)
	assert.Equal(suite.T(), int64(0), result.Failed)
}

// The transfer leaves with the fee deducted while the ledger keeps the gross
// amount and the fee side by side.
func (suite *PayoutTestSuite) TestProcessingFeeBilledToBrand() {
	ctx := context.Background()
	artist := suite.fundedArtist("Aba Dame", 500, 100, false, "1111111111")

	payment, err := suite.svc.PayArtist(ctx, artist.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(500), payment.Amount)
	assert.Equal(suite.T(), int64(50), payment.ProcessingFee)

	transfers := suite.rail.Transfers()
	assert.Len(suite.T(), transfers, 1)
	assert.Equal(suite.T(), int64(450), transfers[0].Amount)
	assert.NotEmpty(suite.T(), transfers[0].IdempotencyKey)

	summary, err := suite.svc.ArtistBalance(ctx, artist.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), summary.Balance)
}

// The processing fee is brand configuration, changed through the brand
// update operation and picked up by the next payout.
func (suite *PayoutTestSuite) TestBrandFeeReconfigured() {
	ctx := context.Background()
	artist := suite.fundedArtist("Aba Dame", 500, 100, false, "1111111111")

	suite.brand.ProcessingFee = 0
	_, err := suite.svc.UpdateBrand(ctx, suite.brand)
	assert.NoError(suite.T(), err)

	payment, err := suite.svc.PayArtist(ctx, artist.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(500), payment.Amount)
	assert.Equal(suite.T(), int64(0), payment.ProcessingFee)

	transfers := suite.rail.Transfers()
	assert.Len(suite.T(), transfers, 1)
	assert.Equal(suite.T(), int64(500), transfers[0].Amount)
}

func (suite *PayoutTestSuite) TestPayArtistSkipReasons() {
	ctx := context.Background()
	onHold := suite.fundedArtist("Cela Duo", 5000, 100, true, "3333333333")
	_, err := suite.svc.PayArtist(ctx, onHold.ID)
	assert.ErrorIs(suite.T(), err, service.ErrPayoutsOnHold)

	// a balance exactly at the payout point stays put
	atPoint := suite.fundedArtist("Dena Trio", 100, 100, false, "4444444444")
	_, err = suite.svc.PayArtist(ctx, atPoint.ID)
	assert.ErrorIs(suite.T(), err, service.ErrBelowPayoutPoint)

	noMethod := suite.fundedArtist("Eno Band", 5000, 100, false, "")
	_, err = suite.svc.PayArtist(ctx, noMethod.ID)
	assert.ErrorIs(suite.T(), err, service.ErrNoPaymentMethod)

	assert.Empty(suite.T(), suite.rail.Transfers())
}

// A manual payment reduces the balance the same way a rail payout does and
// never reaches the rail.
func (suite *PayoutTestSuite) TestManualPayment() {
	ctx := context.Background()
	artist := suite.fundedArtist("Aba Dame", 900, 100, false, "1111111111")

	_, err := suite.svc.RecordManualPayment(ctx, &models.Payment{
		ArtistID: artist.ID,
		Amount:   400,
		DatePaid: time.Now(),
	})
	assert.NoError(suite.T(), err)

	summary, err := suite.svc.ArtistBalance(ctx, artist.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(500), summary.Balance)
	assert.Empty(suite.T(), suite.rail.Transfers())
}

func TestPayoutTestSuite(t *testing.T) {
	suite.Run(t, new(PayoutTestSuite))
}
