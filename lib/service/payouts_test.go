package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPayoutSkip(t *testing.T) {
	assert.True(t, isPayoutSkip(ErrPayoutsOnHold))
	assert.True(t, isPayoutSkip(ErrBelowPayoutPoint))
	assert.True(t, isPayoutSkip(ErrNoPaymentMethod))
	assert.False(t, isPayoutSkip(fmt.Errorf("rail rejected the transfer")))
	assert.False(t, isPayoutSkip(fmt.Errorf("context: %w", fmt.Errorf("boom"))))
}

func TestIsPayoutSkipWrapped(t *testing.T) {
	assert.True(t, isPayoutSkip(fmt.Errorf("artist 7: %w", ErrBelowPayoutPoint)))
}
