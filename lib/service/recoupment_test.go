package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoupSplitOutstandingBalance(t *testing.T) {
	recouped, remainder := RecoupSplit(1500, 1000)
	assert.Equal(t, int64(1000), recouped)
	assert.Equal(t, int64(500), remainder)
}

func TestRecoupSplitBalanceCoversEarning(t *testing.T) {
	recouped, remainder := RecoupSplit(300, 1000)
	assert.Equal(t, int64(300), recouped)
	assert.Equal(t, int64(0), remainder)
}

func TestRecoupSplitNoBalance(t *testing.T) {
	recouped, remainder := RecoupSplit(300, 0)
	assert.Equal(t, int64(0), recouped)
	assert.Equal(t, int64(300), remainder)
}

func TestRecoupSplitNegativeBalance(t *testing.T) {
	// a negative running sum is conceptually clamped at zero
	recouped, remainder := RecoupSplit(300, -50)
	assert.Equal(t, int64(0), recouped)
	assert.Equal(t, int64(300), remainder)
}

func TestRecoupSplitZeroEarning(t *testing.T) {
	recouped, remainder := RecoupSplit(0, 1000)
	assert.Equal(t, int64(0), recouped)
	assert.Equal(t, int64(0), remainder)
}

// recouped + remainder == amount, exactly, and the recouped part never
// exceeds the outstanding balance, for any input pair.
func TestRecoupSplitConservation(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		amount := rnd.Int63n(1e9)
		balance := rnd.Int63n(1e9) - 1e3
		recouped, remainder := RecoupSplit(amount, balance)
		assert.Equal(t, amount, recouped+remainder)
		assert.GreaterOrEqual(t, remainder, int64(0))
		if balance > 0 {
			assert.LessOrEqual(t, recouped, balance)
		} else {
			assert.Zero(t, recouped)
		}
	}
}

// A sequence of earnings against one starting balance must recoup exactly
// the incurred total, never more.
func TestRecoupSplitNeverOverRecoups(t *testing.T) {
	balance := int64(1000)
	var recoupedTotal int64
	for _, amount := range []int64{400, 300, 0, 500, 200} {
		recouped, _ := RecoupSplit(amount, balance)
		balance -= recouped
		recoupedTotal += recouped
	}
	assert.Equal(t, int64(1000), recoupedTotal)
	assert.Equal(t, int64(0), balance)
}
