package service

import "errors"

// Validation errors: rejected before any ledger write.
var (
	ErrInvalidAmount     = errors.New("amount must not be negative")
	ErrUnknownCategory   = errors.New("unknown revenue category")
	ErrInvalidPercentage = errors.New("percentage must be a fraction between 0 and 1")
	ErrSplitSumExceeded  = errors.New("royalty split percentages exceed 100% for this release and category")
	ErrExpenseBalance    = errors.New("expense correction would drive the recoupment balance below zero")
)

// ErrLockContention is returned by RecordEarning once the bounded retries on
// the per-release lock are exhausted. The earning was not recorded; the
// caller should retry the whole operation.
var ErrLockContention = errors.New("could not acquire release lock, try again")

// Payout skip reasons. These are not batch failures: a skipped artist is
// neither paid nor failed.
var (
	ErrPayoutsOnHold     = errors.New("artist payouts are on hold")
	ErrBelowPayoutPoint  = errors.New("balance does not exceed the artist's payout point")
	ErrNoPaymentMethod   = errors.New("artist has no payment method on record")
)
