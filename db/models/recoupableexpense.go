package models

import (
	"time"
)

// RecoupableExpense : Recoupable Expense Model
// Signed running ledger per release: positive rows are expenses incurred,
// negative rows are recoupments taken out of earnings. The release's
// outstanding recoupment balance is the sum over all rows and must never be
// driven below zero by an earning-triggered entry.
type RecoupableExpense struct {
	ID           int64     `json:"id" bun:",pk,autoincrement"`
	ReleaseID    int64     `json:"release_id" bun:",notnull"`
	Release      *Release  `json:"-" bun:"rel:belongs-to,join:release_id=id"`
	Description  string    `json:"description" bun:",nullzero"`
	Amount       int64     `json:"amount" bun:",notnull"`
	DateRecorded time.Time `json:"date_recorded" bun:",notnull"`
	CreatedAt    time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
