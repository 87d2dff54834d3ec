package models

import (
	"time"
)

// Earning : Earning Model
// Append-only. Amendments are recorded as new positive or negative earnings,
// never as updates, so balances stay derivable by summation.
type Earning struct {
	ID           int64     `json:"id" bun:",pk,autoincrement"`
	ReleaseID    int64     `json:"release_id" bun:",notnull"`
	Release      *Release  `json:"-" bun:"rel:belongs-to,join:release_id=id"`
	Category     string    `json:"category" bun:",notnull"`
	Amount       int64     `json:"amount" bun:",notnull"`
	Description  string    `json:"description" bun:",nullzero"`
	DateRecorded time.Time `json:"date_recorded" bun:",notnull"`
	CreatedAt    time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
