package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Artist : Artist Model
// Artists are never hard-deleted, historical ledger rows reference them.
type Artist struct {
	ID          int64        `json:"id" bun:",pk,autoincrement"`
	BrandID     int64        `json:"brand_id" bun:",notnull"`
	Brand       *Brand       `json:"-" bun:"rel:belongs-to,join:brand_id=id"`
	Name        string       `json:"name" bun:",notnull"`
	Email       string       `json:"email,omitempty" bun:",nullzero"`
	PayoutPoint int64        `json:"payout_point" bun:",nullzero"`
	HoldPayouts bool         `json:"hold_payouts" bun:",nullzero"`
	CreatedAt   time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt   bun.NullTime `json:"updated_at"`
}

func (a *Artist) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		a.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Artist)(nil)
