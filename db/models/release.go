package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Release : Release Model
// The unit recoupment is tracked against. RecordEarning locks this row to
// serialize concurrent earnings for the same release.
type Release struct {
	ID        int64        `json:"id" bun:",pk,autoincrement"`
	BrandID   int64        `json:"brand_id" bun:",notnull"`
	Brand     *Brand       `json:"-" bun:"rel:belongs-to,join:brand_id=id"`
	Title     string       `json:"title" bun:",notnull"`
	CatalogNo string       `json:"catalog_no,omitempty" bun:",nullzero"`
	Status    string       `json:"status" bun:",nullzero"`
	CreatedAt time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt bun.NullTime `json:"updated_at"`
}

func (r *Release) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		r.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Release)(nil)
