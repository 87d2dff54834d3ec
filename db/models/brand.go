package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Brand : Brand Model
// A brand is one label imprint. It carries the payment rail fee
// configuration and the notification target for its ledger events.
type Brand struct {
	ID            int64     `json:"id" bun:",pk,autoincrement"`
	Name          string    `json:"name" bun:",notnull"`
	ProcessingFee int64     `json:"processing_fee" bun:",nullzero"`
	WebhookUrl    string    `json:"webhook_url,omitempty" bun:",nullzero"`
	CreatedAt     time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt     bun.NullTime `json:"updated_at"`
}

func (b *Brand) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		b.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Brand)(nil)
