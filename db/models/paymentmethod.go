package models

import (
	"time"
)

// PaymentMethod : Payment Method Model
// Rail-specific routing data for an artist. The batch processor picks the
// default method, falling back to the oldest one on record.
type PaymentMethod struct {
	ID            int64     `json:"id" bun:",pk,autoincrement"`
	ArtistID      int64     `json:"artist_id" bun:",notnull"`
	Artist        *Artist   `json:"-" bun:"rel:belongs-to,join:artist_id=id"`
	BankCode      string    `json:"bank_code" bun:",notnull"`
	AccountName   string    `json:"account_name" bun:",notnull"`
	AccountNumber string    `json:"account_number" bun:",notnull"`
	IsDefault     bool      `json:"is_default" bun:",nullzero"`
	CreatedAt     time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
