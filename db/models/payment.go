package models

import (
	"time"
)

// Payment : Payment Model
// Amount is the gross balance paid down; the rail's fee is recorded
// separately in ProcessingFee and billed to the brand. ReferenceNumber is
// the rail's transaction id, empty for manual off-rail payments.
type Payment struct {
	ID              int64          `json:"id" bun:",pk,autoincrement"`
	ArtistID        int64          `json:"artist_id" bun:",notnull"`
	Artist          *Artist        `json:"-" bun:"rel:belongs-to,join:artist_id=id"`
	PaymentMethodID int64          `json:"payment_method_id,omitempty" bun:",nullzero"`
	PaymentMethod   *PaymentMethod `json:"-" bun:"rel:belongs-to,join:payment_method_id=id"`
	Amount          int64          `json:"amount" bun:",notnull"`
	ProcessingFee   int64          `json:"payment_processing_fee" bun:",nullzero"`
	ReferenceNumber string         `json:"reference_number,omitempty" bun:",nullzero"`
	DatePaid        time.Time      `json:"date_paid" bun:",notnull"`
	CreatedAt       time.Time      `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
