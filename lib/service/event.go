package service

import "time"

// LedgerEvent is the notification payload emitted after an earning is
// processed and after a successful payout. Delivery (webhook, RabbitMQ) is
// fire-and-forget; the ledger itself is the source of truth.
type LedgerEvent struct {
	Type        string    `json:"type"`
	BrandID     int64     `json:"brand_id,omitempty"`
	ArtistID    int64     `json:"artist_id"`
	ReleaseID   int64     `json:"release_id,omitempty"`
	EarningID   int64     `json:"earning_id,omitempty"`
	PaymentID   int64     `json:"payment_id,omitempty"`
	Category    string    `json:"category,omitempty"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status,omitempty"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}
