package models

import (
	"time"
)

// Royalty : Royalty Model
// Created exactly once per (artist, earning) pair with a positive share.
// Release and earning references are nullable: manual royalties are not
// always release-scoped.
type Royalty struct {
	ID           int64     `json:"id" bun:",pk,autoincrement"`
	ArtistID     int64     `json:"artist_id" bun:",notnull"`
	Artist       *Artist   `json:"-" bun:"rel:belongs-to,join:artist_id=id"`
	ReleaseID    int64     `json:"release_id,omitempty" bun:",nullzero"`
	Release      *Release  `json:"-" bun:"rel:belongs-to,join:release_id=id"`
	EarningID    int64     `json:"earning_id,omitempty" bun:",nullzero"`
	Earning      *Earning  `json:"-" bun:"rel:belongs-to,join:earning_id=id"`
	Amount       int64     `json:"amount" bun:",notnull"`
	Description  string    `json:"description" bun:",nullzero"`
	DateRecorded time.Time `json:"date_recorded" bun:",notnull"`
	CreatedAt    time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
