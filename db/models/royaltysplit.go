package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// RoyaltySplit : Royalty Split Model
// One row per (release, artist, category). Percentage is a fraction in
// [0,1]; external percent inputs are normalized at the API boundary.
type RoyaltySplit struct {
	ID         int64        `json:"id" bun:",pk,autoincrement"`
	ReleaseID  int64        `json:"release_id" bun:",notnull,unique:release_artist_category"`
	Release    *Release     `json:"-" bun:"rel:belongs-to,join:release_id=id"`
	ArtistID   int64        `json:"artist_id" bun:",notnull,unique:release_artist_category"`
	Artist     *Artist      `json:"-" bun:"rel:belongs-to,join:artist_id=id"`
	Category   string       `json:"category" bun:",notnull,unique:release_artist_category"`
	Percentage float64      `json:"percentage" bun:",notnull"`
	Basis      string       `json:"basis" bun:",notnull,default:'revenue'"`
	CreatedAt  time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt  bun.NullTime `json:"updated_at"`
}

func (s *RoyaltySplit) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		s.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*RoyaltySplit)(nil)
