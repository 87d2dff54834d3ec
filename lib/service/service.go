package service

import (
	"github.com/labelops/royhub/gateway"
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

type Service struct {
	Config      *Config
	DB          *bun.DB
	RailClient  gateway.RailClient
	Logger      *lecho.Logger
	EventPubSub *Pubsub
}
