package auctiondto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
)

type CreateAuctionInput struct {
	StoreID      string
	ProductID    string
	Title        string
	StartPrice   decimal.Decimal
	ReservePrice *decimal.Decimal
	MinIncrement decimal.Decimal
	StartAt      time.Time
	EndAt        time.Time
	AutoExtend   bool
	ExtendWindow time.Duration
}

type PlaceBidInput struct {
	AuctionID string
	BidderID  string
	Amount    decimal.Decimal
}

type CancelAuctionInput struct {
	AuctionID string
	Actor     domain.Actor
	Reason    string
}

type ExtendAuctionInput struct {
	AuctionID string
	Actor     domain.Actor
	Hours     int32
	Reason    string
}
