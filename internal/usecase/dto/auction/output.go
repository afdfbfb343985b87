package auctiondto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
)

type BidAcceptedOutput struct {
	BidID          string
	AuctionID      string
	CurrentBid     decimal.Decimal
	MinNextBid     decimal.Decimal
	ReserveMet     bool
	Extended       bool
	EndAt          time.Time
	Status         domain.AuctionStatus
	OutbidBidderID string
}

type CancelAuctionOutput struct {
	AuctionID       string
	Status          domain.AuctionStatus
	AffectedBidders []domain.BidderStanding
}

type ExtendAuctionOutput struct {
	AuctionID           string
	NewEndAt            time.Time
	ExtensionsRemaining int32
	Status              domain.AuctionStatus
}

type AuctionStateOutput struct {
	AuctionID           string
	StoreID             string
	Status              domain.AuctionStatus
	CurrentBid          decimal.Decimal
	MinNextBid          decimal.Decimal
	StartAt             time.Time
	EndAt               time.Time
	ReserveMet          bool
	BidCount            int64
	LeaderID            string
	ExtensionsRemaining int32
}
