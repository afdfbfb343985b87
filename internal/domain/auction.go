package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuctionStatus string

const (
	StatusScheduled  AuctionStatus = "SCHEDULED"
	StatusRunning    AuctionStatus = "RUNNING"
	StatusEndingSoon AuctionStatus = "ENDING_SOON"
	StatusEnded      AuctionStatus = "ENDED"
	StatusCancelled  AuctionStatus = "CANCELLED"
)

type Auction struct {
	ID             string
	StoreID        string
	ProductID      string
	Title          string
	StartPrice     decimal.Decimal
	ReservePrice   *decimal.Decimal
	MinIncrement   decimal.Decimal
	CurrentBid     decimal.Decimal
	BidCount       int64
	LeaderID       string
	StartAt        time.Time
	EndAt          time.Time
	MaxEndAt       time.Time
	AutoExtend     bool
	ExtendWindow   time.Duration
	ExtensionCount int32
	Status         AuctionStatus
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MinNextBid is the smallest amount the validator will accept.
func (a *Auction) MinNextBid() decimal.Decimal {
	return a.CurrentBid.Add(a.MinIncrement)
}

// ReserveMet reports whether the current bid satisfies the reserve price.
// An auction without a reserve is always considered met.
func (a *Auction) ReserveMet() bool {
	if a.ReservePrice == nil {
		return true
	}
	return a.BidCount > 0 && a.CurrentBid.GreaterThanOrEqual(*a.ReservePrice)
}

func (a *Auction) HasBids() bool {
	return a.BidCount > 0
}

type ActorRole string

const (
	RoleVendor ActorRole = "VENDOR"
	RoleAdmin  ActorRole = "ADMIN"
	RoleBidder ActorRole = "BIDDER"
)

// Actor is the caller identity supplied by the upstream auth layer.
type Actor struct {
	ID   string
	Role ActorRole
}

// BidderStanding is one distinct bidder with their highest accepted amount,
// used to enumerate affected bidders on cancellation.
type BidderStanding struct {
	BidderID   string          `json:"bidder_id"`
	HighestBid decimal.Decimal `json:"highest_bid"`
}
