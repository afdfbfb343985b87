package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BidDecision is the outcome of validating an acceptable bid.
type BidDecision struct {
	NewCurrentBid decimal.Decimal
	ReserveMet    bool
}

// ValidateBid decides whether a proposed bid is acceptable against the current
// auction state. Pure: no side effects, no clock reads. There is deliberately
// no self-outbid restriction; a bidder may raise their own standing bid.
func ValidateBid(a *Auction, amount decimal.Decimal, bidderID string, now time.Time) (*BidDecision, *RejectionError) {
	if !IsOpen(a.Status) {
		return nil, NewAuctionNotOpen(a.Status)
	}

	// The time window is checked independently of the stored status to cover
	// races where a sweep has not yet flipped an expired auction.
	if now.Before(a.StartAt) || !now.Before(a.EndAt) {
		return nil, NewAuctionNotOpen(a.Status)
	}

	minNext := a.MinNextBid()
	if amount.LessThan(minNext) {
		return nil, NewBidTooLow(minNext)
	}

	reserveMet := true
	if a.ReservePrice != nil {
		reserveMet = amount.GreaterThanOrEqual(*a.ReservePrice)
	}

	return &BidDecision{
		NewCurrentBid: amount,
		ReserveMet:    reserveMet,
	}, nil
}

// CheckAuctionInvariants rejects broken stored state. A violation is fatal to
// the running operation, never silently repaired.
func CheckAuctionInvariants(a *Auction) *InvariantViolationError {
	if a.CurrentBid.LessThan(a.StartPrice) {
		return &InvariantViolationError{AuctionID: a.ID, Detail: "currentBid below startPrice"}
	}
	if !a.MinIncrement.IsPositive() {
		return &InvariantViolationError{AuctionID: a.ID, Detail: "minIncrement is not positive"}
	}
	if a.EndAt.After(a.MaxEndAt) {
		return &InvariantViolationError{AuctionID: a.ID, Detail: "endAt exceeds max total duration"}
	}
	return nil
}
