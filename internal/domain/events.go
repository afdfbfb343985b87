package domain

import (
	"context"
	"time"
)

type AuctionEventType string

const (
	EventAuctionStarted   AuctionEventType = "AUCTION_STARTED"
	EventBidAccepted      AuctionEventType = "BID_ACCEPTED"
	EventAuctionExtended  AuctionEventType = "AUCTION_EXTENDED"
	EventAuctionEnded     AuctionEventType = "AUCTION_ENDED"
	EventAuctionCancelled AuctionEventType = "AUCTION_CANCELLED"
)

// AuctionEvent is the abstract domain event emitted to external collaborators
// (notifications, analytics, order creation). Delivery is their problem.
type AuctionEvent struct {
	Type       AuctionEventType `json:"type"`
	AuctionID  string           `json:"auction_id"`
	StoreID    string           `json:"store_id,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`

	// BID_ACCEPTED
	BidID          string `json:"bid_id,omitempty"`
	BidderID       string `json:"bidder_id,omitempty"`
	CurrentBid     string `json:"current_bid,omitempty"`
	OutbidBidderID string `json:"outbid_bidder_id,omitempty"`

	// AUCTION_EXTENDED and BID_ACCEPTED with auto-extension
	NewEndAt *time.Time `json:"new_end_at,omitempty"`

	// AUCTION_ENDED
	WinnerID   string `json:"winner_id,omitempty"`
	ReserveMet bool   `json:"reserve_met,omitempty"`

	// AUCTION_CANCELLED
	Reason          string           `json:"reason,omitempty"`
	AffectedBidders []BidderStanding `json:"affected_bidders,omitempty"`
}

type EventPublisher interface {
	PublishAuctionEvent(ctx context.Context, event AuctionEvent) error
}
