package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bid is one entry of the append-only bid ledger. Bids are never updated or
// deleted, even when the owning auction is cancelled.
type Bid struct {
	ID          string
	AuctionID   string
	BidderID    string
	Amount      decimal.Decimal
	IsAutomatic bool
	CreatedAt   time.Time
}
