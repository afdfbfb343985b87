package domain

import (
	"context"
	"time"
)

// AuctionRepository is the transactional store the engine runs against. The
// auction row is the unit of mutual exclusion: every mutation is a conditional
// write keyed on the version read, and bid/action appends ride the same
// transaction so the ledger only advances together with the auction version.
type AuctionRepository interface {
	CreateAuction(ctx context.Context, auction *Auction) error
	GetAuctionByID(ctx context.Context, auctionID string) (*Auction, error)

	// UpdateAuctionCAS persists the mutated auction conditioned on the stored
	// version still matching expectedVersion, bumping the version by one.
	// newBid and action, when non-nil, are appended in the same transaction.
	// Returns ErrVersionConflict when another writer won the race.
	UpdateAuctionCAS(ctx context.Context, auction *Auction, expectedVersion int64, newBid *Bid, action *VendorAction) error

	// FindDueAuctions returns non-terminal auctions whose time-driven
	// transition may be due at the given instant.
	FindDueAuctions(ctx context.Context, now time.Time, limit int) ([]*Auction, error)

	GetBidsByAuctionID(ctx context.Context, auctionID string, page, limit int64) ([]*Bid, int64, error)
	GetDistinctBidders(ctx context.Context, auctionID string) ([]BidderStanding, error)
	GetVendorActionsByAuctionID(ctx context.Context, auctionID string) ([]*VendorAction, error)
}
