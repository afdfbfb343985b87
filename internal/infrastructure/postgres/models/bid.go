package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BidModel rows are append-only; there is no update or delete path.
type BidModel struct {
	ID          string          `gorm:"primaryKey"`
	AuctionID   string          `gorm:"type:uuid;index:idx_auction_created"`
	Auction     AuctionModel    `gorm:"foreignKey:AuctionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	BidderID    string          `gorm:"index:idx_bidder"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,2)"`
	IsAutomatic bool
	CreatedAt   time.Time       `gorm:"index:idx_auction_created"`
}
