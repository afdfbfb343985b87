package request

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateAuctionRequest struct {
	StoreID      string           `json:"store_id" binding:"required"`
	ProductID    string           `json:"product_id"`
	Title        string           `json:"title"`
	StartPrice   decimal.Decimal  `json:"start_price" binding:"required"`
	ReservePrice *decimal.Decimal `json:"reserve_price"`
	MinIncrement decimal.Decimal  `json:"min_increment" binding:"required"`
	StartAt      time.Time        `json:"start_at" binding:"required"`
	EndAt        time.Time        `json:"end_at" binding:"required"`
	AutoExtend   bool             `json:"auto_extend"`
	ExtendWindow string           `json:"extend_window"`
}

type PlaceBidRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type CancelAuctionRequest struct {
	Reason string `json:"reason"`
}

type ExtendAuctionRequest struct {
	Hours  int32  `json:"hours" binding:"required"`
	Reason string `json:"reason"`
}
