package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
)

type AuctionModel struct {
	ID             string               `gorm:"primaryKey;type:uuid"`
	StoreID        string               `gorm:"type:uuid;index:idx_store"`
	ProductID      string               `gorm:"type:uuid"`
	Title          string
	StartPrice     decimal.Decimal      `gorm:"type:numeric(20,2)"`
	ReservePrice   decimal.NullDecimal  `gorm:"type:numeric(20,2)"`
	MinIncrement   decimal.Decimal      `gorm:"type:numeric(20,2)"`
	CurrentBid     decimal.Decimal      `gorm:"type:numeric(20,2)"`
	BidCount       int64
	LeaderID       string
	StartAt        time.Time            `gorm:"index:idx_status_start"`
	EndAt          time.Time            `gorm:"index:idx_status_end"`
	MaxEndAt       time.Time
	AutoExtend     bool
	ExtendWindow   time.Duration
	ExtensionCount int32
	Status         domain.AuctionStatus `gorm:"index:idx_status_start;index:idx_status_end"`
	Version        int64                `gorm:"not null;default:1"`
	CreatedAt      time.Time            `gorm:"index:idx_created_at"`
	UpdatedAt      time.Time
}
