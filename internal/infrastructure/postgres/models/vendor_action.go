package models

import (
	"time"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
)

type VendorActionModel struct {
	ID          string                  `gorm:"primaryKey;type:uuid"`
	AuctionID   string                  `gorm:"type:uuid;index"`
	ActorID     string
	ActionType  domain.VendorActionType `gorm:"not null"`
	Reason      string
	HoursAdded  int32
	StateBefore string                  `gorm:"type:jsonb"`
	StateAfter  string                  `gorm:"type:jsonb"`
	CreatedAt   time.Time
}

func (VendorActionModel) TableName() string {
	return "vendor_action_records"
}
