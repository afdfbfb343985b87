package domain

import "time"

type VendorActionType string

const (
	ActionCancelled VendorActionType = "CANCELLED"
	ActionExtended  VendorActionType = "EXTENDED"
)

// VendorAction is the immutable audit record of an owner-initiated mutation.
type VendorAction struct {
	ID          string
	AuctionID   string
	ActorID     string
	ActionType  VendorActionType
	Reason      string
	HoursAdded  int32
	StateBefore string
	StateAfter  string
	CreatedAt   time.Time
}
