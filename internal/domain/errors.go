package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrVersionConflict = errors.New("auction version conflict")
	ErrContention      = errors.New("bid contention retries exhausted")
	ErrUnauthorized    = errors.New("actor is not allowed to perform this action")
)

type RejectionCode string

const (
	RejectionBidTooLow           RejectionCode = "BID_TOO_LOW"
	RejectionAuctionNotOpen      RejectionCode = "AUCTION_NOT_OPEN"
	RejectionInvalidDuration     RejectionCode = "INVALID_DURATION"
	RejectionInvalidAuction      RejectionCode = "INVALID_AUCTION"
	RejectionCancelLocked        RejectionCode = "CANCEL_LOCKED"
	RejectionExtensionsExhausted RejectionCode = "EXTENSIONS_EXHAUSTED"
)

// RejectionError is a validation rejection surfaced to the caller. It always
// carries a machine-readable code and an actionable message; BID_TOO_LOW also
// carries the exact minimum acceptable next bid.
type RejectionError struct {
	Code       RejectionCode
	Message    string
	MinNextBid *decimal.Decimal
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBidTooLow(minNextBid decimal.Decimal) *RejectionError {
	return &RejectionError{
		Code:       RejectionBidTooLow,
		Message:    fmt.Sprintf("bid too low: minimum acceptable bid is %s", minNextBid.String()),
		MinNextBid: &minNextBid,
	}
}

func NewAuctionNotOpen(status AuctionStatus) *RejectionError {
	return &RejectionError{
		Code:    RejectionAuctionNotOpen,
		Message: fmt.Sprintf("auction is not open for bidding (status %s)", status),
	}
}

func NewRejection(code RejectionCode, message string) *RejectionError {
	return &RejectionError{Code: code, Message: message}
}

// InvariantViolationError means the store returned a state that breaks an
// engine invariant. It is fatal to the operation and must be logged, never
// silently repaired.
type InvariantViolationError struct {
	AuctionID string
	Detail    string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation on auction %s: %s", e.AuctionID, e.Detail)
}
