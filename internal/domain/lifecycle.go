package domain

import "time"

// DeriveStatus computes the time-driven status of an auction at a given
// instant. Terminal stored statuses are sticky: the persisted status field is
// ground truth only for ENDED and CANCELLED; everything else is derived from
// startAt/endAt and reconciled on read and by the sweeper.
func DeriveStatus(a *Auction, now time.Time) AuctionStatus {
	if a.Status == StatusEnded || a.Status == StatusCancelled {
		return a.Status
	}
	if now.Before(a.StartAt) {
		return StatusScheduled
	}
	if !now.Before(a.EndAt) {
		return StatusEnded
	}
	if a.EndAt.Sub(now) <= a.ExtendWindow {
		return StatusEndingSoon
	}
	return StatusRunning
}

func IsTerminal(s AuctionStatus) bool {
	return s == StatusEnded || s == StatusCancelled
}

// IsOpen reports whether bids may be accepted in this status.
func IsOpen(s AuctionStatus) bool {
	return s == StatusRunning || s == StatusEndingSoon
}

var legalTransitions = map[AuctionStatus][]AuctionStatus{
	StatusScheduled:  {StatusRunning, StatusEndingSoon, StatusEnded, StatusCancelled},
	StatusRunning:    {StatusEndingSoon, StatusEnded, StatusCancelled},
	StatusEndingSoon: {StatusRunning, StatusEnded, StatusCancelled},
	StatusEnded:      {},
	StatusCancelled:  {},
}

// CanTransition reports whether moving from one status to another is legal.
// The order is monotonic except RUNNING <-> ENDING_SOON, which flips both ways
// when an extension pushes the end time out, and CANCELLED, which is reachable
// from any non-terminal state. SCHEDULED may jump straight to ENDING_SOON or
// ENDED when a sweep observes an auction whose window already elapsed.
func CanTransition(from, to AuctionStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
