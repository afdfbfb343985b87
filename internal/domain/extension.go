package domain

import "time"

// ExtensionPolicy decides whether a qualifying late bid pushes the end time
// forward (anti-sniping).
type ExtensionPolicy struct {
	MaxExtensions int32
}

// Apply extends the auction in place when the bid landed within extendWindow
// of endAt and the extension budget is not exhausted. The new endAt is capped
// at maxEndAt; endAt only ever increases. Returns whether an extension
// happened. A valid bid is never rejected because extensions ran out.
func (p ExtensionPolicy) Apply(a *Auction, bidAt time.Time) bool {
	if !a.AutoExtend {
		return false
	}
	if a.EndAt.Sub(bidAt) > a.ExtendWindow {
		return false
	}
	if a.ExtensionCount >= p.MaxExtensions {
		return false
	}

	newEnd := a.EndAt.Add(a.ExtendWindow)
	if newEnd.After(a.MaxEndAt) {
		newEnd = a.MaxEndAt
	}
	if !newEnd.After(a.EndAt) {
		return false
	}

	a.EndAt = newEnd
	a.ExtensionCount++
	return true
}
