package usecase

import (
	"context"
	"time"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
)

// finalizeEnded drives an auction whose window elapsed into ENDED and emits
// AUCTION_ENDED. It is idempotent at the store level: a version conflict means
// another writer (sweep, bid path, read path) already applied the transition,
// and the caller treats that as done.
func (uc *DefaultAuctionUsecase) finalizeEnded(ctx context.Context, auction *domain.Auction, now time.Time, trigger string) error {
	if auction.Status == domain.StatusEnded {
		return nil
	}
	if !domain.CanTransition(auction.Status, domain.StatusEnded) {
		return nil
	}

	expectedVersion := auction.Version
	auction.Status = domain.StatusEnded

	if err := uc.AuctionRepo.UpdateAuctionCAS(ctx, auction, expectedVersion, nil, nil); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordTransition(string(domain.StatusEnded), trigger)
	}

	event := domain.AuctionEvent{
		Type:       domain.EventAuctionEnded,
		AuctionID:  auction.ID,
		StoreID:    auction.StoreID,
		OccurredAt: now,
		ReserveMet: auction.ReserveMet(),
	}
	if auction.HasBids() {
		event.WinnerID = auction.LeaderID
		event.CurrentBid = auction.CurrentBid.String()
	}
	uc.publishEvent(ctx, event)

	return nil
}

// applyTimeTransition reconciles a stale non-terminal stored status with the
// derived one. Re-applying on an auction already in its target state is a
// no-op, which keeps the sweep idempotent.
func (uc *DefaultAuctionUsecase) applyTimeTransition(ctx context.Context, auction *domain.Auction, now time.Time, trigger string) (bool, error) {
	derived := domain.DeriveStatus(auction, now)
	if derived == auction.Status {
		return false, nil
	}
	if !domain.CanTransition(auction.Status, derived) {
		return false, nil
	}

	if derived == domain.StatusEnded {
		if err := uc.finalizeEnded(ctx, auction, now, trigger); err != nil {
			return false, err
		}
		return true, nil
	}

	previous := auction.Status
	expectedVersion := auction.Version
	auction.Status = derived

	if err := uc.AuctionRepo.UpdateAuctionCAS(ctx, auction, expectedVersion, nil, nil); err != nil {
		return false, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordTransition(string(derived), trigger)
	}

	// SCHEDULED entering the open window, directly or past its ENDING_SOON
	// boundary, is the auction start.
	if previous == domain.StatusScheduled && domain.IsOpen(derived) {
		uc.publishEvent(ctx, domain.AuctionEvent{
			Type:       domain.EventAuctionStarted,
			AuctionID:  auction.ID,
			StoreID:    auction.StoreID,
			OccurredAt: now,
		})
	}

	return true, nil
}
