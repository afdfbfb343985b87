package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	auctiondto "github.com/yahya159/bidinsouk-sub002/internal/usecase/dto/auction"
)

// CancelAuction applies a vendor- or admin-initiated cancellation under the
// same concurrency discipline as bid placement: the transition is a
// conditional write retried against fresh state when a concurrent bid wins
// the race.
func (uc *DefaultAuctionUsecase) CancelAuction(ctx context.Context, input *auctiondto.CancelAuctionInput) (*auctiondto.CancelAuctionOutput, error) {
	for attempt := 0; attempt < uc.Settings.BidRetryLimit; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		output, err := uc.tryCancelAuction(ctx, input)
		if errors.Is(err, domain.ErrVersionConflict) {
			if uc.Metrics != nil {
				uc.Metrics.BidContentionRetriesTotal.Inc()
			}
			continue
		}
		return output, err
	}

	return nil, domain.ErrContention
}

func (uc *DefaultAuctionUsecase) tryCancelAuction(ctx context.Context, input *auctiondto.CancelAuctionInput) (*auctiondto.CancelAuctionOutput, error) {
	auction, err := uc.AuctionRepo.GetAuctionByID(ctx, input.AuctionID)
	if err != nil {
		return nil, err
	}

	if err := authorizeVendorAction(auction, input.Actor); err != nil {
		return nil, err
	}

	now := uc.Clock.Now()
	derived := domain.DeriveStatus(auction, now)

	if domain.IsTerminal(derived) {
		if derived == domain.StatusEnded && auction.Status != domain.StatusEnded {
			// Reconcile before rejecting so the caller observes truth.
			_ = uc.finalizeEnded(ctx, auction, now, "lazy")
		}
		return nil, domain.NewRejection(domain.RejectionAuctionNotOpen,
			fmt.Sprintf("auction is already %s and cannot be cancelled", derived))
	}
	auction.Status = derived

	// Once bidding has started, vendors cannot pull the auction in the final
	// stretch before close; administrators can override.
	if auction.HasBids() && input.Actor.Role != domain.RoleAdmin && auction.EndAt.Sub(now) <= uc.Settings.CancelLockWindow {
		return nil, domain.NewRejection(domain.RejectionCancelLocked,
			fmt.Sprintf("auction with bids closes in %s; only an administrator can cancel within the final %s",
				auction.EndAt.Sub(now).Round(time.Second), uc.Settings.CancelLockWindow))
	}

	affectedBidders, err := uc.AuctionRepo.GetDistinctBidders(ctx, auction.ID)
	if err != nil {
		return nil, err
	}

	stateBefore := snapshotAuction(auction)
	expectedVersion := auction.Version
	auction.Status = domain.StatusCancelled

	action := &domain.VendorAction{
		ID:          uuid.New().String(),
		AuctionID:   auction.ID,
		ActorID:     input.Actor.ID,
		ActionType:  domain.ActionCancelled,
		Reason:      input.Reason,
		StateBefore: stateBefore,
		StateAfter:  snapshotAuction(auction),
		CreatedAt:   now,
	}

	if err := uc.AuctionRepo.UpdateAuctionCAS(ctx, auction, expectedVersion, nil, action); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordTransition(string(domain.StatusCancelled), "vendor")
	}

	uc.publishEvent(ctx, domain.AuctionEvent{
		Type:            domain.EventAuctionCancelled,
		AuctionID:       auction.ID,
		StoreID:         auction.StoreID,
		OccurredAt:      now,
		Reason:          input.Reason,
		AffectedBidders: affectedBidders,
	})

	return &auctiondto.CancelAuctionOutput{
		AuctionID:       auction.ID,
		Status:          auction.Status,
		AffectedBidders: affectedBidders,
	}, nil
}

func authorizeVendorAction(auction *domain.Auction, actor domain.Actor) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if actor.Role == domain.RoleVendor && actor.ID == auction.StoreID {
		return nil
	}
	return domain.ErrUnauthorized
}
