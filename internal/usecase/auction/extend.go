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

const (
	minExtendHours = 1
	maxExtendHours = 168
)

// ExtendAuction applies an owner-initiated manual extension of the end time.
func (uc *DefaultAuctionUsecase) ExtendAuction(ctx context.Context, input *auctiondto.ExtendAuctionInput) (*auctiondto.ExtendAuctionOutput, error) {
	if input.Hours < minExtendHours || input.Hours > maxExtendHours {
		return nil, domain.NewRejection(domain.RejectionInvalidDuration,
			fmt.Sprintf("extension must be between %d and %d hours", minExtendHours, maxExtendHours))
	}

	for attempt := 0; attempt < uc.Settings.BidRetryLimit; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		output, err := uc.tryExtendAuction(ctx, input)
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

func (uc *DefaultAuctionUsecase) tryExtendAuction(ctx context.Context, input *auctiondto.ExtendAuctionInput) (*auctiondto.ExtendAuctionOutput, error) {
	auction, err := uc.AuctionRepo.GetAuctionByID(ctx, input.AuctionID)
	if err != nil {
		return nil, err
	}

	if err := authorizeVendorAction(auction, input.Actor); err != nil {
		return nil, err
	}

	now := uc.Clock.Now()
	derived := domain.DeriveStatus(auction, now)

	if !domain.IsOpen(derived) {
		if derived == domain.StatusEnded && auction.Status != domain.StatusEnded {
			_ = uc.finalizeEnded(ctx, auction, now, "lazy")
		}
		return nil, domain.NewAuctionNotOpen(derived)
	}
	auction.Status = derived

	if auction.ExtensionCount >= uc.Settings.MaxExtensions {
		return nil, domain.NewRejection(domain.RejectionExtensionsExhausted,
			fmt.Sprintf("auction already used all %d extensions", uc.Settings.MaxExtensions))
	}

	newEndAt := auction.EndAt.Add(time.Duration(input.Hours) * time.Hour)
	if newEndAt.After(auction.MaxEndAt) {
		return nil, domain.NewRejection(domain.RejectionInvalidDuration,
			fmt.Sprintf("extension would push the end past the maximum total duration (latest allowed end is %s)",
				auction.MaxEndAt.Format(time.RFC3339)))
	}

	stateBefore := snapshotAuction(auction)
	expectedVersion := auction.Version
	auction.EndAt = newEndAt
	auction.ExtensionCount++
	auction.Status = domain.DeriveStatus(auction, now)

	action := &domain.VendorAction{
		ID:          uuid.New().String(),
		AuctionID:   auction.ID,
		ActorID:     input.Actor.ID,
		ActionType:  domain.ActionExtended,
		Reason:      input.Reason,
		HoursAdded:  input.Hours,
		StateBefore: stateBefore,
		StateAfter:  snapshotAuction(auction),
		CreatedAt:   now,
	}

	if err := uc.AuctionRepo.UpdateAuctionCAS(ctx, auction, expectedVersion, nil, action); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordExtension("manual")
	}

	endAt := auction.EndAt
	uc.publishEvent(ctx, domain.AuctionEvent{
		Type:       domain.EventAuctionExtended,
		AuctionID:  auction.ID,
		StoreID:    auction.StoreID,
		OccurredAt: now,
		Reason:     input.Reason,
		NewEndAt:   &endAt,
	})

	return &auctiondto.ExtendAuctionOutput{
		AuctionID:           auction.ID,
		NewEndAt:            auction.EndAt,
		ExtensionsRemaining: uc.Settings.MaxExtensions - auction.ExtensionCount,
		Status:              auction.Status,
	}, nil
}
