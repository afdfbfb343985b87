package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jaevor/go-nanoid"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	auctiondto "github.com/yahya159/bidinsouk-sub002/internal/usecase/dto/auction"
)

// PlaceBid runs validate -> apply -> persist -> emit atomically per auction.
// Concurrent attempts against the same pre-state are serialized by the store's
// conditional write: exactly one wins per version, the others re-validate
// against the new state, up to BidRetryLimit attempts.
func (uc *DefaultAuctionUsecase) PlaceBid(ctx context.Context, input *auctiondto.PlaceBidInput) (*auctiondto.BidAcceptedOutput, error) {
	started := uc.Clock.Now()

	for attempt := 0; attempt < uc.Settings.BidRetryLimit; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		output, err := uc.tryPlaceBid(ctx, input)
		if errors.Is(err, domain.ErrVersionConflict) {
			if uc.Metrics != nil {
				uc.Metrics.BidContentionRetriesTotal.Inc()
			}
			continue
		}
		if err != nil {
			uc.recordBidOutcome("rejected", started)
			return nil, err
		}

		uc.recordBidOutcome("accepted", started)
		return output, nil
	}

	if uc.Metrics != nil {
		uc.Metrics.BidContentionExhaustedTotal.Inc()
	}
	uc.recordBidOutcome("contention", started)
	return nil, domain.ErrContention
}

func (uc *DefaultAuctionUsecase) tryPlaceBid(ctx context.Context, input *auctiondto.PlaceBidInput) (*auctiondto.BidAcceptedOutput, error) {
	auction, err := uc.AuctionRepo.GetAuctionByID(ctx, input.AuctionID)
	if err != nil {
		return nil, err
	}

	if violation := domain.CheckAuctionInvariants(auction); violation != nil {
		slog.Error("stored auction state violates engine invariants",
			"auction_id", auction.ID, "detail", violation.Detail)
		if uc.Metrics != nil {
			uc.Metrics.InvariantViolationsTotal.Inc()
		}
		return nil, violation
	}

	now := uc.Clock.Now()
	derived := domain.DeriveStatus(auction, now)

	// Lazy reconcile: a bid arriving after the window elapsed drives the
	// auction to its terminal state before the rejection goes back.
	if derived == domain.StatusEnded && auction.Status != domain.StatusEnded {
		if err := uc.finalizeEnded(ctx, auction, now, "lazy"); err != nil && !errors.Is(err, domain.ErrVersionConflict) {
			slog.Error("failed to finalize expired auction on bid path",
				"auction_id", auction.ID, "error", err.Error())
		}
		if uc.Metrics != nil {
			uc.Metrics.RecordBidRejected(string(domain.RejectionAuctionNotOpen))
		}
		return nil, domain.NewAuctionNotOpen(domain.StatusEnded)
	}
	auction.Status = derived

	decision, rejection := domain.ValidateBid(auction, input.Amount, input.BidderID, now)
	if rejection != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordBidRejected(string(rejection.Code))
		}
		return nil, rejection
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	bid := &domain.Bid{
		ID:        idGenerator(),
		AuctionID: auction.ID,
		BidderID:  input.BidderID,
		Amount:    input.Amount,
		CreatedAt: now,
	}

	outbidBidderID := ""
	if auction.LeaderID != "" && auction.LeaderID != input.BidderID {
		outbidBidderID = auction.LeaderID
	}

	expectedVersion := auction.Version
	auction.CurrentBid = decision.NewCurrentBid
	auction.LeaderID = input.BidderID
	auction.BidCount++

	extended := uc.extensionPolicy().Apply(auction, now)
	auction.Status = domain.DeriveStatus(auction, now)

	if err := uc.AuctionRepo.UpdateAuctionCAS(ctx, auction, expectedVersion, bid, nil); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		amount, _ := auction.CurrentBid.Float64()
		uc.Metrics.RecordBidAccepted(auction.StoreID, amount)
		if extended {
			uc.Metrics.RecordExtension("auto")
		}
	}

	event := domain.AuctionEvent{
		Type:           domain.EventBidAccepted,
		AuctionID:      auction.ID,
		StoreID:        auction.StoreID,
		OccurredAt:     now,
		BidID:          bid.ID,
		BidderID:       bid.BidderID,
		CurrentBid:     auction.CurrentBid.String(),
		OutbidBidderID: outbidBidderID,
	}
	if extended {
		endAt := auction.EndAt
		event.NewEndAt = &endAt
	}
	uc.publishEvent(ctx, event)

	return &auctiondto.BidAcceptedOutput{
		BidID:          bid.ID,
		AuctionID:      auction.ID,
		CurrentBid:     auction.CurrentBid,
		MinNextBid:     auction.MinNextBid(),
		ReserveMet:     decision.ReserveMet,
		Extended:       extended,
		EndAt:          auction.EndAt,
		Status:         auction.Status,
		OutbidBidderID: outbidBidderID,
	}, nil
}

func (uc *DefaultAuctionUsecase) recordBidOutcome(outcome string, started time.Time) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordBidProcessingDuration(outcome, uc.Clock.Now().Sub(started).Seconds())
}
