package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	auctiondto "github.com/yahya159/bidinsouk-sub002/internal/usecase/dto/auction"
)

// GetAuctionState returns a snapshot of the auction, lazily reconciling a
// stale stored status with the derived one. A stale status field is never
// trusted as ground truth.
func (uc *DefaultAuctionUsecase) GetAuctionState(ctx context.Context, auctionID string) (*auctiondto.AuctionStateOutput, error) {
	auction, err := uc.AuctionRepo.GetAuctionByID(ctx, auctionID)
	if err != nil {
		return nil, err
	}

	now := uc.Clock.Now()
	derived := domain.DeriveStatus(auction, now)
	if derived != auction.Status {
		if _, err := uc.applyTimeTransition(ctx, auction, now, "lazy"); err != nil {
			if !errors.Is(err, domain.ErrVersionConflict) {
				slog.Error("lazy status reconcile failed",
					"auction_id", auction.ID, "error", err.Error())
			}
			// Another writer moved the auction first; the derived status is
			// still the truth for this read.
			auction.Status = derived
		}
	}

	return uc.stateOutput(auction), nil
}

func (uc *DefaultAuctionUsecase) GetAuctionBids(ctx context.Context, auctionID string, page, limit int64) ([]*domain.Bid, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return uc.AuctionRepo.GetBidsByAuctionID(ctx, auctionID, page, limit)
}

func (uc *DefaultAuctionUsecase) GetVendorActions(ctx context.Context, auctionID string) ([]*domain.VendorAction, error) {
	return uc.AuctionRepo.GetVendorActionsByAuctionID(ctx, auctionID)
}
