package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	auctiondto "github.com/yahya159/bidinsouk-sub002/internal/usecase/dto/auction"
)

func (uc *DefaultAuctionUsecase) CreateAuction(ctx context.Context, input *auctiondto.CreateAuctionInput) (*auctiondto.AuctionStateOutput, error) {
	if input.StoreID == "" {
		return nil, domain.NewRejection(domain.RejectionInvalidAuction, "store id is required")
	}
	if !input.StartPrice.IsPositive() {
		return nil, domain.NewRejection(domain.RejectionInvalidAuction, "start price must be positive")
	}
	if !input.MinIncrement.IsPositive() {
		return nil, domain.NewRejection(domain.RejectionInvalidAuction, "min increment must be positive")
	}
	if input.ReservePrice != nil && input.ReservePrice.LessThan(input.StartPrice) {
		return nil, domain.NewRejection(domain.RejectionInvalidAuction, "reserve price must be at least the start price")
	}
	if !input.EndAt.After(input.StartAt) {
		return nil, domain.NewRejection(domain.RejectionInvalidDuration, "end time must be after start time")
	}
	if input.EndAt.Sub(input.StartAt) > uc.Settings.MaxTotalDuration {
		return nil, domain.NewRejection(domain.RejectionInvalidDuration,
			fmt.Sprintf("auction duration must not exceed %s", uc.Settings.MaxTotalDuration))
	}

	window := input.ExtendWindow
	if window <= 0 {
		window = uc.Settings.ExtendWindow
	}

	now := uc.Clock.Now()
	auction := &domain.Auction{
		ID:           uuid.New().String(),
		StoreID:      input.StoreID,
		ProductID:    input.ProductID,
		Title:        input.Title,
		StartPrice:   input.StartPrice,
		ReservePrice: input.ReservePrice,
		MinIncrement: input.MinIncrement,
		CurrentBid:   input.StartPrice,
		StartAt:      input.StartAt,
		EndAt:        input.EndAt,
		MaxEndAt:     input.StartAt.Add(uc.Settings.MaxTotalDuration),
		AutoExtend:   input.AutoExtend,
		ExtendWindow: window,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	auction.Status = domain.DeriveStatus(auction, now)

	if err := uc.AuctionRepo.CreateAuction(ctx, auction); err != nil {
		return nil, err
	}

	return uc.stateOutput(auction), nil
}
