package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	"github.com/yahya159/bidinsouk-sub002/internal/infrastructure/metrics"
	auctiondto "github.com/yahya159/bidinsouk-sub002/internal/usecase/dto/auction"
)

type AuctionUsecase interface {
	CreateAuction(ctx context.Context, input *auctiondto.CreateAuctionInput) (*auctiondto.AuctionStateOutput, error)
	PlaceBid(ctx context.Context, input *auctiondto.PlaceBidInput) (*auctiondto.BidAcceptedOutput, error)
	CancelAuction(ctx context.Context, input *auctiondto.CancelAuctionInput) (*auctiondto.CancelAuctionOutput, error)
	ExtendAuction(ctx context.Context, input *auctiondto.ExtendAuctionInput) (*auctiondto.ExtendAuctionOutput, error)

	GetAuctionState(ctx context.Context, auctionID string) (*auctiondto.AuctionStateOutput, error)
	GetAuctionBids(ctx context.Context, auctionID string, page, limit int64) ([]*domain.Bid, int64, error)
	GetVendorActions(ctx context.Context, auctionID string) ([]*domain.VendorAction, error)

	SweepDueAuctions(ctx context.Context) error
}

// EngineSettings are the lifecycle tunables of the bidding engine.
type EngineSettings struct {
	ExtendWindow     time.Duration
	MaxExtensions    int32
	MaxTotalDuration time.Duration
	BidRetryLimit    int
	CancelLockWindow time.Duration
	SweepBatchSize   int
}

func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		ExtendWindow:     5 * time.Minute,
		MaxExtensions:    3,
		MaxTotalDuration: 30 * 24 * time.Hour,
		BidRetryLimit:    5,
		CancelLockWindow: time.Hour,
		SweepBatchSize:   500,
	}
}

type DefaultAuctionUsecase struct {
	AuctionRepo domain.AuctionRepository
	Publisher   domain.EventPublisher
	Clock       domain.Clock
	Metrics     *metrics.AuctionMetrics
	Settings    EngineSettings
}

func NewDefaultAuctionUsecase(
	auctionRepo domain.AuctionRepository,
	publisher domain.EventPublisher,
	clock domain.Clock,
	auctionMetrics *metrics.AuctionMetrics,
	settings EngineSettings) *DefaultAuctionUsecase {

	return &DefaultAuctionUsecase{
		AuctionRepo: auctionRepo,
		Publisher:   publisher,
		Clock:       clock,
		Metrics:     auctionMetrics,
		Settings:    settings,
	}
}

func (uc *DefaultAuctionUsecase) extensionPolicy() domain.ExtensionPolicy {
	return domain.ExtensionPolicy{MaxExtensions: uc.Settings.MaxExtensions}
}

// publishEvent delivers a domain event to external collaborators. Event
// delivery never fails the operation that produced it.
func (uc *DefaultAuctionUsecase) publishEvent(ctx context.Context, event domain.AuctionEvent) {
	if uc.Publisher == nil {
		return
	}
	if err := uc.Publisher.PublishAuctionEvent(ctx, event); err != nil {
		slog.Error("failed to publish auction event",
			"type", string(event.Type),
			"auction_id", event.AuctionID,
			"error", err.Error(),
		)
	}
}

type auctionSnapshot struct {
	Status         domain.AuctionStatus `json:"status"`
	CurrentBid     string               `json:"current_bid"`
	EndAt          time.Time            `json:"end_at"`
	ExtensionCount int32                `json:"extension_count"`
	BidCount       int64                `json:"bid_count"`
	Version        int64                `json:"version"`
}

func snapshotAuction(a *domain.Auction) string {
	raw, err := json.Marshal(auctionSnapshot{
		Status:         a.Status,
		CurrentBid:     a.CurrentBid.String(),
		EndAt:          a.EndAt,
		ExtensionCount: a.ExtensionCount,
		BidCount:       a.BidCount,
		Version:        a.Version,
	})
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func (uc *DefaultAuctionUsecase) stateOutput(a *domain.Auction) *auctiondto.AuctionStateOutput {
	remaining := uc.Settings.MaxExtensions - a.ExtensionCount
	if remaining < 0 {
		remaining = 0
	}
	return &auctiondto.AuctionStateOutput{
		AuctionID:           a.ID,
		StoreID:             a.StoreID,
		Status:              a.Status,
		CurrentBid:          a.CurrentBid,
		MinNextBid:          a.MinNextBid(),
		StartAt:             a.StartAt,
		EndAt:               a.EndAt,
		ReserveMet:          a.ReserveMet(),
		BidCount:            a.BidCount,
		LeaderID:            a.LeaderID,
		ExtensionsRemaining: remaining,
	}
}
