package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	"github.com/yahya159/bidinsouk-sub002/internal/infrastructure/postgres/mappers"
	"github.com/yahya159/bidinsouk-sub002/internal/infrastructure/postgres/models"
)

type DefaultAuctionRepository struct {
	DB *gorm.DB
}

func NewDefaultAuctionRepository(db *gorm.DB) *DefaultAuctionRepository {
	return &DefaultAuctionRepository{DB: db}
}

func (r *DefaultAuctionRepository) CreateAuction(ctx context.Context, auction *domain.Auction) error {
	model := mappers.ToGORMAuction(auction)
	model.Version = 1

	if err := r.DB.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	auction.Version = model.Version
	return nil
}

func (r *DefaultAuctionRepository) GetAuctionByID(ctx context.Context, auctionID string) (*domain.Auction, error) {
	var model models.AuctionModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", auctionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAuctionNotFound
		}
		return nil, err
	}

	return mappers.ToDomainAuction(&model), nil
}

// UpdateAuctionCAS is the engine's conditional write: the auction row only
// advances when the version read is still current, and the bid/action appends
// commit in the same transaction as the version bump.
func (r *DefaultAuctionRepository) UpdateAuctionCAS(ctx context.Context, auction *domain.Auction, expectedVersion int64, newBid *domain.Bid, action *domain.VendorAction) error {
	newVersion := expectedVersion + 1
	now := time.Now().UTC()

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reserve := mappers.ToGORMAuction(auction).ReservePrice

		result := tx.Model(&models.AuctionModel{}).
			Where("id = ? AND version = ?", auction.ID, expectedVersion).
			Updates(map[string]interface{}{
				"current_bid":     auction.CurrentBid,
				"reserve_price":   reserve,
				"bid_count":       auction.BidCount,
				"leader_id":       auction.LeaderID,
				"end_at":          auction.EndAt,
				"extension_count": auction.ExtensionCount,
				"status":          auction.Status,
				"version":         newVersion,
				"updated_at":      now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrVersionConflict
		}

		if newBid != nil {
			if err := tx.Create(mappers.ToGORMBid(newBid)).Error; err != nil {
				return err
			}
		}
		if action != nil {
			if err := tx.Create(mappers.ToGORMVendorAction(action)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	auction.Version = newVersion
	auction.UpdatedAt = now
	return nil
}

func (r *DefaultAuctionRepository) FindDueAuctions(ctx context.Context, now time.Time, limit int) ([]*domain.Auction, error) {
	var auctionModels []models.AuctionModel

	// Every non-terminal auction already inside its window is a transition
	// candidate; the derived status is computed by the caller.
	if err := r.DB.WithContext(ctx).
		Where("status IN ?", []domain.AuctionStatus{domain.StatusScheduled, domain.StatusRunning, domain.StatusEndingSoon}).
		Where("start_at <= ?", now).
		Order("end_at ASC").
		Limit(limit).
		Find(&auctionModels).Error; err != nil {
		return nil, err
	}

	auctions := make([]*domain.Auction, len(auctionModels))
	for i := range auctionModels {
		auctions[i] = mappers.ToDomainAuction(&auctionModels[i])
	}
	return auctions, nil
}

func (r *DefaultAuctionRepository) GetBidsByAuctionID(ctx context.Context, auctionID string, page, limit int64) ([]*domain.Bid, int64, error) {
	var bidModels []models.BidModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).Model(&models.BidModel{}).Where("auction_id = ?", auctionID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&bidModels).Error; err != nil {
		return nil, 0, err
	}

	bids := make([]*domain.Bid, len(bidModels))
	for i := range bidModels {
		bids[i] = mappers.ToDomainBid(&bidModels[i])
	}
	return bids, total, nil
}

func (r *DefaultAuctionRepository) GetDistinctBidders(ctx context.Context, auctionID string) ([]domain.BidderStanding, error) {
	var standings []domain.BidderStanding

	if err := r.DB.WithContext(ctx).
		Model(&models.BidModel{}).
		Select("bidder_id, MAX(amount) AS highest_bid").
		Where("auction_id = ?", auctionID).
		Group("bidder_id").
		Order("highest_bid DESC").
		Scan(&standings).Error; err != nil {
		return nil, err
	}

	return standings, nil
}

func (r *DefaultAuctionRepository) GetVendorActionsByAuctionID(ctx context.Context, auctionID string) ([]*domain.VendorAction, error) {
	var actionModels []models.VendorActionModel

	if err := r.DB.WithContext(ctx).
		Where("auction_id = ?", auctionID).
		Order("created_at DESC").
		Find(&actionModels).Error; err != nil {
		return nil, err
	}

	actions := make([]*domain.VendorAction, len(actionModels))
	for i := range actionModels {
		actions[i] = mappers.ToDomainVendorAction(&actionModels[i])
	}
	return actions, nil
}
