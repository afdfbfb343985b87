package mappers

import (
	"github.com/shopspring/decimal"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	"github.com/yahya159/bidinsouk-sub002/internal/infrastructure/postgres/models"
)

func ToDomainAuction(model *models.AuctionModel) *domain.Auction {
	var reserve *decimal.Decimal
	if model.ReservePrice.Valid {
		value := model.ReservePrice.Decimal
		reserve = &value
	}

	return &domain.Auction{
		ID:             model.ID,
		StoreID:        model.StoreID,
		ProductID:      model.ProductID,
		Title:          model.Title,
		StartPrice:     model.StartPrice,
		ReservePrice:   reserve,
		MinIncrement:   model.MinIncrement,
		CurrentBid:     model.CurrentBid,
		BidCount:       model.BidCount,
		LeaderID:       model.LeaderID,
		StartAt:        model.StartAt,
		EndAt:          model.EndAt,
		MaxEndAt:       model.MaxEndAt,
		AutoExtend:     model.AutoExtend,
		ExtendWindow:   model.ExtendWindow,
		ExtensionCount: model.ExtensionCount,
		Status:         model.Status,
		Version:        model.Version,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func ToGORMAuction(auction *domain.Auction) *models.AuctionModel {
	reserve := decimal.NullDecimal{}
	if auction.ReservePrice != nil {
		reserve = decimal.NullDecimal{Decimal: *auction.ReservePrice, Valid: true}
	}

	return &models.AuctionModel{
		ID:             auction.ID,
		StoreID:        auction.StoreID,
		ProductID:      auction.ProductID,
		Title:          auction.Title,
		StartPrice:     auction.StartPrice,
		ReservePrice:   reserve,
		MinIncrement:   auction.MinIncrement,
		CurrentBid:     auction.CurrentBid,
		BidCount:       auction.BidCount,
		LeaderID:       auction.LeaderID,
		StartAt:        auction.StartAt,
		EndAt:          auction.EndAt,
		MaxEndAt:       auction.MaxEndAt,
		AutoExtend:     auction.AutoExtend,
		ExtendWindow:   auction.ExtendWindow,
		ExtensionCount: auction.ExtensionCount,
		Status:         auction.Status,
		Version:        auction.Version,
		CreatedAt:      auction.CreatedAt,
		UpdatedAt:      auction.UpdatedAt,
	}
}
