package mappers

import (
	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	"github.com/yahya159/bidinsouk-sub002/internal/infrastructure/postgres/models"
)

func ToDomainBid(model *models.BidModel) *domain.Bid {
	return &domain.Bid{
		ID:          model.ID,
		AuctionID:   model.AuctionID,
		BidderID:    model.BidderID,
		Amount:      model.Amount,
		IsAutomatic: model.IsAutomatic,
		CreatedAt:   model.CreatedAt,
	}
}

func ToGORMBid(bid *domain.Bid) *models.BidModel {
	return &models.BidModel{
		ID:          bid.ID,
		AuctionID:   bid.AuctionID,
		BidderID:    bid.BidderID,
		Amount:      bid.Amount,
		IsAutomatic: bid.IsAutomatic,
		CreatedAt:   bid.CreatedAt,
	}
}

func ToDomainVendorAction(model *models.VendorActionModel) *domain.VendorAction {
	return &domain.VendorAction{
		ID:          model.ID,
		AuctionID:   model.AuctionID,
		ActorID:     model.ActorID,
		ActionType:  model.ActionType,
		Reason:      model.Reason,
		HoursAdded:  model.HoursAdded,
		StateBefore: model.StateBefore,
		StateAfter:  model.StateAfter,
		CreatedAt:   model.CreatedAt,
	}
}

func ToGORMVendorAction(action *domain.VendorAction) *models.VendorActionModel {
	return &models.VendorActionModel{
		ID:          action.ID,
		AuctionID:   action.AuctionID,
		ActorID:     action.ActorID,
		ActionType:  action.ActionType,
		Reason:      action.Reason,
		HoursAdded:  action.HoursAdded,
		StateBefore: action.StateBefore,
		StateAfter:  action.StateAfter,
		CreatedAt:   action.CreatedAt,
	}
}
