package response

import (
	"time"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	auctiondto "github.com/yahya159/bidinsouk-sub002/internal/usecase/dto/auction"
)

type ErrorResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	MinNextBid string `json:"min_next_bid,omitempty"`
}

type AuctionStateResponse struct {
	AuctionID           string    `json:"auction_id"`
	StoreID             string    `json:"store_id"`
	Status              string    `json:"status"`
	CurrentBid          string    `json:"current_bid"`
	MinNextBid          string    `json:"min_next_bid"`
	StartAt             time.Time `json:"start_at"`
	EndAt               time.Time `json:"end_at"`
	ReserveMet          bool      `json:"reserve_met"`
	BidCount            int64     `json:"bid_count"`
	LeaderID            string    `json:"leader_id,omitempty"`
	ExtensionsRemaining int32     `json:"extensions_remaining"`
}

func FromAuctionState(state *auctiondto.AuctionStateOutput) *AuctionStateResponse {
	return &AuctionStateResponse{
		AuctionID:           state.AuctionID,
		StoreID:             state.StoreID,
		Status:              string(state.Status),
		CurrentBid:          state.CurrentBid.String(),
		MinNextBid:          state.MinNextBid.String(),
		StartAt:             state.StartAt,
		EndAt:               state.EndAt,
		ReserveMet:          state.ReserveMet,
		BidCount:            state.BidCount,
		LeaderID:            state.LeaderID,
		ExtensionsRemaining: state.ExtensionsRemaining,
	}
}

type BidAcceptedResponse struct {
	BidID      string    `json:"bid_id"`
	AuctionID  string    `json:"auction_id"`
	Status     string    `json:"status"`
	CurrentBid string    `json:"current_bid"`
	MinNextBid string    `json:"min_next_bid"`
	ReserveMet bool      `json:"reserve_met"`
	Extended   bool      `json:"extended"`
	EndAt      time.Time `json:"end_at"`
}

func FromBidAccepted(output *auctiondto.BidAcceptedOutput) *BidAcceptedResponse {
	return &BidAcceptedResponse{
		BidID:      output.BidID,
		AuctionID:  output.AuctionID,
		Status:     string(output.Status),
		CurrentBid: output.CurrentBid.String(),
		MinNextBid: output.MinNextBid.String(),
		ReserveMet: output.ReserveMet,
		Extended:   output.Extended,
		EndAt:      output.EndAt,
	}
}

type AffectedBidder struct {
	BidderID   string `json:"bidder_id"`
	HighestBid string `json:"highest_bid"`
}

type CancelAuctionResponse struct {
	AuctionID       string           `json:"auction_id"`
	Status          string           `json:"status"`
	AffectedBidders []AffectedBidder `json:"affected_bidders"`
}

func FromCancelAuction(output *auctiondto.CancelAuctionOutput) *CancelAuctionResponse {
	affected := make([]AffectedBidder, len(output.AffectedBidders))
	for i, standing := range output.AffectedBidders {
		affected[i] = AffectedBidder{
			BidderID:   standing.BidderID,
			HighestBid: standing.HighestBid.String(),
		}
	}
	return &CancelAuctionResponse{
		AuctionID:       output.AuctionID,
		Status:          string(output.Status),
		AffectedBidders: affected,
	}
}

type ExtendAuctionResponse struct {
	AuctionID           string    `json:"auction_id"`
	NewEndAt            time.Time `json:"new_end_at"`
	ExtensionsRemaining int32     `json:"extensions_remaining"`
	Status              string    `json:"status"`
}

func FromExtendAuction(output *auctiondto.ExtendAuctionOutput) *ExtendAuctionResponse {
	return &ExtendAuctionResponse{
		AuctionID:           output.AuctionID,
		NewEndAt:            output.NewEndAt,
		ExtensionsRemaining: output.ExtensionsRemaining,
		Status:              string(output.Status),
	}
}

type BidResponse struct {
	BidID     string    `json:"bid_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type BidHistoryResponse struct {
	AuctionID string        `json:"auction_id"`
	Total     int64         `json:"total"`
	Bids      []BidResponse `json:"bids"`
}

func FromBidHistory(auctionID string, bids []*domain.Bid, total int64) *BidHistoryResponse {
	items := make([]BidResponse, len(bids))
	for i, bid := range bids {
		items[i] = BidResponse{
			BidID:     bid.ID,
			BidderID:  bid.BidderID,
			Amount:    bid.Amount.String(),
			CreatedAt: bid.CreatedAt,
		}
	}
	return &BidHistoryResponse{AuctionID: auctionID, Total: total, Bids: items}
}

type VendorActionResponse struct {
	ActionID   string    `json:"action_id"`
	ActorID    string    `json:"actor_id"`
	ActionType string    `json:"action_type"`
	Reason     string    `json:"reason,omitempty"`
	HoursAdded int32     `json:"hours_added,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type VendorActionsResponse struct {
	AuctionID string                 `json:"auction_id"`
	Actions   []VendorActionResponse `json:"actions"`
}

func FromVendorActions(auctionID string, actions []*domain.VendorAction) *VendorActionsResponse {
	items := make([]VendorActionResponse, len(actions))
	for i, action := range actions {
		items[i] = VendorActionResponse{
			ActionID:   action.ID,
			ActorID:    action.ActorID,
			ActionType: string(action.ActionType),
			Reason:     action.Reason,
			HoursAdded: action.HoursAdded,
			CreatedAt:  action.CreatedAt,
		}
	}
	return &VendorActionsResponse{AuctionID: auctionID, Actions: items}
}
