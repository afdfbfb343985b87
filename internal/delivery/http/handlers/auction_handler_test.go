package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	auctiondto "github.com/yahya159/bidinsouk-sub002/internal/usecase/dto/auction"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stubUsecase struct {
	placeBid  func(ctx context.Context, input *auctiondto.PlaceBidInput) (*auctiondto.BidAcceptedOutput, error)
	getState  func(ctx context.Context, auctionID string) (*auctiondto.AuctionStateOutput, error)
	cancel    func(ctx context.Context, input *auctiondto.CancelAuctionInput) (*auctiondto.CancelAuctionOutput, error)
	lastInput *auctiondto.PlaceBidInput
}

func (s *stubUsecase) CreateAuction(context.Context, *auctiondto.CreateAuctionInput) (*auctiondto.AuctionStateOutput, error) {
	panic("not wired")
}

func (s *stubUsecase) PlaceBid(ctx context.Context, input *auctiondto.PlaceBidInput) (*auctiondto.BidAcceptedOutput, error) {
	s.lastInput = input
	return s.placeBid(ctx, input)
}

func (s *stubUsecase) CancelAuction(ctx context.Context, input *auctiondto.CancelAuctionInput) (*auctiondto.CancelAuctionOutput, error) {
	return s.cancel(ctx, input)
}

func (s *stubUsecase) ExtendAuction(context.Context, *auctiondto.ExtendAuctionInput) (*auctiondto.ExtendAuctionOutput, error) {
	panic("not wired")
}

func (s *stubUsecase) GetAuctionState(ctx context.Context, auctionID string) (*auctiondto.AuctionStateOutput, error) {
	return s.getState(ctx, auctionID)
}

func (s *stubUsecase) GetAuctionBids(context.Context, string, int64, int64) ([]*domain.Bid, int64, error) {
	return nil, 0, nil
}

func (s *stubUsecase) GetVendorActions(context.Context, string) ([]*domain.VendorAction, error) {
	return nil, nil
}

func (s *stubUsecase) SweepDueAuctions(context.Context) error {
	return nil
}

func newTestRouter(stub *stubUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuctionHandler(stub)
	router.POST("/auctions/:id/bids", h.PlaceBid)
	router.POST("/auctions/:id/cancel", h.CancelAuction)
	router.GET("/auctions/:id", h.GetAuctionState)
	return router
}

func TestPlaceBidHandler_Accepted(t *testing.T) {
	stub := &stubUsecase{
		placeBid: func(_ context.Context, input *auctiondto.PlaceBidInput) (*auctiondto.BidAcceptedOutput, error) {
			return &auctiondto.BidAcceptedOutput{
				BidID:      "bid-1",
				AuctionID:  input.AuctionID,
				CurrentBid: input.Amount,
				MinNextBid: input.Amount.Add(dec("10")),
				Status:     domain.StatusRunning,
			}, nil
		},
	}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/auctions/auction-1/bids", strings.NewReader(`{"amount":"110"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-Id", "bidder-1")
	req.Header.Set("X-Actor-Role", "BIDDER")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	check.Equal(t, "auction-1", stub.lastInput.AuctionID)
	check.Equal(t, "bidder-1", stub.lastInput.BidderID)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	check.Equal(t, "bid-1", body["bid_id"])
	check.Equal(t, "110", body["current_bid"])
	check.Equal(t, "120", body["min_next_bid"])
}

func TestPlaceBidHandler_MissingActor(t *testing.T) {
	router := newTestRouter(&stubUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/auctions/auction-1/bids", strings.NewReader(`{"amount":"110"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPlaceBidHandler_BidTooLow(t *testing.T) {
	stub := &stubUsecase{
		placeBid: func(context.Context, *auctiondto.PlaceBidInput) (*auctiondto.BidAcceptedOutput, error) {
			return nil, domain.NewBidTooLow(dec("120"))
		},
	}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/auctions/auction-1/bids", strings.NewReader(`{"amount":"110"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-Id", "bidder-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	check.Equal(t, "BID_TOO_LOW", body["code"])
	check.Equal(t, "120", body["min_next_bid"])
}

func TestPlaceBidHandler_Contention(t *testing.T) {
	stub := &stubUsecase{
		placeBid: func(context.Context, *auctiondto.PlaceBidInput) (*auctiondto.BidAcceptedOutput, error) {
			return nil, domain.ErrContention
		},
	}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/auctions/auction-1/bids", strings.NewReader(`{"amount":"110"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-Id", "bidder-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCancelHandler_Forbidden(t *testing.T) {
	stub := &stubUsecase{
		cancel: func(context.Context, *auctiondto.CancelAuctionInput) (*auctiondto.CancelAuctionOutput, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/auctions/auction-1/cancel", strings.NewReader(`{"reason":"mistake"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-Id", "store-2")
	req.Header.Set("X-Actor-Role", "VENDOR")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetAuctionStateHandler_NotFound(t *testing.T) {
	stub := &stubUsecase{
		getState: func(context.Context, string) (*auctiondto.AuctionStateOutput, error) {
			return nil, domain.ErrAuctionNotFound
		},
	}
	router := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/auctions/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
