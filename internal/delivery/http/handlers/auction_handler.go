package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yahya159/bidinsouk-sub002/internal/delivery/http/dto/request"
	"github.com/yahya159/bidinsouk-sub002/internal/delivery/http/dto/response"
	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	usecase "github.com/yahya159/bidinsouk-sub002/internal/usecase/auction"
	auctiondto "github.com/yahya159/bidinsouk-sub002/internal/usecase/dto/auction"
)

// AuctionHandler exposes the bidding engine over JSON. The upstream gateway
// authenticates callers and forwards their identity in X-Actor-Id and
// X-Actor-Role.
type AuctionHandler struct {
	uc usecase.AuctionUsecase
}

func NewAuctionHandler(uc usecase.AuctionUsecase) *AuctionHandler {
	return &AuctionHandler{uc: uc}
}

func actorFromHeaders(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   c.GetHeader("X-Actor-Id"),
		Role: domain.ActorRole(c.GetHeader("X-Actor-Role")),
	}
}

func (h *AuctionHandler) CreateAuction(c *gin.Context) {
	var req request.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
		return
	}

	var window time.Duration
	if req.ExtendWindow != "" {
		parsed, err := time.ParseDuration(req.ExtendWindow)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Code: "INVALID_REQUEST", Message: "extend_window must be a duration such as 5m"})
			return
		}
		window = parsed
	}

	state, err := h.uc.CreateAuction(c.Request.Context(), &auctiondto.CreateAuctionInput{
		StoreID:      req.StoreID,
		ProductID:    req.ProductID,
		Title:        req.Title,
		StartPrice:   req.StartPrice,
		ReservePrice: req.ReservePrice,
		MinIncrement: req.MinIncrement,
		StartAt:      req.StartAt,
		EndAt:        req.EndAt,
		AutoExtend:   req.AutoExtend,
		ExtendWindow: window,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromAuctionState(state))
}

func (h *AuctionHandler) PlaceBid(c *gin.Context) {
	var req request.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
		return
	}

	actor := actorFromHeaders(c)
	if actor.ID == "" {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Code: "UNAUTHENTICATED", Message: "caller identity is required"})
		return
	}

	output, err := h.uc.PlaceBid(c.Request.Context(), &auctiondto.PlaceBidInput{
		AuctionID: c.Param("id"),
		BidderID:  actor.ID,
		Amount:    req.Amount,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromBidAccepted(output))
}

func (h *AuctionHandler) CancelAuction(c *gin.Context) {
	var req request.CancelAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
		return
	}

	actor := actorFromHeaders(c)
	if actor.ID == "" {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Code: "UNAUTHENTICATED", Message: "caller identity is required"})
		return
	}

	output, err := h.uc.CancelAuction(c.Request.Context(), &auctiondto.CancelAuctionInput{
		AuctionID: c.Param("id"),
		Actor:     actor,
		Reason:    req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCancelAuction(output))
}

func (h *AuctionHandler) ExtendAuction(c *gin.Context) {
	var req request.ExtendAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Code: "INVALID_REQUEST", Message: err.Error()})
		return
	}

	actor := actorFromHeaders(c)
	if actor.ID == "" {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Code: "UNAUTHENTICATED", Message: "caller identity is required"})
		return
	}

	output, err := h.uc.ExtendAuction(c.Request.Context(), &auctiondto.ExtendAuctionInput{
		AuctionID: c.Param("id"),
		Actor:     actor,
		Hours:     req.Hours,
		Reason:    req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromExtendAuction(output))
}

func (h *AuctionHandler) GetAuctionState(c *gin.Context) {
	state, err := h.uc.GetAuctionState(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAuctionState(state))
}

func (h *AuctionHandler) GetAuctionBids(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	auctionID := c.Param("id")
	bids, total, err := h.uc.GetAuctionBids(c.Request.Context(), auctionID, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromBidHistory(auctionID, bids, total))
}

func (h *AuctionHandler) GetVendorActions(c *gin.Context) {
	auctionID := c.Param("id")
	actions, err := h.uc.GetVendorActions(c.Request.Context(), auctionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromVendorActions(auctionID, actions))
}

// writeError maps the engine's error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var rejection *domain.RejectionError
	if errors.As(err, &rejection) {
		body := response.ErrorResponse{Code: string(rejection.Code), Message: rejection.Message}
		if rejection.MinNextBid != nil {
			body.MinNextBid = rejection.MinNextBid.String()
		}
		c.JSON(http.StatusUnprocessableEntity, body)
		return
	}

	var violation *domain.InvariantViolationError
	if errors.As(err, &violation) {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Code: "INVARIANT_VIOLATION", Message: violation.Error()})
		return
	}

	switch {
	case errors.Is(err, domain.ErrAuctionNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Code: "NOT_FOUND", Message: "auction not found"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrContention):
		c.JSON(http.StatusConflict, response.ErrorResponse{Code: "CONTENTION", Message: "too many concurrent bids, retry the request"})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Code: "INTERNAL", Message: "internal error"})
	}
}
