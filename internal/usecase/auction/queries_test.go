package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	auctiondto "github.com/yahya159/bidinsouk-sub002/internal/usecase/dto/auction"
)

func TestGetAuctionState_LazyReconcile(t *testing.T) {
	now := time.Now().UTC()
	e := newTestEngine(now)
	a := runningAuction(now)
	a.CurrentBid = dec("130")
	a.BidCount = 2
	a.LeaderID = "bidder-5"
	e.seedAuction(a)

	e.clock.Advance(3 * time.Hour)

	output, err := e.uc.GetAuctionState(context.Background(), "auction-1")
	assert.NoError(t, err)
	check.Equal(t, domain.StatusEnded, output.Status)

	// The read drove the stale stored status to its terminal state.
	stored, _ := e.repo.GetAuctionByID(context.Background(), "auction-1")
	check.Equal(t, domain.StatusEnded, stored.Status)

	ended := e.pub.ByType(domain.EventAuctionEnded)
	assert.Equal(t, 1, len(ended))
	check.Equal(t, "bidder-5", ended[0].WinnerID)
}

func TestGetAuctionState_EndingSoon(t *testing.T) {
	now := time.Now().UTC()
	e := newTestEngine(now)
	a := runningAuction(now)
	a.EndAt = now.Add(4 * time.Minute)
	e.seedAuction(a)

	output, err := e.uc.GetAuctionState(context.Background(), "auction-1")
	assert.NoError(t, err)
	check.Equal(t, domain.StatusEndingSoon, output.Status)
}

func TestGetAuctionBids_Pagination(t *testing.T) {
	now := time.Now().UTC()
	e := newTestEngine(now)
	e.seedAuction(runningAuction(now))
	ctx := context.Background()

	amounts := []string{"110", "120", "130", "140", "150"}
	for _, amount := range amounts {
		_, err := e.uc.PlaceBid(ctx, &auctiondto.PlaceBidInput{
			AuctionID: "auction-1",
			BidderID:  "bidder-1",
			Amount:    dec(amount),
		})
		assert.NoError(t, err)
	}

	bids, total, err := e.uc.GetAuctionBids(ctx, "auction-1", 1, 2)
	assert.NoError(t, err)
	check.Equal(t, int64(5), total)
	assert.Equal(t, 2, len(bids))
	check.True(t, bids[0].Amount.Equal(dec("150")))
	check.True(t, bids[1].Amount.Equal(dec("140")))

	bids, _, err = e.uc.GetAuctionBids(ctx, "auction-1", 3, 2)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(bids))
	check.True(t, bids[0].Amount.Equal(dec("110")))

	// Out-of-range inputs fall back to defaults.
	bids, _, err = e.uc.GetAuctionBids(ctx, "auction-1", 0, 0)
	assert.NoError(t, err)
	check.Equal(t, 5, len(bids))
}

func TestGetVendorActions_AuditTrail(t *testing.T) {
	now := time.Now().UTC()
	e := newTestEngine(now)
	e.seedAuction(runningAuction(now))
	ctx := context.Background()
	vendor := domain.Actor{ID: "store-1", Role: domain.RoleVendor}

	_, err := e.uc.ExtendAuction(ctx, &auctiondto.ExtendAuctionInput{
		AuctionID: "auction-1", Actor: vendor, Hours: 12, Reason: "restock",
	})
	assert.NoError(t, err)
	_, err = e.uc.CancelAuction(ctx, &auctiondto.CancelAuctionInput{
		AuctionID: "auction-1", Actor: vendor, Reason: "listing error",
	})
	assert.NoError(t, err)

	actions, err := e.uc.GetVendorActions(ctx, "auction-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(actions))
	check.Equal(t, domain.ActionExtended, actions[0].ActionType)
	check.Equal(t, domain.ActionCancelled, actions[1].ActionType)
}
