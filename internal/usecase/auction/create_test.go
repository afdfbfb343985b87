package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
	auctiondto "github.com/yahya159/bidinsouk-sub002/internal/usecase/dto/auction"
)

func validCreateInput(now time.Time) *auctiondto.CreateAuctionInput {
	return &auctiondto.CreateAuctionInput{
		StoreID:      "store-1",
		ProductID:    "product-1",
		Title:        "vintage lamp",
		StartPrice:   dec("100"),
		MinIncrement: dec("10"),
		StartAt:      now.Add(time.Hour),
		EndAt:        now.Add(25 * time.Hour),
		AutoExtend:   true,
	}
}

func TestCreateAuction(t *testing.T) {
	now := time.Now().UTC()
	e := newTestEngine(now)

	output, err := e.uc.CreateAuction(context.Background(), validCreateInput(now))
	assert.NoError(t, err)
	check.Equal(t, domain.StatusScheduled, output.Status)
	check.True(t, output.CurrentBid.Equal(dec("100")))
	check.True(t, output.MinNextBid.Equal(dec("110")))
	check.Equal(t, int32(3), output.ExtensionsRemaining)

	stored, err := e.repo.GetAuctionByID(context.Background(), output.AuctionID)
	assert.NoError(t, err)
	check.Equal(t, int64(1), stored.Version)
	check.Equal(t, 5*time.Minute, stored.ExtendWindow)
	check.Equal(t, stored.StartAt.Add(30*24*time.Hour), stored.MaxEndAt)
}

func TestCreateAuction_Validation(t *testing.T) {
	now := time.Now().UTC()
	e := newTestEngine(now)
	reserveBelowStart := dec("50")

	cases := []struct {
		name   string
		mutate func(*auctiondto.CreateAuctionInput)
		code   domain.RejectionCode
	}{
		{"missing store", func(in *auctiondto.CreateAuctionInput) { in.StoreID = "" }, domain.RejectionInvalidAuction},
		{"zero start price", func(in *auctiondto.CreateAuctionInput) { in.StartPrice = dec("0") }, domain.RejectionInvalidAuction},
		{"zero increment", func(in *auctiondto.CreateAuctionInput) { in.MinIncrement = dec("0") }, domain.RejectionInvalidAuction},
		{"reserve below start", func(in *auctiondto.CreateAuctionInput) { in.ReservePrice = &reserveBelowStart }, domain.RejectionInvalidAuction},
		{"end before start", func(in *auctiondto.CreateAuctionInput) { in.EndAt = in.StartAt.Add(-time.Hour) }, domain.RejectionInvalidDuration},
		{"duration too long", func(in *auctiondto.CreateAuctionInput) { in.EndAt = in.StartAt.Add(31 * 24 * time.Hour) }, domain.RejectionInvalidDuration},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput(now)
			tc.mutate(input)

			_, err := e.uc.CreateAuction(context.Background(), input)
			assert.Error(t, err)
			var rej *domain.RejectionError
			assert.True(t, errors.As(err, &rej))
			check.Equal(t, tc.code, rej.Code)
		})
	}
}
