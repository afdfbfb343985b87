package background

import (
	"context"
	"log"
	"time"

	usecase "github.com/yahya159/bidinsouk-sub002/internal/usecase/auction"
)

type BackgroundTasks struct {
	AuctionUsecase usecase.AuctionUsecase
	SweepInterval  time.Duration
}

func NewBackgroundTasks(auctionUC usecase.AuctionUsecase, sweepInterval time.Duration) *BackgroundTasks {
	if sweepInterval <= 0 {
		sweepInterval = 30 * time.Second
	}
	return &BackgroundTasks{
		AuctionUsecase: auctionUC,
		SweepInterval:  sweepInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startAuctionSweeper(ctx)
}

func (bt *BackgroundTasks) startAuctionSweeper(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.AuctionUsecase.SweepDueAuctions(ctx); err != nil {
				log.Printf("Auction sweep error: %v\n", err)
			}
		}
	}
}
