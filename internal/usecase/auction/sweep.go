package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
)

// SweepDueAuctions evaluates time-driven transitions for every auction whose
// transition condition holds. Version conflicts are skipped: the concurrent
// writer already moved the auction, and the next tick re-checks.
func (uc *DefaultAuctionUsecase) SweepDueAuctions(ctx context.Context) error {
	started := uc.Clock.Now()

	auctions, err := uc.AuctionRepo.FindDueAuctions(ctx, started, uc.Settings.SweepBatchSize)
	if err != nil {
		return err
	}

	for _, auction := range auctions {
		if err := ctx.Err(); err != nil {
			return err
		}

		applied, err := uc.applyTimeTransition(ctx, auction, uc.Clock.Now(), "sweep")
		if errors.Is(err, domain.ErrVersionConflict) {
			continue
		}
		if err != nil {
			slog.Error("sweep transition failed",
				"auction_id", auction.ID, "error", err.Error())
			continue
		}
		if applied && uc.Metrics != nil {
			uc.Metrics.SweepTransitionsTotal.Inc()
		}
	}

	if uc.Metrics != nil {
		uc.Metrics.SweepDuration.Observe(uc.Clock.Now().Sub(started).Seconds())
	}
	return nil
}
