package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yahya159/bidinsouk-sub002/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memoryAuctionRepo mirrors the store's concurrency contract in memory: a
// mutation succeeds only when the caller read the latest version, and the
// bid/action append happens inside the same critical section.
type memoryAuctionRepo struct {
	mu       sync.Mutex
	auctions map[string]*domain.Auction
	bids     map[string][]*domain.Bid
	actions  map[string][]*domain.VendorAction
}

func newMemoryAuctionRepo() *memoryAuctionRepo {
	return &memoryAuctionRepo{
		auctions: make(map[string]*domain.Auction),
		bids:     make(map[string][]*domain.Bid),
		actions:  make(map[string][]*domain.VendorAction),
	}
}

func copyAuction(a *domain.Auction) *domain.Auction {
	clone := *a
	if a.ReservePrice != nil {
		reserve := *a.ReservePrice
		clone.ReservePrice = &reserve
	}
	return &clone
}

func (r *memoryAuctionRepo) CreateAuction(_ context.Context, auction *domain.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	auction.Version = 1
	r.auctions[auction.ID] = copyAuction(auction)
	return nil
}

func (r *memoryAuctionRepo) GetAuctionByID(_ context.Context, auctionID string) (*domain.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.auctions[auctionID]
	if !ok {
		return nil, domain.ErrAuctionNotFound
	}
	return copyAuction(stored), nil
}

func (r *memoryAuctionRepo) UpdateAuctionCAS(_ context.Context, auction *domain.Auction, expectedVersion int64, newBid *domain.Bid, action *domain.VendorAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.auctions[auction.ID]
	if !ok {
		return domain.ErrAuctionNotFound
	}
	if stored.Version != expectedVersion {
		return domain.ErrVersionConflict
	}
	auction.Version = expectedVersion + 1
	r.auctions[auction.ID] = copyAuction(auction)
	if newBid != nil {
		r.bids[auction.ID] = append(r.bids[auction.ID], newBid)
	}
	if action != nil {
		r.actions[auction.ID] = append(r.actions[auction.ID], action)
	}
	return nil
}

func (r *memoryAuctionRepo) FindDueAuctions(_ context.Context, now time.Time, limit int) ([]*domain.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var due []*domain.Auction
	for _, a := range r.auctions {
		if domain.IsTerminal(a.Status) || a.StartAt.After(now) {
			continue
		}
		due = append(due, copyAuction(a))
		if len(due) == limit {
			break
		}
	}
	return due, nil
}

func (r *memoryAuctionRepo) GetBidsByAuctionID(_ context.Context, auctionID string, page, limit int64) ([]*domain.Bid, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.bids[auctionID]
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= total {
		return nil, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	out := make([]*domain.Bid, 0, end-start)
	for i := total - 1 - start; i >= total-end; i-- {
		out = append(out, all[i])
	}
	return out, total, nil
}

func (r *memoryAuctionRepo) GetDistinctBidders(_ context.Context, auctionID string) ([]domain.BidderStanding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	highest := make(map[string]decimal.Decimal)
	var order []string
	for _, b := range r.bids[auctionID] {
		if prev, ok := highest[b.BidderID]; !ok {
			highest[b.BidderID] = b.Amount
			order = append(order, b.BidderID)
		} else if b.Amount.GreaterThan(prev) {
			highest[b.BidderID] = b.Amount
		}
	}
	standings := make([]domain.BidderStanding, 0, len(order))
	for _, id := range order {
		standings = append(standings, domain.BidderStanding{BidderID: id, HighestBid: highest[id]})
	}
	return standings, nil
}

func (r *memoryAuctionRepo) GetVendorActionsByAuctionID(_ context.Context, auctionID string) ([]*domain.VendorAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.VendorAction(nil), r.actions[auctionID]...), nil
}

type capturePublisher struct {
	mu     sync.Mutex
	events []domain.AuctionEvent
}

func (p *capturePublisher) PublishAuctionEvent(_ context.Context, event domain.AuctionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) Events() []domain.AuctionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.AuctionEvent(nil), p.events...)
}

func (p *capturePublisher) ByType(eventType domain.AuctionEventType) []domain.AuctionEvent {
	var matched []domain.AuctionEvent
	for _, e := range p.Events() {
		if e.Type == eventType {
			matched = append(matched, e)
		}
	}
	return matched
}

type testEngine struct {
	uc    *DefaultAuctionUsecase
	repo  *memoryAuctionRepo
	clock *fakeClock
	pub   *capturePublisher
}

func newTestEngine(now time.Time) *testEngine {
	repo := newMemoryAuctionRepo()
	clock := newFakeClock(now)
	pub := &capturePublisher{}
	return &testEngine{
		uc:    NewDefaultAuctionUsecase(repo, pub, clock, nil, DefaultEngineSettings()),
		repo:  repo,
		clock: clock,
		pub:   pub,
	}
}

// seedAuction installs an already-running auction one hour into its window.
func (e *testEngine) seedAuction(auction *domain.Auction) *domain.Auction {
	if err := e.repo.CreateAuction(context.Background(), auction); err != nil {
		panic(err)
	}
	return auction
}

func runningAuction(now time.Time) *domain.Auction {
	return &domain.Auction{
		ID:           "auction-1",
		StoreID:      "store-1",
		ProductID:    "product-1",
		Title:        "vintage lamp",
		StartPrice:   dec("100"),
		MinIncrement: dec("10"),
		CurrentBid:   dec("100"),
		StartAt:      now.Add(-time.Hour),
		EndAt:        now.Add(2 * time.Hour),
		MaxEndAt:     now.Add(29 * 24 * time.Hour),
		AutoExtend:   true,
		ExtendWindow: 5 * time.Minute,
		Status:       domain.StatusRunning,
	}
}
