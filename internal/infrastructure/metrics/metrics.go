package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AuctionMetrics holds all prometheus metrics of the bidding engine.
type AuctionMetrics struct {
	BidsAcceptedTotal       prometheus.CounterVec
	BidsAcceptedAmountTotal prometheus.CounterVec
	BidsRejectedTotal       prometheus.CounterVec

	BidContentionRetriesTotal   prometheus.Counter
	BidContentionExhaustedTotal prometheus.Counter
	BidProcessingDuration       prometheus.HistogramVec

	AuctionTransitionsTotal prometheus.CounterVec
	AuctionExtensionsTotal  prometheus.CounterVec

	SweepDuration            prometheus.Histogram
	SweepTransitionsTotal    prometheus.Counter
	InvariantViolationsTotal prometheus.Counter
}

func NewAuctionMetrics() *AuctionMetrics {
	return &AuctionMetrics{
		BidsAcceptedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auction_bids_accepted_total",
				Help: "Total number of accepted bids",
			},
			[]string{"store_id"},
		),

		BidsAcceptedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auction_bids_accepted_amount_total",
				Help: "Total accepted bid amount",
			},
			[]string{"store_id"},
		),

		BidsRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auction_bids_rejected_total",
				Help: "Total number of rejected bids by rejection reason",
			},
			[]string{"reason"},
		),

		BidContentionRetriesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "auction_bid_contention_retries_total",
				Help: "Total number of optimistic-concurrency retries during bid placement",
			},
		),

		BidContentionExhaustedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "auction_bid_contention_exhausted_total",
				Help: "Total number of bids failed after exhausting contention retries",
			},
		),

		BidProcessingDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "auction_bid_processing_duration_seconds",
				Help:    "Bid placement processing time in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"outcome"},
		),

		AuctionTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auction_transitions_total",
				Help: "Total number of lifecycle transitions by target status and trigger",
			},
			[]string{"to_status", "trigger"},
		),

		AuctionExtensionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auction_extensions_total",
				Help: "Total number of end-time extensions by kind",
			},
			[]string{"kind"},
		),

		SweepDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "auction_sweep_duration_seconds",
				Help:    "Duration of one sweeper pass in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),

		SweepTransitionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "auction_sweep_transitions_total",
				Help: "Total number of transitions applied by the sweeper",
			},
		),

		InvariantViolationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "auction_invariant_violations_total",
				Help: "Total number of invariant violations observed in stored state",
			},
		),
	}
}

func (m *AuctionMetrics) RecordBidAccepted(storeID string, amount float64) {
	m.BidsAcceptedTotal.WithLabelValues(storeID).Inc()
	m.BidsAcceptedAmountTotal.WithLabelValues(storeID).Add(amount)
}

func (m *AuctionMetrics) RecordBidRejected(reason string) {
	m.BidsRejectedTotal.WithLabelValues(reason).Inc()
}

func (m *AuctionMetrics) RecordBidProcessingDuration(outcome string, seconds float64) {
	m.BidProcessingDuration.WithLabelValues(outcome).Observe(seconds)
}

func (m *AuctionMetrics) RecordTransition(toStatus, trigger string) {
	m.AuctionTransitionsTotal.WithLabelValues(toStatus, trigger).Inc()
}

func (m *AuctionMetrics) RecordExtension(kind string) {
	m.AuctionExtensionsTotal.WithLabelValues(kind).Inc()
}
