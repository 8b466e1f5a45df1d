package rates

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/jbadilla/finanzas-go/pkg/domain"
)

// Aggregator combines the primary buy/sell source with the secondary EUR
// multiplier and caches the resulting board for a TTL. The primary
// source failing is a hard error; the secondary failing silently
// degrades to the configured fallback multiplier.
type Aggregator struct {
	primary   BuySellSource
	secondary MultiplierSource
	fallback  float64
	ttl       time.Duration
	logger    *slog.Logger

	mu     sync.Mutex
	cached *domain.RateBoard
}

// NewAggregator wires the two sources. fallbackMultiplier is used when
// the secondary source is unreachable (historically 0.85).
func NewAggregator(
	primary BuySellSource,
	secondary MultiplierSource,
	fallbackMultiplier float64,
	ttl time.Duration,
	logger *slog.Logger,
) *Aggregator {
	return &Aggregator{
		primary:   primary,
		secondary: secondary,
		fallback:  fallbackMultiplier,
		ttl:       ttl,
		logger:    logger,
	}
}

// Board returns the current rate board, serving the cached one while it
// is fresh.
func (a *Aggregator) Board(ctx context.Context) (domain.RateBoard, error) {
	a.mu.Lock()
	if a.cached != nil && time.Since(a.cached.FetchedAt) < a.ttl {
		board := *a.cached
		a.mu.Unlock()
		return board, nil
	}
	a.mu.Unlock()

	buy, sell, err := a.primary.BuySell(ctx)
	if err != nil {
		a.logger.Warn("primary rate source failed", "provider", a.primary.Name(), "error", err)
		return domain.RateBoard{}, fmt.Errorf("%w: %v", domain.ErrRateUnavailable, err)
	}
	if buy <= 0 || sell <= 0 || math.IsNaN(buy) || math.IsNaN(sell) {
		return domain.RateBoard{}, fmt.Errorf("%w: invalid primary rates", domain.ErrRateUnavailable)
	}

	mult := a.fallback
	approx := true
	if m, err := a.secondary.Multiplier(ctx); err != nil {
		// Degrades precision, never blocks the board.
		a.logger.Warn("secondary rate source failed, using fallback multiplier",
			"provider", a.secondary.Name(), "fallback", a.fallback, "error", err)
	} else {
		mult = m
		approx = false
	}

	board := domain.RateBoard{
		USDBuy:    buy,
		USDSell:   sell,
		EURBuy:    buy * mult,
		EURSell:   sell * mult,
		EURApprox: approx,
		FetchedAt: time.Now(),
	}
	a.mu.Lock()
	a.cached = &board
	a.mu.Unlock()
	a.logger.Info("rate board refreshed",
		"usd_buy", board.USDBuy, "usd_sell", board.USDSell,
		"eur_buy", board.EURBuy, "eur_sell", board.EURSell,
		"eur_approx", board.EURApprox)
	return board, nil
}
