// Package rates aggregates two independent external exchange-rate
// sources into one buy/sell board. The primary source is authoritative
// for CRC/USD; the secondary only supplies the USD→EUR multiplier and is
// allowed to fail.
package rates

import "context"

// BuySellSource serves the official CRC/USD buy and sell rates.
type BuySellSource interface {
	BuySell(ctx context.Context) (buy, sell float64, err error)
	Name() string
}

// MultiplierSource serves the USD→EUR market multiplier used to derive
// approximate CRC/EUR rates by cross-multiplication.
type MultiplierSource interface {
	Multiplier(ctx context.Context) (float64, error)
	Name() string
}
