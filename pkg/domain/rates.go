package domain

import "time"

// ExchangeRate is a stored rate on the app's own backend, distinct from
// the live external providers.
type ExchangeRate struct {
	ID           int
	FromCurrency string
	ToCurrency   string
	Rate         float64
	Date         time.Time
}

// RateBoard is the aggregated external view: the official CRC/USD buy and
// sell rates plus approximate CRC/EUR rates derived by cross-multiplying
// with a USD/EUR market multiplier.
type RateBoard struct {
	USDBuy    float64
	USDSell   float64
	EURBuy    float64
	EURSell   float64
	EURApprox bool // true when the fallback multiplier was used
	FetchedAt time.Time
}
