package dto

// ExchangeRateRead is a stored rate on the app's own backend.
type ExchangeRateRead struct {
	ID           int     `json:"id"`
	FromCurrency string  `json:"fromCurrency"`
	ToCurrency   string  `json:"toCurrency"`
	Rate         float64 `json:"rate"`
	Date         ApiDate `json:"date"`
}

// ExchangeRateWrite is the create/update request body.
type ExchangeRateWrite struct {
	FromCurrency string  `json:"fromCurrency"`
	ToCurrency   string  `json:"toCurrency"`
	Rate         float64 `json:"rate"`
	Date         ApiDate `json:"date"`
}
