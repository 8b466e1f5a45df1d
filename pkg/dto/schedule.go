package dto

// ScheduledPaymentRead is the scheduled-payment shape returned by the
// backend, including the denormalized account and category names.
type ScheduledPaymentRead struct {
	ID            int     `json:"id"`
	PaymentName   string  `json:"paymentName"`
	AccountID     int     `json:"accountId"`
	AccountName   string  `json:"accountName"`
	CategoryID    int     `json:"categoryId"`
	CategoryName  string  `json:"categoryName"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	Frequency     string  `json:"frequency"`
	StartDate     ApiDate `json:"startDate"`
}

// ScheduledPaymentWrite is the create/update request body.
type ScheduledPaymentWrite struct {
	PaymentName   string  `json:"paymentName"`
	AccountID     int     `json:"accountId"`
	CategoryID    int     `json:"categoryId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	Frequency     string  `json:"frequency"`
	StartDate     ApiDate `json:"startDate"`
}
