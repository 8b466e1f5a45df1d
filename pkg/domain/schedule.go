package domain

import "time"

// Frequency is the closed set of scheduled-payment recurrence periods.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// ScheduledPayment is a recurring payment template. AccountName and
// CategoryName are denormalized copies sent by the backend for display.
type ScheduledPayment struct {
	ID            int
	PaymentName   string
	AccountID     int
	AccountName   string
	CategoryID    int
	CategoryName  string
	Amount        float64
	PaymentMethod string
	Frequency     Frequency
	StartDate     time.Time
}
