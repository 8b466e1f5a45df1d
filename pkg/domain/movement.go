package domain

import "time"

// Movement types.
const (
	MovementIncome   = "income"
	MovementExpense  = "expense"
	MovementTransfer = "transfer"
)

// Movement states.
const (
	MovementProcessed = "processed"
	MovementPending   = "pending"
)

// Movement is a single transaction on an account. For transfers,
// DestinationAccountID names the receiving account; the backend does not
// reject DestinationAccountID == AccountID, and neither does this client.
type Movement struct {
	ID                   int
	Amount               float64
	Description          string
	Date                 time.Time
	Time                 string
	Type                 string
	PaymentMethod        string
	WarrantyMonths       int
	State                string
	Location             string
	CategoryID           int
	AccountID            int
	DestinationAccountID int
}
