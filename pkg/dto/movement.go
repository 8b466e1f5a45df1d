package dto

// MovementRead is the movement shape returned by the backend.
type MovementRead struct {
	ID                   int     `json:"id"`
	Amount               float64 `json:"amount"`
	Description          string  `json:"description"`
	Date                 ApiDate `json:"date"`
	Time                 string  `json:"time"`
	Type                 string  `json:"type"`
	PaymentMethod        string  `json:"paymentMethod"`
	Warranty             int     `json:"warranty"`
	State                string  `json:"state"`
	Location             string  `json:"location"`
	CategoryID           int     `json:"categoryId"`
	AccountID            int     `json:"accountId"`
	DestinationAccountID int     `json:"destinationAccountId"`
}

// MovementWrite is the create/update request body.
type MovementWrite struct {
	Amount               float64 `json:"amount"`
	Description          string  `json:"description"`
	Date                 ApiDate `json:"date"`
	Time                 string  `json:"time"`
	Type                 string  `json:"type"`
	PaymentMethod        string  `json:"paymentMethod"`
	Warranty             int     `json:"warranty"`
	State                string  `json:"state"`
	Location             string  `json:"location"`
	CategoryID           int     `json:"categoryId"`
	AccountID            int     `json:"accountId"`
	DestinationAccountID int     `json:"destinationAccountId,omitempty"`
}
