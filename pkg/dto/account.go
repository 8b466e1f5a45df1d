package dto

// AccountRead is the account shape returned by the backend.
type AccountRead struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	AccountType string  `json:"accountType"`
	Balance     float64 `json:"balance"`
	Currency    string  `json:"currency"`
}

// AccountWrite is the create/update request body. The server assigns ids.
type AccountWrite struct {
	Name        string  `json:"name"`
	AccountType string  `json:"accountType"`
	Balance     float64 `json:"balance"`
	Currency    string  `json:"currency"`
}

// CategoryRead is a movement/payment category, fetched for selectors.
type CategoryRead struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
