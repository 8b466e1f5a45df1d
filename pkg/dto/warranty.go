package dto

// WarrantyRead is the warranty shape returned by the backend. IsExpired
// and DaysRemaining are computed server-side on read.
type WarrantyRead struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	PurchaseDate   ApiDate `json:"purchaseDate"`
	ExpirationDate ApiDate `json:"expirationDate"`
	Icon           string  `json:"icon"`
	IsExpired      bool    `json:"isExpired"`
	DaysRemaining  int     `json:"daysRemaining"`
	CreatedAt      ApiDate `json:"createdAt"`
}

// WarrantyWrite is the create/update request body.
type WarrantyWrite struct {
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	PurchaseDate   ApiDate `json:"purchaseDate"`
	ExpirationDate ApiDate `json:"expirationDate"`
	Icon           string  `json:"icon"`
}

// WarrantyBulkDelete names the ids to remove in one call.
type WarrantyBulkDelete struct {
	IDs []int `json:"ids"`
}

// WarrantyStatsRead is the backend's warranty statistics aggregate.
type WarrantyStatsRead struct {
	Total        int     `json:"total"`
	Active       int     `json:"active"`
	Expired      int     `json:"expired"`
	ExpiringSoon int     `json:"expiringSoon"`
	TotalValue   float64 `json:"totalValue"`
}
