package dto

// DashboardRead is the read-only statistics aggregate.
type DashboardRead struct {
	BalancesByCurrency map[string]float64  `json:"balancesByCurrency"`
	MonthlyIncome      float64             `json:"monthlyIncome"`
	MonthlyExpense     float64             `json:"monthlyExpense"`
	NetFlow            float64             `json:"netFlow"`
	TopCategories      []CategoryTotalRead `json:"topCategories"`
	AccountUsage       []AccountUsageRead  `json:"accountUsage"`
}

// CategoryTotalRead is one row of the top-expense ranking.
type CategoryTotalRead struct {
	CategoryID   int     `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Total        float64 `json:"total"`
}

// AccountUsageRead counts movements per account.
type AccountUsageRead struct {
	AccountID   int    `json:"accountId"`
	AccountName string `json:"accountName"`
	Movements   int    `json:"movements"`
}
