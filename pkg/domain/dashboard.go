package domain

// CategoryTotal is one row of the top-expense-categories ranking.
type CategoryTotal struct {
	CategoryID   int
	CategoryName string
	Total        float64
}

// AccountUsage counts movements per account for the dashboard.
type AccountUsage struct {
	AccountID   int
	AccountName string
	Movements   int
}

// Dashboard is the read-only statistics aggregate. It is fetched and
// rendered, never mutated client-side.
type Dashboard struct {
	BalancesByCurrency map[string]float64
	MonthlyIncome      float64
	MonthlyExpense     float64
	NetFlow            float64
	TopCategories      []CategoryTotal
	AccountUsage       []AccountUsage
}
