package domain

// Currency codes supported by the backend.
const (
	CurrencyCRC = "CRC"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Account types as stored by the backend. The wire values are the
// user-facing Spanish labels, so they are part of the contract.
const (
	AccountTypeCreditCard = "Tarjeta de crédito"
	AccountTypeCash       = "Efectivo"
	AccountTypeSavings    = "Cuenta de ahorros"
	AccountTypeChecking   = "Cuenta corriente"
	AccountTypeInvestment = "Inversión"
)

// Account is a money container owned by the user. ID is zero until the
// server assigns one on create.
type Account struct {
	ID          int
	Name        string
	AccountType string
	Balance     float64
	Currency    string
}

// Category classifies movements and scheduled payments. Fetched for
// dropdown selectors, never mutated by this client.
type Category struct {
	ID   int
	Name string
	Icon string
}
