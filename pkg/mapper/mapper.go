// Package mapper converts between wire DTOs and domain entities.
package mapper

import (
	"github.com/jbadilla/finanzas-go/pkg/domain"
	"github.com/jbadilla/finanzas-go/pkg/dto"
)

// AccountToDomain maps an account read DTO to the domain entity.
func AccountToDomain(d dto.AccountRead) domain.Account {
	return domain.Account{
		ID:          d.ID,
		Name:        d.Name,
		AccountType: d.AccountType,
		Balance:     d.Balance,
		Currency:    d.Currency,
	}
}

// AccountsToDomain maps a collection of account DTOs.
func AccountsToDomain(ds []dto.AccountRead) []domain.Account {
	out := make([]domain.Account, 0, len(ds))
	for _, d := range ds {
		out = append(out, AccountToDomain(d))
	}
	return out
}

// CategoryToDomain maps a category read DTO.
func CategoryToDomain(d dto.CategoryRead) domain.Category {
	return domain.Category{ID: d.ID, Name: d.Name, Icon: d.Icon}
}

// CategoriesToDomain maps a collection of category DTOs.
func CategoriesToDomain(ds []dto.CategoryRead) []domain.Category {
	out := make([]domain.Category, 0, len(ds))
	for _, d := range ds {
		out = append(out, CategoryToDomain(d))
	}
	return out
}

// MovementToDomain maps a movement read DTO.
func MovementToDomain(d dto.MovementRead) domain.Movement {
	return domain.Movement{
		ID:                   d.ID,
		Amount:               d.Amount,
		Description:          d.Description,
		Date:                 d.Date.Time,
		Time:                 d.Time,
		Type:                 d.Type,
		PaymentMethod:        d.PaymentMethod,
		WarrantyMonths:       d.Warranty,
		State:                d.State,
		Location:             d.Location,
		CategoryID:           d.CategoryID,
		AccountID:            d.AccountID,
		DestinationAccountID: d.DestinationAccountID,
	}
}

// MovementsToDomain maps a collection of movement DTOs.
func MovementsToDomain(ds []dto.MovementRead) []domain.Movement {
	out := make([]domain.Movement, 0, len(ds))
	for _, d := range ds {
		out = append(out, MovementToDomain(d))
	}
	return out
}

// GoalToDomain maps a goal read DTO.
func GoalToDomain(d dto.GoalRead) domain.Goal {
	return domain.Goal{
		ID:              d.ID,
		Name:            d.Name,
		Quantity:        d.Quantity,
		GoalDate:        d.GoalDate.Time,
		CurrentQuantity: d.CurrentQuantity,
		Icon:            d.Icon,
		State:           domain.GoalState(d.State),
		Note:            d.Note,
	}
}

// GoalsToDomain maps a collection of goal DTOs.
func GoalsToDomain(ds []dto.GoalRead) []domain.Goal {
	out := make([]domain.Goal, 0, len(ds))
	for _, d := range ds {
		out = append(out, GoalToDomain(d))
	}
	return out
}

// ContributionToDomain maps a contribution read DTO.
func ContributionToDomain(d dto.ContributionRead) domain.GoalContribution {
	return domain.GoalContribution{
		ID:          d.ID,
		GoalID:      d.GoalID,
		Amount:      d.Amount,
		Date:        d.Date.Time,
		Description: d.Description,
	}
}

// ContributionsToDomain maps a collection of contribution DTOs.
func ContributionsToDomain(ds []dto.ContributionRead) []domain.GoalContribution {
	out := make([]domain.GoalContribution, 0, len(ds))
	for _, d := range ds {
		out = append(out, ContributionToDomain(d))
	}
	return out
}

// ScheduledPaymentToDomain maps a scheduled-payment read DTO.
func ScheduledPaymentToDomain(d dto.ScheduledPaymentRead) domain.ScheduledPayment {
	return domain.ScheduledPayment{
		ID:            d.ID,
		PaymentName:   d.PaymentName,
		AccountID:     d.AccountID,
		AccountName:   d.AccountName,
		CategoryID:    d.CategoryID,
		CategoryName:  d.CategoryName,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		Frequency:     domain.Frequency(d.Frequency),
		StartDate:     d.StartDate.Time,
	}
}

// ScheduledPaymentsToDomain maps a collection of scheduled-payment DTOs.
func ScheduledPaymentsToDomain(ds []dto.ScheduledPaymentRead) []domain.ScheduledPayment {
	out := make([]domain.ScheduledPayment, 0, len(ds))
	for _, d := range ds {
		out = append(out, ScheduledPaymentToDomain(d))
	}
	return out
}

// WarrantyToDomain maps a warranty read DTO. Server-confirmed records are
// tagged as synced.
func WarrantyToDomain(d dto.WarrantyRead) domain.Warranty {
	return domain.Warranty{
		ID:             d.ID,
		Name:           d.Name,
		Price:          d.Price,
		PurchaseDate:   d.PurchaseDate.Time,
		ExpirationDate: d.ExpirationDate.Time,
		Icon:           d.Icon,
		IsExpired:      d.IsExpired,
		DaysRemaining:  d.DaysRemaining,
		CreatedAt:      d.CreatedAt.Time,
		SyncStatus:     domain.SyncSynced,
	}
}

// WarrantiesToDomain maps a collection of warranty DTOs.
func WarrantiesToDomain(ds []dto.WarrantyRead) []domain.Warranty {
	out := make([]domain.Warranty, 0, len(ds))
	for _, d := range ds {
		out = append(out, WarrantyToDomain(d))
	}
	return out
}

// WarrantyToWrite builds the request body for a warranty create/update.
func WarrantyToWrite(w domain.Warranty) dto.WarrantyWrite {
	return dto.WarrantyWrite{
		Name:           w.Name,
		Price:          w.Price,
		PurchaseDate:   dto.NewApiDate(w.PurchaseDate),
		ExpirationDate: dto.NewApiDate(w.ExpirationDate),
		Icon:           w.Icon,
	}
}

// WarrantyStatsToDomain maps the warranty statistics aggregate.
func WarrantyStatsToDomain(d dto.WarrantyStatsRead) domain.WarrantyStats {
	return domain.WarrantyStats(d)
}

// ExchangeRateToDomain maps a stored exchange-rate DTO.
func ExchangeRateToDomain(d dto.ExchangeRateRead) domain.ExchangeRate {
	return domain.ExchangeRate{
		ID:           d.ID,
		FromCurrency: d.FromCurrency,
		ToCurrency:   d.ToCurrency,
		Rate:         d.Rate,
		Date:         d.Date.Time,
	}
}

// ExchangeRatesToDomain maps a collection of stored exchange-rate DTOs.
func ExchangeRatesToDomain(ds []dto.ExchangeRateRead) []domain.ExchangeRate {
	out := make([]domain.ExchangeRate, 0, len(ds))
	for _, d := range ds {
		out = append(out, ExchangeRateToDomain(d))
	}
	return out
}

// DashboardToDomain maps the dashboard aggregate.
func DashboardToDomain(d dto.DashboardRead) domain.Dashboard {
	top := make([]domain.CategoryTotal, 0, len(d.TopCategories))
	for _, c := range d.TopCategories {
		top = append(top, domain.CategoryTotal(c))
	}
	usage := make([]domain.AccountUsage, 0, len(d.AccountUsage))
	for _, u := range d.AccountUsage {
		usage = append(usage, domain.AccountUsage(u))
	}
	balances := d.BalancesByCurrency
	if balances == nil {
		balances = map[string]float64{}
	}
	return domain.Dashboard{
		BalancesByCurrency: balances,
		MonthlyIncome:      d.MonthlyIncome,
		MonthlyExpense:     d.MonthlyExpense,
		NetFlow:            d.NetFlow,
		TopCategories:      top,
		AccountUsage:       usage,
	}
}

// UserToDomain maps the auth response DTO.
func UserToDomain(d dto.UserRead) domain.User {
	return domain.User{ID: d.ID, Name: d.Name, Email: d.Email, Token: d.Token}
}
