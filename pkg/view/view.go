// Package view derives display-ready values from domain state. Every
// function here is pure; screens call them on each render.
package view

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jbadilla/finanzas-go/pkg/domain"
)

// GoalProgress returns current/target clamped to [0,1]. A target of zero
// or less yields 0 rather than a division blowup.
func GoalProgress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(math.Max(current/target, 0), 1)
}

// FormatAmount renders an amount with thousands grouping, no decimals
// and the currency code as prefix, e.g. "CRC 50,000".
func FormatAmount(currency string, amount float64) string {
	return fmt.Sprintf("%s %s", currency, humanize.Comma(int64(math.Round(amount))))
}

// FormatDate renders dates as dd/MM/yyyy regardless of locale.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FrequencyLabel maps the closed frequency enum to its display label.
func FrequencyLabel(f domain.Frequency) string {
	switch f {
	case domain.FrequencyDaily:
		return "Diario"
	case domain.FrequencyWeekly:
		return "Semanal"
	case domain.FrequencyMonthly:
		return "Mensual"
	case domain.FrequencyYearly:
		return "Anual"
	default:
		return string(f)
	}
}
