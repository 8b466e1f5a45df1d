// Package validation holds the pure form rules evaluated before any
// request leaves the client. A failing rule blocks submission; nothing
// here touches the network.
package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var now = time.Now

// Result is a single field verdict. Message is empty when Valid.
type Result struct {
	Valid   bool
	Message string
}

func ok() Result             { return Result{Valid: true} }
func fail(msg string) Result { return Result{Valid: false, Message: msg} }

const (
	nameMinLen = 2
	nameMaxLen = 100
	priceMax   = 999_999_999
	// Warranty span limits: anything shorter than a day or longer than
	// fifteen years is taken as a typo in the date pickers.
	minSpan      = 24 * time.Hour
	maxSpanYears = 15
)

var nameAllowed = "áéíóúüñÁÉÍÓÚÜÑ-_ "

// Name checks the free-text name fields (warranties, goals, accounts).
// Allowed characters: letters, digits, spaces, hyphen, underscore and
// accented Spanish letters.
func Name(s string) Result {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fail("el nombre es requerido")
	}
	if utf8.RuneCountInString(trimmed) < nameMinLen {
		return fail(fmt.Sprintf("el nombre debe tener al menos %d caracteres", nameMinLen))
	}
	if utf8.RuneCountInString(trimmed) > nameMaxLen {
		return fail(fmt.Sprintf("el nombre no puede exceder %d caracteres", nameMaxLen))
	}
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune(nameAllowed, r):
		default:
			return fail("el nombre contiene caracteres no permitidos")
		}
	}
	return ok()
}

// Price checks a price form field as typed, before conversion.
func Price(s string) Result {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fail("el precio es requerido")
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fail("el precio debe ser un número válido")
	}
	// ParseFloat accepts "NaN" and "Inf" spellings; neither is a price.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fail("el precio debe ser un número válido")
	}
	if v <= 0 {
		return fail("el precio debe ser mayor a cero")
	}
	if v > priceMax {
		return fail("el precio excede el máximo permitido")
	}
	return ok()
}

// DateRange checks a purchase/expiration pair. The purchase may be any
// time up to the end of today; the expiration must follow it by at least
// one day and at most fifteen years.
func DateRange(purchase, expiration time.Time) Result {
	// The boundary is the local calendar day, not a UTC truncation: a
	// purchase entered this evening in a western zone is still "today".
	n := now()
	y, mo, d := n.Date()
	endOfToday := time.Date(y, mo, d, 23, 59, 59, int(time.Second-time.Nanosecond), n.Location())
	if purchase.After(endOfToday) {
		return fail("la fecha de compra no puede ser futura")
	}
	if !expiration.After(purchase) {
		return fail("la fecha de vencimiento debe ser posterior a la compra")
	}
	span := expiration.Sub(purchase)
	if span < minSpan {
		return fail("la garantía debe durar al menos un día")
	}
	if expiration.After(purchase.AddDate(maxSpanYears, 0, 0)) {
		return fail("la garantía no puede exceder 15 años")
	}
	return ok()
}

// Form reports whether every field result passed and every required text
// field is non-blank.
func Form(results []Result, required ...string) bool {
	for _, r := range results {
		if !r.Valid {
			return false
		}
	}
	for _, s := range required {
		if strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}

var structValidator = validator.New()

// Struct runs tag-based validation for the auth payloads.
func Struct(v any) error {
	return structValidator.Struct(v)
}
