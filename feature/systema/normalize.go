package systema

import (
	"strings"
	"time"
	"unicode"

	"order-hub/core/reconcile"

	"github.com/araddon/dateparse"
)

// statusTable maps upper-cased System A status tokens to canonical statuses.
var statusTable = map[string]reconcile.Status{
	"PEND": reconcile.StatusPending,
	"PROC": reconcile.StatusProcessing,
	"SHIP": reconcile.StatusShipped,
	"COMP": reconcile.StatusCompleted,
	"CANC": reconcile.StatusCancelled,
}

// MapStatus maps a System A status token case-insensitively.
// Anything outside the table, including an empty token, is Unknown.
func MapStatus(code string) reconcile.Status {
	if status, ok := statusTable[strings.ToUpper(code)]; ok {
		return status
	}
	return reconcile.StatusUnknown
}

// NormalizeDate parses raw as a generic date and formats it as YYYY-MM-DD.
// Unparseable values are returned unchanged, and so are values the parser
// could only complete by filling in parts: bare numbers (epoch forms),
// inputs without year, month and day, and results in year 0.
func NormalizeDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !hasDateParts(trimmed) {
		return raw
	}
	t, err := dateparse.ParseIn(trimmed, time.UTC)
	if err != nil || t.Year() == 0 {
		return raw
	}
	return t.Format(reconcile.DateLayout)
}

// hasDateParts reports whether s has at least three alphanumeric fields
// (year, month, day) and is not a bare number.
func hasDateParts(s string) bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return len(fields) >= 3
}

// Normalize converts a System A record into the canonical schema.
func Normalize(rec Record) reconcile.UnifiedOrder {
	return reconcile.UnifiedOrder{
		OrderID:      rec.OrderID,
		SourceSystem: reconcile.SystemA,
		CustomerName: rec.Customer,
		OrderDate:    NormalizeDate(rec.OrderDate),
		TotalAmount:  rec.TotalAmount,
		Status:       MapStatus(rec.Status),
	}
}
