package systemb

import (
	"strings"
	"time"

	"order-hub/core/reconcile"
)

// statusTable maps System B numeric status codes to canonical statuses.
var statusTable = map[int]reconcile.Status{
	1: reconcile.StatusPending,
	2: reconcile.StatusProcessing,
	3: reconcile.StatusShipped,
	4: reconcile.StatusCompleted,
	5: reconcile.StatusCancelled,
}

// dateLayouts are the US month/day/year forms System B emits, tried in order.
// The ISO layout keeps already-canonical dates stable.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04 PM",
	"1/2/2006 3:04:05 PM",
	"1-2-2006",
	reconcile.DateLayout,
}

// MapStatus maps a System B status code. Codes outside 1-5 are Unknown.
func MapStatus(code int) reconcile.Status {
	if status, ok := statusTable[code]; ok {
		return status
	}
	return reconcile.StatusUnknown
}

// NormalizeDate parses raw as a US month/day/year date and formats it as YYYY-MM-DD.
// Unparseable values are returned unchanged.
func NormalizeDate(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(reconcile.DateLayout)
		}
	}
	return raw
}

// Normalize converts a System B record into the canonical schema.
func Normalize(rec Record) reconcile.UnifiedOrder {
	return reconcile.UnifiedOrder{
		OrderID:      rec.OrderNum,
		SourceSystem: reconcile.SystemB,
		CustomerName: rec.ClientName,
		OrderDate:    NormalizeDate(rec.DatePlaced),
		TotalAmount:  rec.Total,
		Status:       MapStatus(rec.OrderStatus),
	}
}
