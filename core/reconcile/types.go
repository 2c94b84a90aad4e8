package reconcile

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical order date form (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// SourceSystem identifies the upstream system a record came from.
type SourceSystem string

const (
	// SystemA emits JSON with coded status tokens.
	SystemA SourceSystem = "SystemA"
	// SystemB emits CSV with numeric status codes and US dates.
	SystemB SourceSystem = "SystemB"
)

// Status is a canonical order status token.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
	// StatusUnknown is assigned to any source code outside the known mappings.
	StatusUnknown Status = "Unknown"
)

// Statuses lists every canonical status token.
var Statuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusCompleted,
	StatusCancelled,
	StatusUnknown,
}

// ParseStatus matches s case-insensitively, ignoring surrounding whitespace,
// against the canonical tokens.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	for _, status := range Statuses {
		if strings.EqualFold(string(status), s) {
			return status, true
		}
	}
	return "", false
}

// UnifiedOrder is the canonical order record served to clients.
type UnifiedOrder struct {
	// OrderID is the upstream identifier. It is not unique across sources.
	OrderID string `json:"orderId"`

	// SourceSystem is the upstream system the order was read from.
	SourceSystem SourceSystem `json:"sourceSystem"`

	// CustomerName is the customer or client name as given by the source.
	CustomerName string `json:"customerName"`

	// OrderDate is YYYY-MM-DD, or the raw source value when it could not be parsed.
	OrderDate string `json:"orderDate"`

	// TotalAmount is the order total.
	TotalAmount decimal.Decimal `json:"totalAmount" swaggertype:"number"`

	// Status is one of the canonical status tokens.
	Status Status `json:"status"`
}

// IsCanonicalDate reports whether s is already a valid YYYY-MM-DD date.
func IsCanonicalDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
