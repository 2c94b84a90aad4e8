package systema

import "github.com/shopspring/decimal"

// Record is one order as exported by System A.
// JSON field names are matched case-insensitively.
type Record struct {
	OrderID     string          `json:"OrderID"`
	Customer    string          `json:"Customer"`
	OrderDate   string          `json:"OrderDate"`
	TotalAmount decimal.Decimal `json:"TotalAmount"`
	Status      string          `json:"Status"`
}
