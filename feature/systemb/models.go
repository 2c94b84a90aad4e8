package systemb

import "github.com/shopspring/decimal"

// Column names of the System B export header.
const (
	ColumnOrderNum    = "order_num"
	ColumnClientName  = "client_name"
	ColumnDatePlaced  = "date_placed"
	ColumnTotal       = "total"
	ColumnOrderStatus = "order_status"
)

// Columns lists the header columns a System B export is expected to carry.
var Columns = []string{ColumnOrderNum, ColumnClientName, ColumnDatePlaced, ColumnTotal, ColumnOrderStatus}

// Record is one order row as exported by System B.
// Fields missing from a row keep their zero value.
type Record struct {
	OrderNum    string
	ClientName  string
	DatePlaced  string
	Total       decimal.Decimal
	OrderStatus int
}
