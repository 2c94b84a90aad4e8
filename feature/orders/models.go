package orders

import "time"

// Error codes returned in ErrorResponse bodies.
const (
	CodeOrdersEmpty      = "ORDERS_EMPTY"
	CodeOrderNotFound    = "ORDER_NOT_FOUND"
	CodeInvalidOrderID   = "INVALID_ORDER_ID"
	CodeInvalidStatus    = "INVALID_STATUS"
	CodeNoMatchingOrders = "NO_MATCHING_ORDERS"
)

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Orders    int       `json:"orders"`
}
