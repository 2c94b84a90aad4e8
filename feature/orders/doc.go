// Package orders exposes the reconciled order snapshot over HTTP.
//
// All endpoints are read-only and are mounted under the configured base path
// (default /api/order-hub). Failures are returned as {message, code} bodies.
//
// # HTTP Endpoints
//
//   - GET /health : API status, UTC timestamp and loaded order count.
//   - GET /orders : All orders sorted by date (404 ORDERS_EMPTY when none are loaded).
//   - GET /orders/search?status= : Orders with a canonical status (400 INVALID_STATUS, 404 NO_MATCHING_ORDERS).
//   - GET /orders/:id : First order with a case-insensitive id match (400 INVALID_ORDER_ID, 404 ORDER_NOT_FOUND).
package orders
