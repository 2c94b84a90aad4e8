package orders

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"order-hub/core/logger"
	"order-hub/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for unified orders.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the order routes.
func (h *Handler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)

	group := router.Group("/orders")
	group.Get("/", h.HandleList)
	// Registered before /:id so "search" is never taken as an id
	group.Get("/search", h.HandleSearch)
	group.Get("/:id", h.HandleGet)
}

// HandleHealth reports API status.
// @Summary Health Check
// @Description Returns the API status, the current UTC time and the number of loaded orders.
// @Tags orders
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(h.service.Health())
}

// HandleList returns every unified order.
// @Summary List Orders
// @Description Returns all unified orders from both source systems, sorted ascending by order date.
// @Tags orders
// @Produce json
// @Success 200 {array} reconcile.UnifiedOrder
// @Failure 404 {object} server.ErrorResponse "No orders loaded"
// @Failure 500 {object} server.ErrorResponse "Internal Server Error"
// @Router /orders [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	orders := h.service.List()
	if len(orders) == 0 {
		logger.WithRayID(h.service.logger, c).Warn("No orders loaded")
		return c.Status(fiber.StatusNotFound).JSON(server.ErrorResponse{
			Message: "No orders found.",
			Code:    CodeOrdersEmpty,
		})
	}
	return c.JSON(orders)
}

// HandleGet returns a single order.
// @Summary Get Order
// @Description Returns the first order, in date order, whose id matches case-insensitively.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} reconcile.UnifiedOrder
// @Failure 400 {object} server.ErrorResponse "Blank order id"
// @Failure 404 {object} server.ErrorResponse "Order not found"
// @Failure 500 {object} server.ErrorResponse "Internal Server Error"
// @Router /orders/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id := pathParam(c, "id")

	order, err := h.service.Get(id)
	switch {
	case errors.Is(err, ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(server.ErrorResponse{
			Message: "Order ID is required.",
			Code:    CodeInvalidOrderID,
		})
	case errors.Is(err, ErrNotFound):
		logger.WithRayID(h.service.logger, c).Debug("Order not found", zap.String("order_id", id))
		return c.Status(fiber.StatusNotFound).JSON(server.ErrorResponse{
			Message: fmt.Sprintf("Order with ID '%s' was not found.", id),
			Code:    CodeOrderNotFound,
		})
	case err != nil:
		return err
	}

	return c.JSON(order)
}

// HandleSearch filters orders by status.
// @Summary Search Orders
// @Description Returns orders whose status matches case-insensitively. A blank status returns all orders.
// @Tags orders
// @Produce json
// @Param status query string false "Status (Pending, Processing, Shipped, Completed, Cancelled, Unknown)"
// @Success 200 {array} reconcile.UnifiedOrder
// @Failure 400 {object} server.ErrorResponse "Invalid status"
// @Failure 404 {object} server.ErrorResponse "No matching orders"
// @Failure 500 {object} server.ErrorResponse "Internal Server Error"
// @Router /orders/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	status := c.Query("status")

	results, err := h.service.Search(status)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(server.ErrorResponse{
			Message: fmt.Sprintf("Invalid status '%s'. Valid values: %s", status, strings.Join(ValidStatuses(), ", ")),
			Code:    CodeInvalidStatus,
		})
	case err != nil:
		return err
	}

	if len(results) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(server.ErrorResponse{
			Message: "No orders match the given filter.",
			Code:    CodeNoMatchingOrders,
		})
	}
	return c.JSON(results)
}

// pathParam returns the unescaped route parameter.
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
