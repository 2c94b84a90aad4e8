package server

import (
	"errors"
	"strings"

	"order-hub/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// CodeServerError is the error code returned for unexpected failures.
const CodeServerError = "SERVER_ERROR"

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ErrorHandler returns a fiber error handler producing ErrorResponse bodies.
// Routing errors keep their status, anything else is a logged 500.
func ErrorHandler(l *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(ErrorResponse{
				Message: fe.Message,
				Code:    statusCode(fe.Code),
			})
		}

		logger.WithRayID(l, c).Error("Unhandled request error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "An unexpected error occurred.",
			Code:    CodeServerError,
		})
	}
}

// statusCode turns an HTTP status into an error code (404 -> NOT_FOUND).
func statusCode(status int) string {
	msg := utils.StatusMessage(status)
	if msg == "" {
		return CodeServerError
	}
	return strings.ToUpper(strings.ReplaceAll(msg, " ", "_"))
}
