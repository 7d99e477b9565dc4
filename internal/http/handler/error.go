package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"panomap/internal/http/middleware"
	"panomap/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusEnvelopes holds the safe code and message for statuses raised as *fiber.Error.
var statusEnvelopes = map[int]errorEnvelope{
	fiber.StatusBadRequest:         {Code: "BAD_REQUEST", Message: "bad request"},
	fiber.StatusNotFound:           {Code: "NOT_FOUND", Message: "resource not found"},
	fiber.StatusMethodNotAllowed:   {Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"},
	fiber.StatusServiceUnavailable: {Code: "SERVICE_UNAVAILABLE", Message: "dependency unavailable"},
}

var internalEnvelope = errorEnvelope{Code: "INTERNAL_ERROR", Message: "internal server error"}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if s, ok := c.Locals(middleware.RequestIDLocalKey).(string); ok {
		return s
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code ("NOT_FOUND", "INTERNAL_ERROR", ...)
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// writeNotFound answers 404 for a catalog record of the given kind.
func writeNotFound(c *fiber.Ctx, what string) error {
	return writeError(c, fiber.StatusNotFound, "NOT_FOUND", what+" not found")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			return writeError(c, fiber.StatusInternalServerError, internalEnvelope.Code, internalEnvelope.Message)
		}
		env, ok := statusEnvelopes[fe.Code]
		if !ok {
			env = internalEnvelope
		}
		return writeError(c, fe.Code, env.Code, env.Message)
	}
}

// writeServiceError translates catalog errors into the standard error response.
// A missing id can never name a record, so it reads as not found.
func writeServiceError(c *fiber.Ctx, err error, what string) error {
	if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrIDRequired) {
		return writeNotFound(c, what)
	}
	return writeError(c, fiber.StatusInternalServerError, internalEnvelope.Code, internalEnvelope.Message)
}
