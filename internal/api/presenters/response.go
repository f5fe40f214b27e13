package presenters

import (
	"Recipe-Sharing-API/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	Response struct {
		Message string `json:"message,omitempty"`
		Data    any    `json:"data,omitempty"`
	}

	ErrorBody struct {
		Error string `json:"error"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes {"error": message}. Server errors are logged and
// replaced with a generic message so no internal detail reaches the caller.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
		message = domain.MessageInternalServerError
	}
	return c.Status(code).JSON(ErrorBody{Error: message})
}
