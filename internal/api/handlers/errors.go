package handlers

import (
	"Recipe-Sharing-API/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// errorStatus maps a service error onto the HTTP status and the message
// shown to the caller. Unknown errors become 500 with fallback as the
// logged context.
func errorStatus(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return fiber.StatusBadRequest, domain.MessageEmailPasswordEmpty
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return fiber.StatusConflict, domain.MessageUserAlreadyExists
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, domain.MessageInvalidCredentials
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, domain.MessageUserNotFound
	case errors.Is(err, domain.ErrRecipeNotFound):
		return fiber.StatusNotFound, domain.MessageRecipeNotFound
	case errors.Is(err, domain.ErrRecipeNotFoundOrNotOwned):
		return fiber.StatusNotFound, domain.MessageRecipeNotOwned
	case errors.Is(err, domain.ErrCannotCopyRecipe):
		return fiber.StatusNotFound, domain.MessageCannotCopyRecipe
	default:
		return fiber.StatusInternalServerError, fallback
	}
}
