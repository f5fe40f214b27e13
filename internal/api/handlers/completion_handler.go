package handlers

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/internal/api/presenters"
	"Recipe-Sharing-API/pkg/completion"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CompletionHandler interface {
		Complete(c *fiber.Ctx) error
	}

	completionHandler struct {
		completionService completion.CompletionService
		validator         *validator.Validate
	}
)

func NewCompletionHandler(completionService completion.CompletionService, validator *validator.Validate) CompletionHandler {
	return &completionHandler{
		completionService: completionService,
		validator:         validator,
	}
}

func (h *completionHandler) Complete(c *fiber.Ctx) error {
	req := new(domain.CompletionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessagePromptRequired, err)
	}

	text, err := h.completionService.Complete(c.Context(), req.Prompt)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedComplete, err)
	}

	return presenters.SuccessResponse(c, domain.CompletionResponse{Text: text}, fiber.StatusOK, domain.MessageSuccessComplete)
}
