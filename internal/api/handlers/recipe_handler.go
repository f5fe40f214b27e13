package handlers

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/internal/api/presenters"
	"Recipe-Sharing-API/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipeByID(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		CopyRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if req.UserID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageUserIDRequired, nil)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		code, message := errorStatus(err, domain.MessageFailedCreateRecipe)
		return presenters.ErrorResponse(c, code, message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipes(c.Context(), c.Query("userId"))
	if err != nil {
		code, message := errorStatus(err, domain.MessageFailedGetRecipes)
		return presenters.ErrorResponse(c, code, message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeByID(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	if recipeID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageRecipeIDRequired, nil)
	}

	res, err := h.recipeService.GetRecipeByID(c.Context(), recipeID)
	if err != nil {
		code, message := errorStatus(err, domain.MessageFailedGetRecipe)
		return presenters.ErrorResponse(c, code, message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if recipeID == "" || req.UserID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageRecipeUserIDRequired, nil)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), recipeID, *req)
	if err != nil {
		code, message := errorStatus(err, domain.MessageFailedUpdateRecipe)
		return presenters.ErrorResponse(c, code, message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.RecipeOwnerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if recipeID == "" || req.UserID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageRecipeUserIDRequired, nil)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	deleted, err := h.recipeService.DeleteRecipe(c.Context(), recipeID, req.UserID)
	if err != nil {
		code, message := errorStatus(err, domain.MessageFailedDeleteRecipe)
		return presenters.ErrorResponse(c, code, message, err)
	}
	if !deleted {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotOwned, domain.ErrRecipeNotFoundOrNotOwned)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) CopyRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("recipeId")
	req := new(domain.RecipeOwnerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if recipeID == "" || req.UserID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageRecipeUserIDRequired, nil)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCopyRecipe, err)
	}

	res, err := h.recipeService.CopyRecipe(c.Context(), recipeID, req.UserID)
	if err != nil {
		code, message := errorStatus(err, domain.MessageFailedCopyRecipe)
		return presenters.ErrorResponse(c, code, message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCopyRecipe)
}
