package handlers

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/internal/api/presenters"
	"Recipe-Sharing-API/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		GetProfile(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.UserRegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageEmailPasswordEmpty, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		code, message := errorStatus(err, domain.MessageFailedRegister)
		return presenters.ErrorResponse(c, code, message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.UserLoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageEmailPasswordEmpty, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		code, message := errorStatus(err, domain.MessageFailedLogin)
		return presenters.ErrorResponse(c, code, message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *userHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageUserIDRequired, nil)
	}

	return h.profile(c, userID)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	return h.profile(c, userID)
}

func (h *userHandler) profile(c *fiber.Ctx, userID string) error {
	res, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		code, message := errorStatus(err, domain.MessageFailedGetProfile)
		return presenters.ErrorResponse(c, code, message, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}
