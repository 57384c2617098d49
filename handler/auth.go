package handler

import (
	"hotel_gateway/constants"
	"hotel_gateway/helper"
	"hotel_gateway/model"
	"hotel_gateway/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (h *Handler) Login(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(model.LoginInput)

	result, err := h.API.Login(c.Context(), input)
	if err != nil {
		return upstreamError(c, constants.LOGIN_FAILED, err)
	}

	sessionID := uuid.NewString()
	data := model.SessionData{Token: result.Token, User: result.User}
	if err := h.Store.SetSession(c.Context(), sessionID, data); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	token, err := helper.GenerateSessionToken(sessionID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":      constants.LOGIN_SUCCESS,
		"user":         result.User,
		"sessionToken": token,
	})
}

func (h *Handler) Register(c *fiber.Ctx) error {
	input := c.Locals("registerInput").(model.RegisterInput)

	if err := h.API.Register(c.Context(), input); err != nil {
		return upstreamError(c, constants.REGISTER_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message":  constants.REGISTER_SUCCESS,
		"redirect": "/login",
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	sessionID, _ := helper.SessionFromCtx(c)
	h.Store.ClearSession(c.Context(), sessionID)

	c.Cookie(&fiber.Cookie{
		Name:     "session_token",
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		MaxAge:   -1,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":  constants.LOGOUT_SUCCESS,
		"redirect": "/login",
	})
}

func (h *Handler) Me(c *fiber.Ctx) error {
	_, data := helper.SessionFromCtx(c)
	return utils.SuccessResponse(c, fiber.StatusOK, data.User)
}
