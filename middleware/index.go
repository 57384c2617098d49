package middleware

import (
	"errors"
	"strings"

	"hotel_gateway/constants"
	"hotel_gateway/helper"
	"hotel_gateway/session"
	"hotel_gateway/utils"

	"github.com/gofiber/fiber/v2"
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("session_token")
	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

// Protected requires a valid session. The session id from the cookie JWT
// is resolved against the store; token and profile land in Locals.
func Protected(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, errors.New("no token"))
		}

		sessionID, err := helper.ParseSessionToken(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, err)
		}

		data, ok := store.GetSession(c.Context(), sessionID)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_REQUIRED, errors.New("session expired"))
		}

		c.Locals("sessionId", sessionID)
		c.Locals("session", &data)
		return c.Next()
	}
}

// OptionalSession loads the session when present and continues either way.
// Anonymous visitors can still view rooms.
func OptionalSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.Next()
		}

		sessionID, err := helper.ParseSessionToken(token)
		if err != nil {
			return c.Next()
		}

		if data, ok := store.GetSession(c.Context(), sessionID); ok {
			c.Locals("sessionId", sessionID)
			c.Locals("session", &data)
		}
		return c.Next()
	}
}
