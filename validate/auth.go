package validate

import (
	"errors"
	"fmt"

	"hotel_gateway/model"
	"hotel_gateway/utils"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Email == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Email is required", errors.New("email empty"), "email")
		}
		if input.Password == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Password is required", errors.New("password empty"), "password")
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("loginInput", input)

		return c.Next()
	}
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if len(input.Name) < 2 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Name must be at least 2 characters", errors.New("name too short"), "name")
		}
		if len(input.Password) < 8 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Password must be at least 8 characters", errors.New("password too short"), "password")
		}
		if input.Password != input.PasswordConfirmation {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Passwords do not match", errors.New("confirmation mismatch"), "password_confirmation")
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("registerInput", input)

		return c.Next()
	}
}
