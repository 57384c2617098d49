package validate

import (
	"errors"
	"fmt"

	"hotel_gateway/model"
	"hotel_gateway/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateRating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RatingInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Rating < 1 || input.Rating > 5 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Please select a rating between 1 and 5", errors.New("rating out of range"), "rating")
		}
		if input.ReviewText == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Review text is required", errors.New("review_text empty"), "review_text")
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("ratingInput", input)

		return c.Next()
	}
}
