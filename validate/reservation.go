package validate

import (
	"errors"

	"hotel_gateway/constants"
	"hotel_gateway/model"
	"hotel_gateway/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
)

// CreateReservation validates the multipart reservation form: stay dates,
// payment method, optional proof-of-payment images. Parsed values land in
// Locals for the handler.
func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := model.CreateReservationInput{
			CheckInDate:   c.FormValue("check_in_date"),
			CheckOutDate:  c.FormValue("check_out_date"),
			PaymentMethod: c.FormValue("payment_method"),
			PaymentStatus: c.FormValue("payment_status") == "1",
		}

		if input.CheckInDate == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Check-in date is required", errors.New("check_in_date empty"), "check_in_date")
		}
		checkIn, err := utils.ParseDate(input.CheckInDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid date format", err, "check_in_date")
		}
		if checkIn.Before(utils.Today()) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Check-in date cannot be in the past", errors.New("check_in_date in the past"), "check_in_date")
		}

		if input.CheckOutDate == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Check-out date is required", errors.New("check_out_date empty"), "check_out_date")
		}
		checkOut, err := utils.ParseDate(input.CheckOutDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid date format", err, "check_out_date")
		}
		if !checkOut.After(checkIn) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Check-out date must be after check-in date", errors.New("check_out_date not after check_in_date"), "check_out_date")
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid payment method", err, "payment_method")
		}
		if input.PaymentMethod == constants.PAYMENT_MIDTRANS {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MIDTRANS_UNAVAILABLE, errors.New("payment_method not accepted"), "payment_method")
		}

		// Proof uploads are optional, but everything attached must be an
		// image. Content is sniffed, not trusted from the filename.
		if form, err := c.MultipartForm(); err == nil && form != nil {
			for _, file := range form.File["proof"] {
				f, err := file.Open()
				if err != nil {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Could not read uploaded file", err, "proof")
				}
				mt, err := mimetype.DetectReader(f)
				f.Close()
				if err != nil || !(mt.Is("image/jpeg") || mt.Is("image/png")) {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Only image files (JPG, PNG) are allowed", errors.New("proof is not an image"), "proof")
				}
			}
		}

		c.Locals("reservationInput", input)
		c.Locals("checkInDate", checkIn)
		c.Locals("checkOutDate", checkOut)

		return c.Next()
	}
}
