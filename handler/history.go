package handler

import (
	"errors"
	"log"

	"hotel_gateway/constants"
	"hotel_gateway/helper"
	"hotel_gateway/model"
	"hotel_gateway/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GetHistory lists the caller's reservations decorated with the
// transitions they may request and a QR of the reservation code.
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	_, sess := helper.SessionFromCtx(c)

	reservations, err := h.API.HistoryReservations(c.Context(), sess.Token)
	if err != nil {
		return upstreamError(c, constants.UPSTREAM_UNREACHABLE, err)
	}

	views := make([]model.ReservationView, 0, len(reservations))
	for _, r := range reservations {
		var view model.ReservationView
		copier.Copy(&view, &r)
		view.CanCancel = helper.CanCancel(r)
		view.CanRate = helper.CanRate(r, sess.User.ID)
		if r.Room != nil {
			room := *r.Room
			room.ImageUrl = h.API.ImageURL(room.ImageUrl)
			view.Room = &room
		}
		if r.ReservationCode != "" {
			qr, err := utils.QRCodeDataURI(r.ReservationCode, 240)
			if err != nil {
				log.Printf("history: qr for %s failed: %v", r.ReservationCode, err)
			} else {
				view.QrCode = qr
			}
		}
		views = append(views, view)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"user":         sess.User,
		"reservations": views,
	})
}

// CancelReservation forwards the cancel request. Status is not re-checked
// here: the listing only offers cancel on pending reservations and the
// remote service rejects anything else.
func (h *Handler) CancelReservation(c *fiber.Ctx) error {
	sessionID, sess := helper.SessionFromCtx(c)
	reservationID := c.Locals("inputId").(uint)

	if err := h.API.CancelReservation(c.Context(), sess.Token, reservationID); err != nil {
		return upstreamError(c, constants.CANCEL_FAILED, err)
	}

	h.Store.PublishRefresh(c.Context(), sessionID)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.CANCEL_SUCCESS,
		"refresh": true,
	})
}

// CreateRating submits a rating for a completed stay. The duplicate guard
// runs locally before any remote call.
func (h *Handler) CreateRating(c *fiber.Ctx) error {
	sessionID, sess := helper.SessionFromCtx(c)
	reservationID := c.Locals("inputId").(uint)
	input := c.Locals("ratingInput").(model.RatingInput)

	reservations, err := h.API.HistoryReservations(c.Context(), sess.Token)
	if err != nil {
		return upstreamError(c, constants.UPSTREAM_UNREACHABLE, err)
	}

	var reservation *model.Reservation
	for i := range reservations {
		if reservations[i].ID == reservationID {
			reservation = &reservations[i]
			break
		}
	}
	if reservation == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RESERVATION_NOT_FOUND, errors.New("reservation not in history"))
	}

	if reservation.ReservationStatus != constants.RESERVATION_COMPLETED {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.RATING_NOT_COMPLETED, errors.New("reservation not completed"))
	}
	if helper.HasReviewBy(*reservation, sess.User.ID) {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.RATING_ALREADY_GIVEN, errors.New("review already exists"))
	}

	if err := h.API.CreateRating(c.Context(), sess.Token, reservationID, input); err != nil {
		return upstreamError(c, constants.RATING_FAILED, err)
	}

	h.Store.PublishRefresh(c.Context(), sessionID)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.RATING_THANKS,
		"refresh": true,
	})
}
