package handler

import (
	"io"
	"log"
	"time"

	"hotel_gateway/constants"
	"hotel_gateway/helper"
	"hotel_gateway/model"
	"hotel_gateway/upstream"
	"hotel_gateway/utils"

	"github.com/gofiber/fiber/v2"
)

// GetReservation serves the submission form data: the intended room plus
// the intent itself. No intent means nothing to submit.
func (h *Handler) GetReservation(c *fiber.Ctx) error {
	sessionID, _ := helper.SessionFromCtx(c)

	intent, ok := h.Store.GetIntent(c.Context(), sessionID)
	if !ok {
		return utils.NoticeResponse(c, fiber.StatusConflict, constants.NO_ROOM_SELECTED, "/")
	}

	room, err := h.API.GetRoomBySlug(c.Context(), intent.RoomSlug)
	if err != nil {
		if upstream.IsNotFound(err) {
			return utils.NoticeResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, "/")
		}
		return upstreamError(c, constants.UPSTREAM_UNREACHABLE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"room":   h.roomView(*room),
		"intent": intent,
	})
}

// QuoteReservation recomputes the derived total for the chosen dates:
// ceil(nights) × nightly price.
func (h *Handler) QuoteReservation(c *fiber.Ctx) error {
	sessionID, _ := helper.SessionFromCtx(c)

	intent, ok := h.Store.GetIntent(c.Context(), sessionID)
	if !ok {
		return utils.NoticeResponse(c, fiber.StatusConflict, constants.NO_ROOM_SELECTED, "/")
	}

	checkIn, err := utils.ParseDate(c.Query("check_in_date"))
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid date format", err, "check_in_date")
	}
	checkOut, err := utils.ParseDate(c.Query("check_out_date"))
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid date format", err, "check_out_date")
	}

	room, err := h.API.GetRoomBySlug(c.Context(), intent.RoomSlug)
	if err != nil {
		return upstreamError(c, constants.UPSTREAM_UNREACHABLE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"nights":          helper.Nights(checkIn, checkOut),
		"price_per_night": room.PricePerNight,
		"total_price":     helper.TotalPrice(checkIn, checkOut, room.PricePerNight),
	})
}

// CreateReservation turns the pending intent plus the validated form into
// an upstream reservation. The intent is cleared only on success so a
// failed submission can be retried.
func (h *Handler) CreateReservation(c *fiber.Ctx) error {
	sessionID, sess := helper.SessionFromCtx(c)

	intent, ok := h.Store.GetIntent(c.Context(), sessionID)
	if !ok {
		return utils.NoticeResponse(c, fiber.StatusConflict, constants.NO_ROOM_SELECTED, "/")
	}

	input := c.Locals("reservationInput").(model.CreateReservationInput)
	checkIn := c.Locals("checkInDate").(time.Time)
	checkOut := c.Locals("checkOutDate").(time.Time)

	req := upstream.CreateReservationRequest{
		RoomID:        intent.RoomID,
		CheckInDate:   checkIn.Format("2006-01-02"),
		CheckOutDate:  checkOut.Format("2006-01-02"),
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: input.PaymentStatus,
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		if files := form.File["proof"]; len(files) > 0 {
			f, err := files[0].Open()
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Could not read uploaded file", err, "proof")
			}
			content, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Could not read uploaded file", err, "proof")
			}
			req.Proof = &upstream.ProofFile{Filename: files[0].Filename, Content: content}
		}
	}

	if err := h.API.CreateReservation(c.Context(), sess.Token, req); err != nil {
		// Intent is kept so the user can retry.
		return upstreamError(c, constants.RESERVATION_FAILED, err)
	}

	h.Store.ClearIntent(c.Context(), sessionID)
	h.Store.PublishRefresh(c.Context(), sessionID)

	if room, err := h.API.GetRoomBySlug(c.Context(), intent.RoomSlug); err == nil {
		utils.SendReservationConfirmationEmail(sess.User.Email, utils.ReservationConfirmationData{
			GuestName:     sess.User.Name,
			RoomName:      room.RoomName,
			CheckInDate:   req.CheckInDate,
			CheckOutDate:  req.CheckOutDate,
			TotalPrice:    helper.TotalPrice(checkIn, checkOut, room.PricePerNight),
			PaymentMethod: input.PaymentMethod,
			ProfileLink:   "/my-profile",
		})
	} else {
		log.Printf("create reservation: room fetch for confirmation failed: %v", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message":  constants.RESERVATION_CREATED,
		"redirect": "/my-profile",
	})
}
