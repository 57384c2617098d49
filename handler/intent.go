package handler

import (
	"errors"
	"log"

	"hotel_gateway/constants"
	"hotel_gateway/helper"
	"hotel_gateway/model"
	"hotel_gateway/upstream"
	"hotel_gateway/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
)

// BookRoom is "Book Now": it re-checks eligibility, guards against a
// duplicate intent for the same room and records the booking intent the
// submission view will consume.
func (h *Handler) BookRoom(c *fiber.Ctx) error {
	roomSlug := slug.Make(c.Params("slug"))
	sessionID, sess := helper.SessionFromCtx(c)

	room, err := h.API.GetRoomBySlug(c.Context(), roomSlug)
	if err != nil {
		if upstream.IsNotFound(err) {
			return utils.NoticeResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, "/")
		}
		return upstreamError(c, constants.ROOM_NOT_FOUND, err)
	}
	if room.Status == constants.ROOM_BOOKED {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ROOM_ALREADY_BOOKED, errors.New("room status is booked"))
	}

	// Advisory one-active-reservation guard; fails open on history errors,
	// the server rejects double bookings authoritatively.
	reservations, err := h.API.HistoryReservations(c.Context(), sess.Token)
	if err != nil {
		log.Printf("book room: history fetch failed: %v", err)
	} else if !helper.CanBook(reservations) {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ACTIVE_RESERVATION_EXISTS, errors.New("active reservation exists"))
	}

	if existing, ok := h.Store.GetIntent(c.Context(), sessionID); ok && existing.RoomID == room.ID {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ROOM_ALREADY_SELECTED, errors.New("intent already set for this room"))
	}

	intent := model.BookingIntent{RoomID: room.ID, RoomSlug: room.RoomSlug}
	if err := h.Store.SetIntent(c.Context(), sessionID, intent); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"intent":   intent,
		"redirect": "/reservation",
	})
}

// DeleteIntent discards the pending intent without submitting.
func (h *Handler) DeleteIntent(c *fiber.Ctx) error {
	sessionID, _ := helper.SessionFromCtx(c)
	h.Store.ClearIntent(c.Context(), sessionID)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":  constants.INTENT_DELETED,
		"redirect": "/",
	})
}
