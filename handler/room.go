package handler

import (
	"log"

	"hotel_gateway/constants"
	"hotel_gateway/helper"
	"hotel_gateway/model"
	"hotel_gateway/upstream"
	"hotel_gateway/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

func (h *Handler) roomView(room model.Room) model.RoomView {
	var view model.RoomView
	copier.Copy(&view, &room)
	view.ImageUrl = h.API.ImageURL(room.ImageUrl)
	return view
}

// GetRooms serves the landing-page listing, preferring the warmed cache.
func (h *Handler) GetRooms(c *fiber.Ctx) error {
	rooms, ok := h.Rooms.Get()
	if !ok {
		fetched, err := h.API.ListRooms(c.Context())
		if err != nil {
			return upstreamError(c, constants.UPSTREAM_UNREACHABLE, err)
		}
		h.Rooms.Put(fetched)
		rooms = fetched
	}

	views := make([]model.RoomView, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, h.roomView(room))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, views)
}

// GetRoomDetail fetches a room and, for signed-in callers, their
// reservation history, and reports whether booking is currently allowed.
func (h *Handler) GetRoomDetail(c *fiber.Ctx) error {
	roomSlug := slug.Make(c.Params("slug"))
	_, sess := helper.SessionFromCtx(c)

	var (
		room         *model.Room
		reservations []model.Reservation
		histErr      error
	)

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		var err error
		room, err = h.API.GetRoomBySlug(ctx, roomSlug)
		return err
	})
	if sess != nil {
		// History failure must not take down the room view: booking
		// stays allowed and the server remains the authority.
		g.Go(func() error {
			reservations, histErr = h.API.HistoryReservations(ctx, sess.Token)
			if histErr != nil {
				log.Printf("room detail: history fetch failed: %v", histErr)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if upstream.IsNotFound(err) {
			return utils.NoticeResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, "/")
		}
		return upstreamError(c, constants.ROOM_NOT_FOUND, err)
	}

	hasActive := false
	if sess != nil && histErr == nil {
		hasActive = !helper.CanBook(reservations)
	}
	roomBooked := room.Status == constants.ROOM_BOOKED

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"room":                   h.roomView(*room),
		"can_book":               !hasActive && !roomBooked,
		"has_active_reservation": hasActive,
		"room_booked":            roomBooked,
	})
}
