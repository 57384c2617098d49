package handler

import (
	"hotel_gateway/helper"
	"hotel_gateway/session"
	"hotel_gateway/upstream"
	"hotel_gateway/utils"

	"github.com/gofiber/fiber/v2"
)

// Handler carries the gateway's collaborators into every view: the remote
// API client, the session/intent store and the room cache. Views never
// reach for ambient state.
type Handler struct {
	API   *upstream.Client
	Store *session.Store
	Rooms *helper.RoomCache
}

func New(api *upstream.Client, store *session.Store, rooms *helper.RoomCache) *Handler {
	return &Handler{API: api, Store: store, Rooms: rooms}
}

// upstreamError maps a failed remote call onto a transient notice, keeping
// the upstream status when there is one.
func upstreamError(c *fiber.Ctx, message string, err error) error {
	return utils.ErrorResponse(c, upstream.StatusOf(err), message, err)
}
