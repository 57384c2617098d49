package handler

import (
	"context"

	"github.com/gofiber/contrib/websocket"
)

// ReservationEvents streams refresh events to an open profile view. Cancel,
// rate and create publish onto the session's channel; the view reloads its
// list on every message instead of mutating local state.
func (h *Handler) ReservationEvents(c *websocket.Conn) {
	defer c.Close()

	sessionID, _ := c.Locals("sessionId").(string)
	if sessionID == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubsub := h.Store.Subscribe(ctx, sessionID)
	if pubsub == nil {
		// No Redis: nothing to push, hold the socket until the client
		// hangs up so it can fall back to polling.
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}
	defer pubsub.Close()

	// Drop the subscription as soon as the client goes away.
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	channel := pubsub.Channel()
	for {
		select {
		case msg, ok := <-channel:
			if !ok {
				return
			}
			if err := c.WriteJSON(map[string]string{"type": msg.Payload}); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
