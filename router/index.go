package router

import (
	"hotel_gateway/handler"
	"hotel_gateway/middleware"
	"hotel_gateway/session"
	"hotel_gateway/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handler.Handler, store *session.Store) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), h.Register)
	auth.Post("/login", validate.Login(), h.Login)
	auth.Post("/logout", middleware.Protected(store), h.Logout)
	auth.Get("/me", middleware.Protected(store), h.Me)

	rooms := v1.Group("/rooms", logger.New())
	rooms.Get("/", h.GetRooms)
	rooms.Get("/:slug", middleware.OptionalSession(store), h.GetRoomDetail)
	rooms.Post("/:slug/book", middleware.Protected(store), h.BookRoom)

	reservation := v1.Group("/reservation", logger.New())
	reservation.Get("/", middleware.Protected(store), h.GetReservation)
	reservation.Get("/quote", middleware.Protected(store), h.QuoteReservation)
	reservation.Post("/", middleware.Protected(store), validate.CreateReservation(), h.CreateReservation)
	reservation.Delete("/", middleware.Protected(store), h.DeleteIntent)

	history := v1.Group("/history", logger.New())
	history.Get("/", middleware.Protected(store), h.GetHistory)
	history.Post("/:reservationId/cancel", middleware.Protected(store), validate.GetById("reservationId"), h.CancelReservation)
	history.Post("/:reservationId/rating", middleware.Protected(store), validate.GetById("reservationId"), validate.CreateRating(), h.CreateRating)

	v1.Get("/ws/reservations", middleware.Protected(store), websocket.New(h.ReservationEvents))
}
