package main

import (
	"log"
	"time"

	"hotel_gateway/config"
	"hotel_gateway/handler"
	"hotel_gateway/helper"
	"hotel_gateway/router"
	"hotel_gateway/session"
	"hotel_gateway/upstream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // proof-of-payment uploads
	})

	origins := config.Config("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	api := upstream.New()
	store := session.NewStore(session.Connect(), 24*time.Hour)
	rooms := helper.NewRoomCache(5 * time.Minute)

	helper.StartRoomCacheScheduler(api, rooms)
	defer helper.StopRoomCacheScheduler()
	helper.StartCacheSweeper(rooms, store)
	defer helper.StopCacheSweeper()

	h := handler.New(api, store, rooms)
	router.SetupRoutes(app, h, store)

	port := config.Config("PORT")
	if port == "" {
		port = "8002"
	}
	log.Fatal(app.Listen(":" + port))
}
