package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"lalibela_manager/config"
	"lalibela_manager/database"
	"lalibela_manager/handler"
	"lalibela_manager/helper"
	"lalibela_manager/router"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024, // menu/marketing images ride in JSON bodies as base64
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	database.ConnectDB()
	helper.InitCloudinary()
	helper.InitRedis()

	helper.StartMarketingScheduler()
	defer helper.StopMarketingScheduler()
	helper.StartReservationJanitor()
	defer helper.StopReservationJanitor()

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			handler.SweepFlows()
		}
	}()

	router.SetupRoutes(app)

	port := config.Config("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
