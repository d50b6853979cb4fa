package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"lalibela_manager/handler"
	"lalibela_manager/middleware"
	"lalibela_manager/validate"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)

	reservations := api.Group("/reservations", logger.New())
	reservations.Post("/", validate.CreateReservation(), handler.CreateReservation)
	reservations.Get("/", middleware.Protected(), handler.GetReservations)
	reservations.Get("/availability", handler.GetAvailability)

	// Guest booking flow: in-memory stepper over the same create path.
	flow := reservations.Group("/flow")
	flow.Post("/", handler.StartFlow)
	flow.Get("/:sessionId", handler.GetFlow)
	flow.Post("/:sessionId/arrival", handler.FlowArrival)
	flow.Post("/:sessionId/atmosphere", handler.FlowAtmosphere)
	flow.Post("/:sessionId/table", handler.FlowTable)
	flow.Post("/:sessionId/contact", handler.FlowContact)
	flow.Post("/:sessionId/back", handler.FlowBack)

	reservations.Get("/:code/qr", handler.GetReservationQR)
	reservations.Put("/:id", middleware.Protected(), validate.UpdateReservationStatus(), handler.UpdateReservationStatus)
	reservations.Delete("/:id", middleware.Protected(), handler.DeleteReservation)

	menu := api.Group("/menu", logger.New())
	menu.Get("/", handler.GetMenu)
	menu.Post("/", middleware.Protected(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Put("/:id", middleware.Protected(), validate.UpdateMenuItem("id"), handler.UpdateMenuItem)
	menu.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteMenuItem)

	marketing := api.Group("/marketing", logger.New())
	marketing.Get("/", middleware.OptionalJWT(), handler.GetMarketingPosts)
	marketing.Post("/", middleware.Protected(), validate.CreateMarketingPost(), handler.CreateMarketingPost)
	marketing.Put("/:id", middleware.Protected(), validate.UpdateMarketingPost("id"), handler.UpdateMarketingPost)
	marketing.Delete("/:id", middleware.Protected(), validate.GetById("id"), handler.DeleteMarketingPost)

	zones := api.Group("/zones", logger.New())
	zones.Get("/", handler.GetZones)
	zones.Patch("/:id/close", middleware.Protected(), validate.GetById("id"), handler.CloseZone)
	zones.Patch("/:id/open", middleware.Protected(), validate.GetById("id"), handler.OpenZone)
}
