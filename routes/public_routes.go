package routes

import (
	"github.com/cybruGhost/keattractions-sub001/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/attractions", handlers.ListAttractions)
	api.Get("/attractions/:attractionId", handlers.GetAttraction)
	api.Get("/safaris", handlers.ListSafaris)
	api.Get("/safaris/:safariId", handlers.GetSafari)
	api.Get("/reviews", handlers.ListReviews)
}
