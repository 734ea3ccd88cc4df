package routes

import (
	"github.com/cybruGhost/keattractions-sub001/handlers"
	"github.com/cybruGhost/keattractions-sub001/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReviewRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/reviews", middleware.Protected(), handlers.SubmitReview)
}
