package routes

import (
	"github.com/cybruGhost/keattractions-sub001/handlers"
	"github.com/cybruGhost/keattractions-sub001/middleware"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/uploads/signature", middleware.Protected(), middleware.AdminRequired(), handlers.GenerateUploadSignature)
}
