package routes

import (
	"github.com/cybruGhost/keattractions-sub001/handlers"
	"github.com/cybruGhost/keattractions-sub001/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments", middleware.Protected())
	payments.Post("", handlers.RecordPayment)
	payments.Get("", handlers.ListPayments)
}
