package routes

import (
	"github.com/cybruGhost/keattractions-sub001/handlers"
	"github.com/cybruGhost/keattractions-sub001/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/dashboard-analytics", handlers.GetDashboardAnalytics)

	attractions := admin.Group("/attractions")
	attractions.Post("", handlers.CreateAttraction)
	attractions.Put("/:attractionId", handlers.UpdateAttraction)
	attractions.Delete("/:attractionId", handlers.DeleteAttraction)

	safaris := admin.Group("/safaris")
	safaris.Post("", handlers.CreateSafari)
	safaris.Put("/:safariId", handlers.UpdateSafari)
	safaris.Delete("/:safariId", handlers.DeleteSafari)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.ToggleUserStatus)
	users.Delete("/:userId", handlers.AdminDeleteUser)

	admin.Get("/bookings", handlers.AdminGetAllBookings)
	admin.Get("/payments", handlers.AdminGetPayments)
}
