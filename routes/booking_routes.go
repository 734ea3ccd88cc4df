package routes

import (
	"github.com/cybruGhost/keattractions-sub001/handlers"
	"github.com/cybruGhost/keattractions-sub001/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Get("", handlers.ListBookings)
	bookings.Post("", handlers.CreateBooking)
	bookings.Put("", handlers.UpdateBooking)
	bookings.Delete("", middleware.AdminRequired(), handlers.DeleteBooking)
}
