package routes

import (
	"github.com/cybruGhost/keattractions-sub001/handlers"
	"github.com/cybruGhost/keattractions-sub001/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
	auth.Post("/logout", handlers.LogoutUser)
	auth.Get("/me", middleware.Protected(), handlers.GetCurrentUser)
}
