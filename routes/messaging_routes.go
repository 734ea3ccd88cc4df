package routes

import (
	"github.com/cybruGhost/keattractions-sub001/handlers"
	"github.com/cybruGhost/keattractions-sub001/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func MessagingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	messages := api.Group("/messages", middleware.Protected())
	messages.Get("", handlers.ListThread)
	messages.Post("", handlers.SendMessage)
	messages.Post("/read", handlers.MarkThreadRead)
	messages.Get("/users", handlers.ListChats)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
