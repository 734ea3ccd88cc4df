package main

import (
	"log"
	"time"

	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/jobs"
	"github.com/cybruGhost/keattractions-sub001/notifications"
	"github.com/cybruGhost/keattractions-sub001/routes"
	"github.com/cybruGhost/keattractions-sub001/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	notifications.InitEmailService()

	go services.FetchRates()

	c := cron.New()
	c.AddFunc("0 * * * *", jobs.SweepAttractionAggregates)
	c.AddFunc("0 8 * * *", jobs.SendTravelReminders)
	go c.Start()
	log.Println("✅ Cron jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "KE Attractions",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		MaxAge:           86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Africa/Nairobi",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to KE Attractions API",
		})
	})

	routes.PublicRoutes(app)
	routes.AuthRoutes(app)
	routes.BookingRoutes(app)
	routes.PaymentRoutes(app)
	routes.ReviewRoutes(app)
	routes.MessagingRoutes(app)
	routes.AdminRoutes(app)
	routes.UploadRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	err := app.Listen(":8080")
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
