package handlers

import (
	"log"

	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/gofiber/fiber/v2"
)

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		log.Printf("🔥 Failed to list users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	return c.JSON(users)
}

func ToggleUserStatus(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Params("userId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = !user.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		log.Printf("🔥 Failed to toggle user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}
	return c.JSON(fiber.Map{"success": true, "is_active": user.IsActive})
}

func AdminDeleteUser(c *fiber.Ctx) error {
	if err := database.DB.Where("id = ?", c.Params("userId")).Delete(&models.User{}).Error; err != nil {
		log.Printf("🔥 Failed to delete user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func AdminGetAllBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.Preload("User").Order("created_at desc").Find(&bookings).Error; err != nil {
		log.Printf("🔥 Failed to list all bookings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}
	return c.JSON(enrichBookings(bookings))
}

func AdminGetPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := database.DB.Order("created_at desc").Find(&payments).Error; err != nil {
		log.Printf("🔥 Failed to list payments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(payments)
}

// GetDashboardAnalytics returns the headline counters the admin dashboard
// polls for.
func GetDashboardAnalytics(c *fiber.Ctx) error {
	var userCount, bookingCount, attractionCount, safariCount int64
	var revenue struct {
		Total float64
	}

	database.DB.Model(&models.User{}).Where("role = ?", "customer").Count(&userCount)
	database.DB.Model(&models.Booking{}).Count(&bookingCount)
	database.DB.Model(&models.Attraction{}).Count(&attractionCount)
	database.DB.Model(&models.Safari{}).Count(&safariCount)
	database.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&revenue)

	return c.JSON(fiber.Map{
		"customers":   userCount,
		"bookings":    bookingCount,
		"attractions": attractionCount,
		"safaris":     safariCount,
		"revenue":     revenue.Total,
	})
}
