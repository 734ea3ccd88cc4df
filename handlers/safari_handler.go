package handlers

import (
	"log"
	"math"

	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/cybruGhost/keattractions-sub001/services"
	"github.com/gofiber/fiber/v2"
)

type SafariRequest struct {
	Name         string  `json:"name" validate:"required,min=2"`
	Location     string  `json:"location"`
	Description  string  `json:"description"`
	DurationDays int     `json:"duration_days" validate:"gte=1"`
	PriceUSD     float64 `json:"price_usd" validate:"required,gt=0"`
	PriceKES     float64 `json:"price_kes"`
	ImageURL     string  `json:"image_url"`
}

func ListSafaris(c *fiber.Ctx) error {
	var safaris []models.Safari
	if err := database.DB.Order("name asc").Find(&safaris).Error; err != nil {
		log.Printf("🔥 Failed to list safaris: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch safaris"})
	}
	return c.JSON(safaris)
}

func GetSafari(c *fiber.Ctx) error {
	var safari models.Safari
	if err := database.DB.First(&safari, "id = ?", c.Params("safariId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Safari not found"})
	}
	return c.JSON(safari)
}

func CreateSafari(c *fiber.Ctx) error {
	var req SafariRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	safari := models.Safari{
		Name:         req.Name,
		Location:     req.Location,
		Description:  req.Description,
		DurationDays: req.DurationDays,
		PriceUSD:     req.PriceUSD,
		PriceKES:     req.PriceKES,
		ImageURL:     req.ImageURL,
	}
	if safari.PriceKES == 0 {
		if kes, err := services.ConvertUSDToKES(req.PriceUSD); err == nil {
			safari.PriceKES = math.Round(kes)
		}
	}

	if err := database.DB.Create(&safari).Error; err != nil {
		log.Printf("🔥 Failed to create safari: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create safari"})
	}
	return c.Status(fiber.StatusCreated).JSON(safari)
}

func UpdateSafari(c *fiber.Ctx) error {
	var safari models.Safari
	if err := database.DB.First(&safari, "id = ?", c.Params("safariId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Safari not found"})
	}

	var req SafariRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	safari.Name = req.Name
	safari.Location = req.Location
	safari.Description = req.Description
	safari.DurationDays = req.DurationDays
	safari.PriceUSD = req.PriceUSD
	safari.PriceKES = req.PriceKES
	safari.ImageURL = req.ImageURL
	if safari.PriceKES == 0 {
		if kes, err := services.ConvertUSDToKES(req.PriceUSD); err == nil {
			safari.PriceKES = math.Round(kes)
		}
	}

	if err := database.DB.Save(&safari).Error; err != nil {
		log.Printf("🔥 Failed to update safari %s: %v", safari.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update safari"})
	}
	return c.JSON(safari)
}

func DeleteSafari(c *fiber.Ctx) error {
	if err := database.DB.Where("id = ?", c.Params("safariId")).Delete(&models.Safari{}).Error; err != nil {
		log.Printf("🔥 Failed to delete safari: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete safari"})
	}
	return c.JSON(fiber.Map{"success": true})
}
