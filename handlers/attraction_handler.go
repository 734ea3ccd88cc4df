package handlers

import (
	"log"
	"math"

	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/cybruGhost/keattractions-sub001/services"
	"github.com/gofiber/fiber/v2"
)

type AttractionRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	PriceUSD    float64 `json:"price_usd" validate:"required,gt=0"`
	PriceKES    float64 `json:"price_kes"`
	ImageURL    string  `json:"image_url"`
}

func ListAttractions(c *fiber.Ctx) error {
	var attractions []models.Attraction
	if err := database.DB.Order("name asc").Find(&attractions).Error; err != nil {
		log.Printf("🔥 Failed to list attractions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attractions"})
	}
	return c.JSON(attractions)
}

func GetAttraction(c *fiber.Ctx) error {
	var attraction models.Attraction
	if err := database.DB.First(&attraction, "id = ?", c.Params("attractionId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attraction not found"})
	}
	return c.JSON(attraction)
}

func CreateAttraction(c *fiber.Ctx) error {
	var req AttractionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	attraction := models.Attraction{
		Name:        req.Name,
		Location:    req.Location,
		Category:    req.Category,
		Description: req.Description,
		PriceUSD:    req.PriceUSD,
		PriceKES:    req.PriceKES,
		ImageURL:    req.ImageURL,
	}
	if attraction.PriceKES == 0 {
		if kes, err := services.ConvertUSDToKES(req.PriceUSD); err == nil {
			attraction.PriceKES = math.Round(kes)
		}
	}

	if err := database.DB.Create(&attraction).Error; err != nil {
		log.Printf("🔥 Failed to create attraction: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create attraction"})
	}
	return c.Status(fiber.StatusCreated).JSON(attraction)
}

func UpdateAttraction(c *fiber.Ctx) error {
	var attraction models.Attraction
	if err := database.DB.First(&attraction, "id = ?", c.Params("attractionId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attraction not found"})
	}

	var req AttractionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Rating and Reviews stay untouched here: they are derived columns owned
	// by the review recompute.
	attraction.Name = req.Name
	attraction.Location = req.Location
	attraction.Category = req.Category
	attraction.Description = req.Description
	attraction.PriceUSD = req.PriceUSD
	attraction.PriceKES = req.PriceKES
	attraction.ImageURL = req.ImageURL
	if attraction.PriceKES == 0 {
		if kes, err := services.ConvertUSDToKES(req.PriceUSD); err == nil {
			attraction.PriceKES = math.Round(kes)
		}
	}

	if err := database.DB.Save(&attraction).Error; err != nil {
		log.Printf("🔥 Failed to update attraction %s: %v", attraction.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update attraction"})
	}
	return c.JSON(attraction)
}

func DeleteAttraction(c *fiber.Ctx) error {
	if err := database.DB.Where("id = ?", c.Params("attractionId")).Delete(&models.Attraction{}).Error; err != nil {
		log.Printf("🔥 Failed to delete attraction: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete attraction"})
	}
	return c.JSON(fiber.Map{"success": true})
}
