package handlers

import (
	"log"

	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRequest struct {
	AttractionID string  `json:"attraction_id" validate:"required,uuid"`
	Rating       float64 `json:"rating" validate:"required"`
	Comment      string  `json:"comment"`
}

type ReviewResponse struct {
	models.Review
	ReviewerName string `json:"reviewer_name"`
}

// SubmitReview upserts the caller's review for an attraction: one row per
// (user, attraction), updated in place on resubmission. The attraction's
// aggregate rating and review count are recomputed in the same transaction.
func SubmitReview(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var attraction models.Attraction
		if err := tx.First(&attraction, "id = ?", req.AttractionID).Error; err != nil {
			return err
		}

		var review models.Review
		err := tx.Where("user_id = ? AND attraction_id = ?", userID, req.AttractionID).First(&review).Error
		if err == nil {
			review.Rating = req.Rating
			review.Comment = req.Comment
			if err := tx.Save(&review).Error; err != nil {
				return err
			}
		} else if err == gorm.ErrRecordNotFound {
			review = models.Review{
				UserID:       userID,
				AttractionID: attraction.ID,
				Rating:       req.Rating,
				Comment:      req.Comment,
			}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
		} else {
			return err
		}

		return recomputeAttractionAggregates(tx, attraction.ID)
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attraction not found"})
		}
		log.Printf("🔥 Failed to submit review for attraction %s: %v", req.AttractionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit review"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// recomputeAttractionAggregates rewrites the derived rating/reviews pair from
// the review rows. Never hand-edit those columns anywhere else.
func recomputeAttractionAggregates(tx *gorm.DB, attractionID uuid.UUID) error {
	var stats struct {
		Avg   float64
		Count int64
	}
	if err := tx.Model(&models.Review{}).
		Where("attraction_id = ?", attractionID).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Scan(&stats).Error; err != nil {
		return err
	}

	return tx.Model(&models.Attraction{}).
		Where("id = ?", attractionID).
		Updates(map[string]interface{}{"rating": stats.Avg, "reviews": stats.Count}).Error
}

func ListReviews(c *fiber.Ctx) error {
	attractionID := c.Query("attractionId")
	if attractionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing attractionId"})
	}

	var reviews []models.Review
	if err := database.DB.
		Preload("User").
		Where("attraction_id = ?", attractionID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		log.Printf("🔥 Failed to list reviews for attraction %s: %v", attractionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch reviews"})
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, ReviewResponse{Review: r, ReviewerName: r.User.FullName()})
	}
	return c.JSON(responses)
}
