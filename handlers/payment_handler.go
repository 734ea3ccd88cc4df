package handlers

import (
	"log"

	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/cybruGhost/keattractions-sub001/notifications"
	"github.com/cybruGhost/keattractions-sub001/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRequest struct {
	BookingID     string  `json:"booking_id" validate:"required,uuid"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentType   string  `json:"payment_type" validate:"required"`
	PaymentMethod string  `json:"payment_method"`
}

// RecordPayment appends a ledger row and reconciles the owning booking's
// payment state in the same transaction: a deposit flips deposit_paid and
// moves payment_status to partially_paid, a final payment moves it to paid.
func RecordPayment(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.PaymentType != models.PaymentTypeDeposit && req.PaymentType != models.PaymentTypeFinal {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "payment_type must be deposit or final"})
	}

	var payment models.Payment
	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, "id = ? AND user_id = ?", req.BookingID, userID).Error; err != nil {
			return err
		}

		payment = models.Payment{
			BookingID:     booking.ID,
			UserID:        userID,
			Amount:        req.Amount,
			PaymentType:   req.PaymentType,
			PaymentMethod: req.PaymentMethod,
			Status:        "completed",
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		switch req.PaymentType {
		case models.PaymentTypeDeposit:
			booking.DepositPaid = true
			booking.PaymentStatus = models.PaymentStatusPartiallyPaid
		case models.PaymentTypeFinal:
			booking.PaymentStatus = models.PaymentStatusPaid
		}
		return tx.Save(&booking).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		log.Printf("🔥 Failed to record payment for booking %s: %v", req.BookingID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	go func() {
		var user models.User
		if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
			return
		}
		notifications.SendEmail(user.FullName(), user.Email, "Payment Received",
			"<h1>Payment Received</h1><p>We have received your "+payment.PaymentType+" payment for booking <b>"+booking.Reference+"</b>. Asante sana!</p>")
		if payment.PaymentType == models.PaymentTypeFinal {
			services.GenerateBookingReceipt(payment, booking, user)
		}
	}()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"paymentId": payment.ID,
		"message":   "Payment recorded",
	})
}

// ListPayments returns the caller's ledger rows for one booking.
func ListPayments(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	bookingID := c.Query("bookingId")
	if bookingID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing bookingId"})
	}

	var payments []models.Payment
	if err := database.DB.
		Where("booking_id = ? AND user_id = ?", bookingID, userID).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		log.Printf("🔥 Failed to list payments for booking %s: %v", bookingID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	return c.JSON(payments)
}
