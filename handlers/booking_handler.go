package handlers

import (
	"log"
	"time"

	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/cybruGhost/keattractions-sub001/notifications"
	"github.com/cybruGhost/keattractions-sub001/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var bookingStatuses = []string{models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled}
var paymentStatuses = []string{models.PaymentStatusUnpaid, models.PaymentStatusPaid, models.PaymentStatusRefunded}

type BookingRequest struct {
	UserID            string  `json:"user_id"`
	BookingType       string  `json:"booking_type" validate:"required,oneof=attraction safari"`
	ItemID            string  `json:"item_id" validate:"required,uuid"`
	TravelDate        string  `json:"travel_date"`
	Adults            int     `json:"adults"`
	Children          int     `json:"children"`
	AccommodationType string  `json:"accommodation_type"`
	SpecialRequests   string  `json:"special_requests"`
	TotalPriceUSD     float64 `json:"total_price_usd"`
	TotalPriceKES     float64 `json:"total_price_kes"`
	DepositAmount     float64 `json:"deposit_amount"`
	DepositPaid       bool    `json:"deposit_paid"`
	Status            string  `json:"status"`
	PaymentStatus     string  `json:"payment_status"`
}

// BookingResponse carries a booking plus the display fields the dashboards
// join in: the booked item's name and the owner's contact details.
type BookingResponse struct {
	models.Booking
	ItemName      string `json:"item_name"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

func CreateBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	callerID, _ := uuid.Parse(claims["user_id"].(string))
	role, _ := claims["role"].(string)

	var req BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item id"})
	}

	// Admins may create bookings on a customer's behalf; everyone else books
	// for themselves regardless of the user_id field.
	userID := callerID
	if role == "admin" && req.UserID != "" {
		if parsed, err := uuid.Parse(req.UserID); err == nil {
			userID = parsed
		}
	}

	travelDate := time.Time{}
	if req.TravelDate != "" {
		travelDate, _ = time.Parse("2006-01-02", req.TravelDate)
	}

	booking := models.Booking{
		UserID:            userID,
		BookingType:       req.BookingType,
		ItemID:            itemID,
		TravelDate:        travelDate,
		Adults:            req.Adults,
		Children:          req.Children,
		AccommodationType: req.AccommodationType,
		SpecialRequests:   req.SpecialRequests,
		TotalPriceUSD:     req.TotalPriceUSD,
		TotalPriceKES:     req.TotalPriceKES,
		DepositAmount:     req.DepositAmount,
		DepositPaid:       req.DepositPaid,
		Status:            utils.ClampEnum(req.Status, bookingStatuses, models.BookingStatusConfirmed),
		PaymentStatus:     utils.ClampEnum(req.PaymentStatus, paymentStatuses, models.PaymentStatusUnpaid),
		BookingDate:       time.Now(),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		reference, err := utils.GenerateUniqueBookingReference(tx)
		if err != nil {
			return err
		}
		booking.Reference = reference
		return tx.Create(&booking).Error
	})
	if err != nil {
		log.Printf("🔥 Failed to create booking: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	go func() {
		var user models.User
		if err := database.DB.First(&user, "id = ?", booking.UserID).Error; err == nil {
			notifications.SendEmail(user.FullName(), user.Email, "Booking Received",
				"<h1>Booking Received</h1><p>Your booking <b>"+booking.Reference+"</b> has been recorded. Pay your deposit to secure the date.</p>")
		}
	}()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": booking.ID})
}

func UpdateBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	callerID := claims["user_id"].(string)
	role, _ := claims["role"].(string)

	bookingID := c.Query("id")
	if bookingID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing booking id"})
	}

	// Owner-or-admin: customers can only reach their own rows, and a foreign
	// id looks identical to a missing one.
	query := database.DB
	if role != "admin" {
		query = query.Where("user_id = ?", callerID)
	}

	var booking models.Booking
	if err := query.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	var req BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item id"})
	}

	// Full-record overwrite: callers send the complete booking, and an
	// omitted travel_date clears the stored one.
	travelDate := time.Time{}
	if req.TravelDate != "" {
		travelDate, _ = time.Parse("2006-01-02", req.TravelDate)
	}
	booking.TravelDate = travelDate
	booking.BookingType = req.BookingType
	booking.ItemID = itemID
	booking.Adults = req.Adults
	booking.Children = req.Children
	booking.AccommodationType = req.AccommodationType
	booking.SpecialRequests = req.SpecialRequests
	booking.TotalPriceUSD = req.TotalPriceUSD
	booking.TotalPriceKES = req.TotalPriceKES
	booking.DepositAmount = req.DepositAmount
	booking.DepositPaid = req.DepositPaid
	booking.Status = utils.ClampEnum(req.Status, bookingStatuses, models.BookingStatusConfirmed)
	booking.PaymentStatus = utils.ClampEnum(req.PaymentStatus, paymentStatuses, models.PaymentStatusUnpaid)

	if err := database.DB.Save(&booking).Error; err != nil {
		log.Printf("🔥 Failed to update booking %s: %v", bookingID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// DeleteBooking is deliberately unconditional: deleting an id that does not
// exist affects zero rows and still reports success.
func DeleteBooking(c *fiber.Ctx) error {
	bookingID := c.Query("id")
	if bookingID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing booking id"})
	}

	if err := database.DB.Where("id = ?", bookingID).Delete(&models.Booking{}).Error; err != nil {
		log.Printf("🔥 Failed to delete booking %s: %v", bookingID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete booking"})
	}

	return c.JSON(fiber.Map{"success": true})
}

func ListBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	callerID := claims["user_id"].(string)
	role, _ := claims["role"].(string)

	query := database.DB.Model(&models.Booking{}).Order("created_at desc")

	userID := c.Query("userId")
	if role != "admin" {
		// Owner-only: customers always see their own bookings.
		userID = callerID
	}
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var bookings []models.Booking
	if err := query.Preload("User").Find(&bookings).Error; err != nil {
		log.Printf("🔥 Failed to list bookings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	return c.JSON(enrichBookings(bookings))
}

// enrichBookings resolves each booking's item display name by booking type
// and attaches the owner's contact fields.
func enrichBookings(bookings []models.Booking) []BookingResponse {
	attractionIDs := make([]uuid.UUID, 0)
	safariIDs := make([]uuid.UUID, 0)
	for _, b := range bookings {
		switch b.BookingType {
		case models.BookingTypeAttraction:
			attractionIDs = append(attractionIDs, b.ItemID)
		case models.BookingTypeSafari:
			safariIDs = append(safariIDs, b.ItemID)
		}
	}

	names := make(map[uuid.UUID]string)
	if len(attractionIDs) > 0 {
		var attractions []models.Attraction
		database.DB.Where("id IN ?", attractionIDs).Find(&attractions)
		for _, a := range attractions {
			names[a.ID] = a.Name
		}
	}
	if len(safariIDs) > 0 {
		var safaris []models.Safari
		database.DB.Where("id IN ?", safariIDs).Find(&safaris)
		for _, s := range safaris {
			names[s.ID] = s.Name
		}
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, BookingResponse{
			Booking:       b,
			ItemName:      names[b.ItemID],
			CustomerName:  b.User.FullName(),
			CustomerEmail: b.User.Email,
			CustomerPhone: b.User.Phone,
		})
	}
	return responses
}
