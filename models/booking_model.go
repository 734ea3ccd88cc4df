package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking lifecycle domains. Writes to Status and PaymentStatus must go
// through utils.ClampEnum so out-of-domain input degrades to the default
// instead of failing the request.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	PaymentStatusUnpaid        = "unpaid"
	PaymentStatusPartiallyPaid = "partially_paid"
	PaymentStatusPaid          = "paid"
	PaymentStatusRefunded      = "refunded"

	BookingTypeAttraction = "attraction"
	BookingTypeSafari     = "safari"
)

type Booking struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Reference         string    `gorm:"size:12;unique" json:"reference"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	BookingType       string    `gorm:"size:20;not null" json:"booking_type"`
	ItemID            uuid.UUID `gorm:"type:uuid;not null" json:"item_id"`
	TravelDate        time.Time `json:"travel_date"`
	Adults            int       `gorm:"default:1" json:"adults"`
	Children          int       `gorm:"default:0" json:"children"`
	AccommodationType string    `gorm:"size:100" json:"accommodation_type"`
	SpecialRequests   string    `gorm:"type:text" json:"special_requests"`
	TotalPriceUSD     float64   `gorm:"type:numeric(10,2)" json:"total_price_usd"`
	TotalPriceKES     float64   `gorm:"type:numeric(12,2)" json:"total_price_kes"`
	DepositAmount     float64   `gorm:"type:numeric(10,2)" json:"deposit_amount"`
	DepositPaid       bool      `gorm:"default:false" json:"deposit_paid"`
	Status            string    `gorm:"size:20;not null" json:"status"`
	PaymentStatus     string    `gorm:"size:20;not null" json:"payment_status"`
	BookingDate       time.Time `json:"booking_date"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
