package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentTypeDeposit = "deposit"
	PaymentTypeFinal   = "final"
)

// Payment is an append-only ledger row. Rows are never updated or deleted;
// the only later write is the generated receipt URL.
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID     uuid.UUID `gorm:"type:uuid;not null;index" json:"booking_id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentType   string    `gorm:"size:20;not null" json:"payment_type"`
	PaymentMethod string    `gorm:"size:50" json:"payment_method"`
	Status        string    `gorm:"size:20;not null" json:"status"`
	ReceiptURL    *string   `gorm:"size:512" json:"receipt_url,omitempty"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
