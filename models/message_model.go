package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a directed support-chat message. Read is owned by the recipient
// and flipped in bulk by the mark-read endpoint. Both sides of a customer
// conversation are real user rows; the support inbox is the seeded admin user.
type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sender_id"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Read        bool      `gorm:"default:false" json:"read"`

	Sender User `gorm:"foreignkey:SenderID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
