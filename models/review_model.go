package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review holds one rating per (user, attraction) pair. The pair is enforced
// by check-then-insert-or-update in the handler, not by a DB constraint.
type Review struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	AttractionID uuid.UUID `gorm:"type:uuid;not null;index" json:"attraction_id"`
	Rating       float64   `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`

	User       User       `gorm:"foreignkey:UserID" json:"-"`
	Attraction Attraction `gorm:"foreignkey:AttractionID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
