package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Safari struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Location     string    `gorm:"size:255" json:"location"`
	Description  string    `gorm:"type:text" json:"description"`
	DurationDays int       `gorm:"default:1" json:"duration_days"`
	PriceUSD     float64   `gorm:"type:numeric(10,2);not null" json:"price_usd"`
	PriceKES     float64   `gorm:"type:numeric(12,2)" json:"price_kes"`
	ImageURL     string    `gorm:"size:512" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Safari) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
