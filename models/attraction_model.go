package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attraction is a bookable catalog item. Rating and Reviews are derived from
// the reviews table and must only be written by the aggregate recompute.
type Attraction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Location    string    `gorm:"size:255" json:"location"`
	Category    string    `gorm:"size:100" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	PriceUSD    float64   `gorm:"type:numeric(10,2);not null" json:"price_usd"`
	PriceKES    float64   `gorm:"type:numeric(12,2)" json:"price_kes"`
	ImageURL    string    `gorm:"size:512" json:"image_url"`
	Rating      float64   `gorm:"default:0" json:"rating"`
	Reviews     int64     `gorm:"default:0" json:"reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Attraction) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
