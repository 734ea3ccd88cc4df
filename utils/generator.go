package utils

import (
	"math/rand"
	"time"

	"github.com/cybruGhost/keattractions-sub001/models"
	"gorm.io/gorm"
)

const referenceLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueBookingReference returns a short human-readable code that is
// not yet used by any booking. Loops until an unused code is found.
func GenerateUniqueBookingReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, referenceLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := "KE-" + string(b)

		var booking models.Booking
		err := tx.Where("reference = ?", code).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
