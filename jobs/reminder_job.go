package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/models"
	"github.com/cybruGhost/keattractions-sub001/notifications"
)

// SendTravelReminders emails every customer whose confirmed booking travels
// tomorrow.
func SendTravelReminders() {
	log.Println("Running job: SendTravelReminders...")

	tomorrow := time.Now().AddDate(0, 0, 1)
	dayStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var upcomingBookings []models.Booking
	err := database.DB.
		Preload("User").
		Where("status = ? AND travel_date >= ? AND travel_date < ?", models.BookingStatusConfirmed, dayStart, dayEnd).
		Find(&upcomingBookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming travel dates: %v", err)
		return
	}

	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending travel reminder for booking %s", booking.Reference)

		emailSubject := "Reminder: Your Trip is Tomorrow!"
		emailBody := fmt.Sprintf(
			"<h1>Trip Reminder</h1><p>Hi %s,</p><p>This is a friendly reminder that your booking <b>%s</b> travels on %s. Safari njema!</p>",
			booking.User.FirstName,
			booking.Reference,
			booking.TravelDate.Format("January 2, 2006"),
		)

		go notifications.SendEmail(booking.User.FullName(), booking.User.Email, emailSubject, emailBody)
	}
}
