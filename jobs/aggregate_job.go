package jobs

import (
	"log"

	"github.com/cybruGhost/keattractions-sub001/database"
	"github.com/cybruGhost/keattractions-sub001/models"
)

// SweepAttractionAggregates recomputes every attraction's derived rating and
// review count from the review rows. The per-review recompute already keeps
// these current; the sweep repairs any drift left by interleaved writers.
func SweepAttractionAggregates() {
	log.Println("Running job: SweepAttractionAggregates...")

	var attractionIDs []string
	if err := database.DB.Model(&models.Attraction{}).Pluck("id", &attractionIDs).Error; err != nil {
		log.Printf("Error listing attractions for aggregate sweep: %v", err)
		return
	}

	for _, id := range attractionIDs {
		var stats struct {
			Avg   float64
			Count int64
		}
		if err := database.DB.Model(&models.Review{}).
			Where("attraction_id = ?", id).
			Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
			Scan(&stats).Error; err != nil {
			log.Printf("Error computing aggregates for attraction %s: %v", id, err)
			continue
		}

		if err := database.DB.Model(&models.Attraction{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"rating": stats.Avg, "reviews": stats.Count}).Error; err != nil {
			log.Printf("Error writing aggregates for attraction %s: %v", id, err)
		}
	}
}
