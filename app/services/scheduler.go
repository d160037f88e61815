package services

import (
	"database/sql"
	"log"
	"time"

	"pieforproviders/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 12:05 AM (00:05)
			if now.Hour() == 0 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [00:05]...")

				if err := ExpireLapsedCaseCycles(db); err != nil {
					log.Printf("Error expiring lapsed case cycles: %v", err)
				}
			}
		}
	}()
}

// ExpireLapsedCaseCycles flips every case cycle whose authorization window
// ended before today to expired status.
func ExpireLapsedCaseCycles(db *sql.DB) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	affected, err := database.ExpireCaseCycles(db, today)
	if err != nil {
		return err
	}
	if affected > 0 {
		log.Printf("Marked %d case cycles as expired", affected)
	}
	return nil
}
