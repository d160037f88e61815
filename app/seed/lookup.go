package seed

import (
	"database/sql"
	"fmt"
	"math/rand"

	"pieforproviders/app/database"
	"pieforproviders/app/models"
)

// RandomZipcodeOrCreate returns a zipcode for the city, preferring one that
// already exists; when the city has none yet it invents a plausible 5-digit
// code and persists it.
func RandomZipcodeOrCreate(db *sql.DB, city *models.City, rng *rand.Rand) (*models.Zipcode, error) {
	zip, err := database.FirstZipcodeForCity(db, city.ID)
	if err == nil {
		return zip, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to look up zipcode for city %s: %v", city.Name, err)
	}

	code := fmt.Sprintf("%05d", 1000+rng.Intn(99000))
	return database.FindOrCreateZipcode(db, city.ID, code)
}
