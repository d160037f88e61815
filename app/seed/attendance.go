package seed

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"pieforproviders/app/database"
	"pieforproviders/app/models"
)

const (
	// checkin lands within 3 hours after the earliest checkin hour
	randCheckinHoursRange = 3
	// checkout lands within 18 hours after checkin, so a shift may cross
	// midnight
	randCheckoutHoursRange = 18
)

// MakeAttendance writes one attendance row per sampled day in
// [firstDate, lastDate] for the given enrollment and allowance. Checkin is a
// random minute within randCheckinHoursRange hours of earliestCheckinHour;
// checkout follows checkin by at least one minute and strictly less than
// randCheckoutHoursRange hours. Re-running over the same range finds the
// existing rows instead of duplicating them.
func MakeAttendance(db *sql.DB, childSite *models.ChildSite, allowance *models.ChildCaseCycle,
	firstDate, lastDate time.Time, earliestCheckinHour int,
	percentOnWeekends float64, skipAllWeekends bool, rng *rand.Rand) error {

	daysAttended := DatesSkippingMostWeekends(firstDate, lastDate, percentOnWeekends, skipAllWeekends, rng)
	for _, dayAttended := range daysAttended {
		checkinMinutes := randomCheckinMinutes(earliestCheckinHour, rng)
		checkoutMinutes := randomCheckoutMinutes(checkinMinutes, rng)

		attendance := &models.Attendance{
			ChildSiteID:      childSite.ID,
			ChildCaseCycleID: allowance.ID,
			StartsOn:         dayAttended,
			CheckIn:          dayAttended.Add(time.Duration(checkinMinutes) * time.Minute),
			CheckOut:         dayAttended.Add(time.Duration(checkoutMinutes) * time.Minute),
		}
		if _, err := database.FindOrCreateAttendance(db, attendance); err != nil {
			return fmt.Errorf("failed to seed attendance for %s: %v",
				dayAttended.Format("2006-01-02"), err)
		}
	}
	return nil
}

// randomCheckinMinutes picks a checkin offset from midnight, in minutes.
func randomCheckinMinutes(earliestCheckinHour int, rng *rand.Rand) int {
	return earliestCheckinHour*60 + rng.Intn(60*randCheckinHoursRange)
}

// randomCheckoutMinutes picks a checkout offset strictly after the checkin
// offset and strictly under randCheckoutHoursRange hours later.
func randomCheckoutMinutes(checkinMinutes int, rng *rand.Rand) int {
	return checkinMinutes + 1 + rng.Intn(60*randCheckoutHoursRange-1)
}
