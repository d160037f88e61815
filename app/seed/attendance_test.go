package seed

import (
	"math/rand"
	"testing"
)

func TestRandomCheckinMinutesStaysWithinWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		m := randomCheckinMinutes(7, rng)
		if m < 7*60 || m >= (7+randCheckinHoursRange)*60 {
			t.Fatalf("checkin offset %d minutes outside [07:00, 10:00)", m)
		}
	}
}

func TestRandomCheckoutMinutesFollowsCheckin(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 1000; i++ {
		checkin := randomCheckinMinutes(7, rng)
		checkout := randomCheckoutMinutes(checkin, rng)
		if checkout <= checkin {
			t.Fatalf("checkout %d not after checkin %d", checkout, checkin)
		}
		if checkout-checkin >= 60*randCheckoutHoursRange {
			t.Fatalf("shift of %d minutes is %d hours or longer", checkout-checkin, randCheckoutHoursRange)
		}
	}
}
