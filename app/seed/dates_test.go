package seed

import (
	"math/rand"
	"testing"
	"time"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

func TestDatesSkippingMostWeekendsIncludesEveryWeekday(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	first := day(2024, time.January, 1)
	last := day(2024, time.March, 31)

	dates := DatesSkippingMostWeekends(first, last, 0.10, false, rng)

	got := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		got[d] = true
	}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if isWeekday(d) && !got[d] {
			t.Errorf("weekday %s missing from sampled dates", d.Format("2006-01-02"))
		}
	}
}

func TestDatesSkippingMostWeekendsZeroPercentExcludesWeekends(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// Jan 1 2024 is a Monday, Jan 6-7 the first weekend.
	dates := DatesSkippingMostWeekends(day(2024, time.January, 1), day(2024, time.January, 7), 0, false, rng)

	if len(dates) != 5 {
		t.Fatalf("expected 5 weekdays, got %d dates", len(dates))
	}
	for i, d := range dates {
		want := day(2024, time.January, i+1)
		if !d.Equal(want) {
			t.Errorf("dates[%d] = %s, want %s", i, d.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	}
}

func TestDatesSkippingMostWeekendsSkipAllWins(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	// Even a certain weekend probability loses to the skip flag.
	dates := DatesSkippingMostWeekends(day(2024, time.January, 1), day(2024, time.December, 31), 1.0, true, rng)

	for _, d := range dates {
		if !isWeekday(d) {
			t.Errorf("weekend date %s returned despite skipAllWeekends", d.Format("2006-01-02"))
		}
	}
}

func TestDatesSkippingMostWeekendsFullProbabilityKeepsEveryDay(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	first := day(2024, time.June, 1)
	last := day(2024, time.June, 30)

	dates := DatesSkippingMostWeekends(first, last, 1.0, false, rng)
	if len(dates) != 30 {
		t.Errorf("expected all 30 days of June, got %d", len(dates))
	}
}

func TestDatesSkippingMostWeekendsInclusiveBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	first := day(2024, time.January, 1) // Monday
	last := day(2024, time.January, 5)  // Friday

	dates := DatesSkippingMostWeekends(first, last, 0, false, rng)
	if len(dates) == 0 {
		t.Fatal("expected dates, got none")
	}
	if !dates[0].Equal(first) {
		t.Errorf("first date = %s, want %s", dates[0].Format("2006-01-02"), first.Format("2006-01-02"))
	}
	if !dates[len(dates)-1].Equal(last) {
		t.Errorf("last date = %s, want %s", dates[len(dates)-1].Format("2006-01-02"), last.Format("2006-01-02"))
	}
}

func TestDatesSkippingMostWeekendsEmptyWhenReversed(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	dates := DatesSkippingMostWeekends(day(2024, time.March, 31), day(2024, time.January, 1), 0.5, false, rng)
	if len(dates) != 0 {
		t.Errorf("expected no dates for reversed range, got %d", len(dates))
	}
}

func TestDatesSkippingMostWeekendsSingleDay(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	single := day(2024, time.June, 3) // Monday
	dates := DatesSkippingMostWeekends(single, single, 0, false, rng)
	if len(dates) != 1 || !dates[0].Equal(single) {
		t.Errorf("expected exactly the single day back, got %v", dates)
	}
}
