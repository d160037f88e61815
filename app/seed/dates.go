package seed

import (
	"math/rand"
	"time"
)

// DatesSkippingMostWeekends returns every calendar day from firstDate through
// lastDate inclusive, keeping all weekdays and keeping a weekend day only when
// skipAllWeekends is false and a Bernoulli trial at percentOnWeekends
// succeeds. skipAllWeekends wins outright: when it is set, no weekend date is
// returned no matter the percentage. A range with lastDate before firstDate
// yields no dates.
func DatesSkippingMostWeekends(firstDate, lastDate time.Time, percentOnWeekends float64, skipAllWeekends bool, rng *rand.Rand) []time.Time {
	var dates []time.Time
	for d := truncateToDay(firstDate); !d.After(truncateToDay(lastDate)); d = d.AddDate(0, 0, 1) {
		if isWeekday(d) || (!skipAllWeekends && rng.Float64() < percentOnWeekends) {
			dates = append(dates, d)
		}
	}
	return dates
}

func isWeekday(d time.Time) bool {
	return d.Weekday() != time.Saturday && d.Weekday() != time.Sunday
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
