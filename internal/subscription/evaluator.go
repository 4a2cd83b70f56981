package subscription

import (
	"math"
	"time"
)

// RemainingDays returns the number of whole days between today and the
// end date, rounding partial days up. Zero means the subscription ends
// today; negative values mean it has already ended.
func RemainingDays(endDate, today time.Time) int {
	diff := endDate.Sub(today)
	return int(math.Ceil(diff.Hours() / 24))
}

// Classify derives the display status of a subscription from its dates.
// The administrative is_active flag wins over any date arithmetic: a
// deactivated subscription is always reported as expired.
func Classify(sub Subscription, today time.Time) Status {
	if !sub.IsActive {
		return StatusExpired
	}

	days := RemainingDays(sub.EndDate, today)
	switch {
	case days < 0:
		return StatusExpired
	case days <= ExpiringWindowDays:
		return StatusExpiring
	default:
		return StatusActive
	}
}

// EndDate adds whole calendar months to the start date, clamping to the
// last valid day of the resulting month. 2023-01-31 plus one month is
// 2023-02-28, not March 3rd as naive normalization would give.
func EndDate(start time.Time, months int) time.Time {
	y, m, d := start.Date()

	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, start.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, start.Location())
}

// DateOnly truncates a timestamp to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
