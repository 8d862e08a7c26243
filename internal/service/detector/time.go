package detector

import (
	"strconv"
	"strings"
	"time"
)

// minutesSince returns whole minutes elapsed from t to now. The second
// return is false when no timestamp is recorded.
func minutesSince(now time.Time, t *time.Time) (int, bool) {
	if t == nil {
		return 0, false
	}
	return int(now.Sub(*t) / time.Minute), true
}

// hhmmToMinutes parses "HH:MM" into minutes past midnight. Baselines are
// treated as pre-validated; a malformed value parses as 0.
func hhmmToMinutes(hhmm string) int {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0
	}
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// minutesOfDay returns now's local time-of-day in minutes past midnight.
func minutesOfDay(now time.Time) int {
	return now.Hour()*60 + now.Minute()
}
