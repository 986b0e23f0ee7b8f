package utils

import (
	"fmt"
	"math"
	"time"
)

// FloatHourToClock memecah jam float (misal: 14.5) menjadi jam dan menit
// (14, 30). Dipakai untuk work_from/work_to pada pola kerja.
func FloatHourToClock(hour float64) (int, int) {
	h := int(hour)
	m := int(math.Round((hour - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return h, m
}

// FormatFloatClock renders a float hour as "HH:MM".
func FormatFloatClock(hour float64) string {
	h, m := FloatHourToClock(hour)
	return fmt.Sprintf("%02d:%02d", h, m)
}

// CombineDateAndFloatHour combines the calendar date of base with a float
// clock hour, in base's location.
func CombineDateAndFloatHour(base time.Time, hour float64) time.Time {
	h, m := FloatHourToClock(hour)
	return time.Date(base.Year(), base.Month(), base.Day(), h, m, 0, 0, base.Location())
}
