package services

import (
	"math"
	"time"

	"affiliatehub/internal/models"
)

// DateRange is a bounded reporting window plus the equally long window right before it.
// PrevEnd is one millisecond before Start.
type DateRange struct {
	Start     time.Time
	PrevStart time.Time
	PrevEnd   time.Time
}

var periodDays = map[models.Period]int{
	models.Period7Days:  7,
	models.Period30Days: 30,
}

// ResolvePeriod returns nil for unbounded periods ("all").
// Start is local midnight N calendar days before now.
func ResolvePeriod(p models.Period, now time.Time) *DateRange {
	days, ok := periodDays[p]
	if !ok {
		return nil
	}
	y, m, d := now.Date()
	start := time.Date(y, m, d-days, 0, 0, 0, 0, now.Location())
	return &DateRange{
		Start:     start,
		PrevStart: start.AddDate(0, 0, -days),
		PrevEnd:   start.Add(-time.Millisecond),
	}
}

// percentChange rounds to one decimal. A zero baseline reports 100 for any growth
// and nothing otherwise.
func percentChange(current, previous int) *float64 {
	if previous == 0 {
		if current > 0 {
			v := 100.0
			return &v
		}
		return nil
	}
	v := math.Floor(float64(current-previous)/float64(previous)*1000+0.5) / 10
	return &v
}
