package stats

import (
	"strconv"
	"time"

	"github.com/roach88/routinely/internal/dates"
	"github.com/roach88/routinely/internal/routine"
)

// MonthSeriesDays is the length of the trailing-days series: today plus
// the 29 days before it.
const MonthSeriesDays = 30

// YearSeriesMonths is the length of the month-bucket series: the current
// calendar month plus the 11 before it.
const YearSeriesMonths = 12

// DayPoint is one cell of a per-day series.
type DayPoint struct {
	Key       string `json:"key"`   // canonical day key
	Label     string `json:"label"` // short axis label ("Sun".."Sat" or day-of-month)
	Completed bool   `json:"completed"`
}

// MonthPoint is one bucket of the per-month series.
type MonthPoint struct {
	Year      int        `json:"year"`
	Month     time.Month `json:"month"`
	Label     string     `json:"label"` // "Jan".."Dec"
	Completed int        `json:"completed"`
}

// WeekSeries flags each of the 7 days of the current Sunday-start
// calendar week. Days of the week still in the future appear as not
// completed.
func WeekSeries(r routine.Routine, now time.Time) []DayPoint {
	set := r.CompletedSet()
	weekStart := dates.AddDays(now, -int(now.Weekday()))

	points := make([]DayPoint, 0, 7)
	for i := 0; i < 7; i++ {
		d := dates.AddDays(weekStart, i)
		key := dates.FormatDate(d)
		_, done := set[key]
		points = append(points, DayPoint{
			Key:       key,
			Label:     d.Weekday().String()[:3],
			Completed: done,
		})
	}
	return points
}

// MonthSeries flags each of the trailing 30 days, oldest first, labeled
// by day of month.
func MonthSeries(r routine.Routine, now time.Time) []DayPoint {
	set := r.CompletedSet()

	points := make([]DayPoint, 0, MonthSeriesDays)
	for i := MonthSeriesDays - 1; i >= 0; i-- {
		d := dates.AddDays(now, -i)
		key := dates.FormatDate(d)
		_, done := set[key]
		points = append(points, DayPoint{
			Key:       key,
			Label:     strconv.Itoa(d.Day()),
			Completed: done,
		})
	}
	return points
}

// YearSeries buckets completions into the trailing 12 calendar months
// (current month included), oldest first. Each bucket counts how many of
// the routine's completions fall in that month/year pair; completions
// outside the 12 months are excluded from the series but not from the
// routine's total.
func YearSeries(r routine.Routine, now time.Time) []MonthPoint {
	type bucket struct {
		year  int
		month time.Month
	}
	counts := make(map[bucket]int)
	for _, key := range r.CompletedDates {
		d, err := dates.ParseDay(key)
		if err != nil {
			continue
		}
		counts[bucket{d.Year(), d.Month()}]++
	}

	points := make([]MonthPoint, 0, YearSeriesMonths)
	for i := YearSeriesMonths - 1; i >= 0; i-- {
		year, month := dates.AddMonths(now.Year(), now.Month(), -i)
		points = append(points, MonthPoint{
			Year:      year,
			Month:     month,
			Label:     month.String()[:3],
			Completed: counts[bucket{year, month}],
		})
	}
	return points
}
