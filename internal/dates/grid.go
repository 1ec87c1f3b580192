package dates

import "time"

// GridSize is the fixed number of cells in a month grid: 6 weeks of 7
// days, regardless of month length. Some neighboring-month days always
// appear; renderers rely on the uniform height.
const GridSize = 42

// DateInfo is one calendar cell: a projection, never persisted.
type DateInfo struct {
	Date    time.Time  `json:"date"`
	Day     int        `json:"day"`
	Month   time.Month `json:"month"`
	Year    int        `json:"year"`
	InMonth bool       `json:"in_month"`
	IsToday bool       `json:"is_today"`

	// Completed is attached downstream when the grid is projected for a
	// specific routine. DaysInMonth itself leaves it false.
	Completed bool `json:"completed,omitempty"`
}

// Key returns the cell's canonical day key.
func (d DateInfo) Key() string {
	return FormatDate(d.Date)
}

// DaysInMonth builds the 42-cell grid for a month, starting from the
// Sunday on/before the 1st. Cells are consecutive ascending days; exactly
// one cell has IsToday set when today falls within the span.
func DaysInMonth(year int, month time.Month, today time.Time) []DateInfo {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	start := AddDays(first, -int(first.Weekday()))

	days := make([]DateInfo, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		d := AddDays(start, i)
		days = append(days, DateInfo{
			Date:    d,
			Day:     d.Day(),
			Month:   d.Month(),
			Year:    d.Year(),
			InMonth: d.Month() == month && d.Year() == year,
			IsToday: SameDay(d, today),
		})
	}
	return days
}

// MarkCompleted returns a copy of the grid with Completed set on every
// cell whose day key is in completed.
func MarkCompleted(days []DateInfo, completed map[string]struct{}) []DateInfo {
	out := make([]DateInfo, len(days))
	for i, d := range days {
		_, ok := completed[d.Key()]
		d.Completed = ok
		out[i] = d
	}
	return out
}
