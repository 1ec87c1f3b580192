package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/roach88/routinely/internal/dates"
	"github.com/roach88/routinely/internal/routine"
)

// Timeframe selects the window for a completion-rate summary.
type Timeframe string

const (
	TimeframeWeekly  Timeframe = "weekly"  // 7 days of the current calendar week
	TimeframeMonthly Timeframe = "monthly" // trailing 30 days
	TimeframeYearly  Timeframe = "yearly"  // trailing 12 calendar months over 365 days
	TimeframeStreak  Timeframe = "streak"  // trailing 14 days
)

// StreakFrameDays is the recent-streak window used by TimeframeStreak.
const StreakFrameDays = 14

// YearFrameDays is the denominator for the yearly rate.
const YearFrameDays = 365

// Timeframes lists every valid selector, in display order.
var Timeframes = []Timeframe{TimeframeWeekly, TimeframeMonthly, TimeframeYearly, TimeframeStreak}

// Valid reports whether the timeframe is one of the defined selectors.
func (tf Timeframe) Valid() bool {
	switch tf {
	case TimeframeWeekly, TimeframeMonthly, TimeframeYearly, TimeframeStreak:
		return true
	}
	return false
}

// Rate is a windowed completed/total pair with its rounded percentage.
type Rate struct {
	Completed int `json:"completed"`
	Missed    int `json:"missed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"` // round(completed/total*100); 0 when total is 0
}

// WindowRate computes the completion rate for the selected timeframe.
// An unknown timeframe is an error; every defined window yields a total
// > 0, so the percentage is clamped to [0,100] by construction.
func WindowRate(r routine.Routine, now time.Time, tf Timeframe) (Rate, error) {
	var completed, total int

	switch tf {
	case TimeframeWeekly:
		for _, p := range WeekSeries(r, now) {
			if p.Completed {
				completed++
			}
		}
		total = 7
	case TimeframeMonthly:
		for _, p := range MonthSeries(r, now) {
			if p.Completed {
				completed++
			}
		}
		total = MonthSeriesDays
	case TimeframeYearly:
		for _, p := range YearSeries(r, now) {
			completed += p.Completed
		}
		total = YearFrameDays
	case TimeframeStreak:
		set := r.CompletedSet()
		for i := 0; i < StreakFrameDays; i++ {
			key := dates.FormatDate(dates.AddDays(now, -i))
			if _, ok := set[key]; ok {
				completed++
			}
		}
		total = StreakFrameDays
	default:
		return Rate{}, fmt.Errorf("stats: unknown timeframe %q", tf)
	}

	return newRate(completed, total), nil
}

func newRate(completed, total int) Rate {
	missed := total - completed
	if missed < 0 {
		missed = 0
	}
	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return Rate{Completed: completed, Missed: missed, Total: total, Percent: percent}
}

// Summary is the per-routine bundle the presentation layer reads: streak
// figures, the weekly rate shown on the card, and the unbounded total.
type Summary struct {
	Streaks    Streaks `json:"streaks"`
	WeeklyRate Rate    `json:"weekly_rate"`
	Total      int     `json:"total"`
}

// Summarize derives the card-level summary for one routine.
func Summarize(r routine.Routine, now time.Time) Summary {
	weekly, _ := WindowRate(r, now, TimeframeWeekly)
	return Summary{
		Streaks:    ComputeStreaks(r, now),
		WeeklyRate: weekly,
		Total:      r.TotalCompleted(),
	}
}
