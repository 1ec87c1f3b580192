package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/roach88/routinely/internal/dates"
	"github.com/roach88/routinely/internal/routine"
	"github.com/roach88/routinely/internal/stats"
)

// Text rendering for the terminal. Every renderer here is a pure
// function of its inputs so output stays reproducible under a fixed
// clock.

// RenderList renders the routine overview, one card per routine.
func RenderList(routines []routine.Routine, now time.Time) string {
	if len(routines) == 0 {
		return "No routines yet. Add one with: routinely add <name>"
	}

	var b strings.Builder
	for i, r := range routines {
		if i > 0 {
			b.WriteByte('\n')
		}
		s := stats.Summarize(r, now)
		fmt.Fprintf(&b, "%s  %s\n", r.Name, r.ID)
		if r.Description != "" {
			fmt.Fprintf(&b, "  %s\n", r.Description)
		}
		fmt.Fprintf(&b, "  streak %d (best %d), week %d/%d (%d%%), total %d\n",
			s.Streaks.Current, s.Streaks.Best,
			s.WeeklyRate.Completed, s.WeeklyRate.Total, s.WeeklyRate.Percent,
			s.Total)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderCalendar renders the 42-cell month grid for one routine.
// Completed days carry a trailing asterisk; today carries a leading
// angle marker; cells outside the month are blanked.
func RenderCalendar(r routine.Routine, year int, month time.Month, now time.Time) string {
	grid := dates.MarkCompleted(dates.DaysInMonth(year, month, now), r.CompletedSet())

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s %d\n", r.Name, dates.MonthName(month), year)
	b.WriteString(" Su   Mo   Tu   We   Th   Fr   Sa\n")
	for row := 0; row < dates.GridSize/7; row++ {
		cells := make([]string, 7)
		for col := 0; col < 7; col++ {
			cells[col] = renderCell(grid[row*7+col])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderCell renders one fixed-width grid cell: today marker, day
// number, completion marker.
func renderCell(d dates.DateInfo) string {
	if !d.InMonth {
		return "  . "
	}
	today := " "
	if d.IsToday {
		today = ">"
	}
	mark := " "
	if d.Completed {
		mark = "*"
	}
	return fmt.Sprintf("%s%2d%s", today, d.Day, mark)
}

// RenderStats renders one routine's figures for a timeframe: streaks,
// the windowed rate, and the window's series.
func RenderStats(r routine.Routine, tf stats.Timeframe, now time.Time) (string, error) {
	rate, err := stats.WindowRate(r, now, tf)
	if err != nil {
		return "", err
	}
	st := stats.ComputeStreaks(r, now)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  (%s)\n", r.Name, tf)
	fmt.Fprintf(&b, "streak: %d current, %d best\n", st.Current, st.Best)
	fmt.Fprintf(&b, "completed %d of %d (%d%%), missed %d\n",
		rate.Completed, rate.Total, rate.Percent, rate.Missed)

	switch tf {
	case stats.TimeframeWeekly:
		b.WriteByte('\n')
		renderDayPoints(&b, stats.WeekSeries(r, now))
	case stats.TimeframeYearly:
		b.WriteByte('\n')
		for _, p := range stats.YearSeries(r, now) {
			fmt.Fprintf(&b, "%s %d: %d\n", p.Label, p.Year, p.Completed)
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func renderDayPoints(b *strings.Builder, points []stats.DayPoint) {
	for _, p := range points {
		mark := "-"
		if p.Completed {
			mark = "*"
		}
		fmt.Fprintf(b, "%s %s %s\n", p.Label, p.Key, mark)
	}
}

// RenderColors renders the fixed palette.
func RenderColors() string {
	var b strings.Builder
	for _, c := range routine.Palette {
		fmt.Fprintf(&b, "%-7s %s\n", c.Name, c.Value)
	}
	return strings.TrimRight(b.String(), "\n")
}
