package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth_Always42(t *testing.T) {
	today := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

	for year := 2020; year <= 2026; year++ {
		for m := time.January; m <= time.December; m++ {
			days := DaysInMonth(year, m, today)
			require.Len(t, days, GridSize, "%s %d", m, year)
		}
	}
}

func TestDaysInMonth_StartsOnSunday(t *testing.T) {
	today := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

	for year := 2023; year <= 2025; year++ {
		for m := time.January; m <= time.December; m++ {
			days := DaysInMonth(year, m, today)
			assert.Equal(t, time.Sunday, days[0].Date.Weekday(), "%s %d", m, year)

			// First cell is on/before the 1st, within one week of it.
			first := time.Date(year, m, 1, 0, 0, 0, 0, time.Local)
			assert.False(t, days[0].Date.After(first))
			assert.True(t, AddDays(days[0].Date, 6).After(first) || SameDay(AddDays(days[0].Date, 6), first))
		}
	}
}

func TestDaysInMonth_ConsecutiveAscending(t *testing.T) {
	today := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)
	days := DaysInMonth(2024, time.March, today)

	for i := 1; i < len(days); i++ {
		want := FormatDate(AddDays(days[i-1].Date, 1))
		assert.Equal(t, want, days[i].Key(), "cell %d is not the day after cell %d", i, i-1)
	}
}

func TestDaysInMonth_March2024Span(t *testing.T) {
	// March 1 2024 is a Friday; the grid runs Feb 25 .. Apr 6.
	today := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)
	days := DaysInMonth(2024, time.March, today)

	assert.Equal(t, "2024-02-25", days[0].Key())
	assert.Equal(t, "2024-04-06", days[41].Key())

	inMonth := 0
	for _, d := range days {
		if d.InMonth {
			inMonth++
		}
	}
	assert.Equal(t, 31, inMonth)
}

func TestDaysInMonth_ExactlyOneToday(t *testing.T) {
	today := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)
	days := DaysInMonth(2024, time.March, today)

	var todays []DateInfo
	for _, d := range days {
		if d.IsToday {
			todays = append(todays, d)
		}
	}
	require.Len(t, todays, 1)
	assert.Equal(t, "2024-03-10", todays[0].Key())
}

func TestDaysInMonth_NoTodayOutsideSpan(t *testing.T) {
	today := time.Date(2024, time.September, 1, 12, 0, 0, 0, time.Local)
	days := DaysInMonth(2024, time.March, today)

	for _, d := range days {
		assert.False(t, d.IsToday)
	}
}

func TestDaysInMonth_CellComponents(t *testing.T) {
	today := time.Date(2024, time.January, 5, 12, 0, 0, 0, time.Local)
	days := DaysInMonth(2024, time.January, today)

	// Grid for January 2024 starts Dec 31 2023 (Jan 1 is a Monday).
	first := days[0]
	assert.Equal(t, 31, first.Day)
	assert.Equal(t, time.December, first.Month)
	assert.Equal(t, 2023, first.Year)
	assert.False(t, first.InMonth)

	second := days[1]
	assert.Equal(t, 1, second.Day)
	assert.Equal(t, time.January, second.Month)
	assert.True(t, second.InMonth)
}

func TestDaysInMonth_FebruaryLeapYear(t *testing.T) {
	today := time.Date(2024, time.February, 29, 12, 0, 0, 0, time.Local)
	days := DaysInMonth(2024, time.February, today)

	require.Len(t, days, GridSize)

	inMonth := 0
	sawLeapDay := false
	for _, d := range days {
		if d.InMonth {
			inMonth++
		}
		if d.Key() == "2024-02-29" {
			sawLeapDay = true
			assert.True(t, d.IsToday)
		}
	}
	assert.Equal(t, 29, inMonth)
	assert.True(t, sawLeapDay)
}

func TestMarkCompleted(t *testing.T) {
	today := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)
	days := DaysInMonth(2024, time.March, today)

	completed := map[string]struct{}{
		"2024-03-10": {},
		"2024-03-11": {},
		"2024-07-01": {}, // outside the grid, ignored
	}
	marked := MarkCompleted(days, completed)

	require.Len(t, marked, GridSize)
	count := 0
	for _, d := range marked {
		if d.Completed {
			count++
			assert.Contains(t, []string{"2024-03-10", "2024-03-11"}, d.Key())
		}
	}
	assert.Equal(t, 2, count)

	// Source grid is untouched.
	for _, d := range days {
		assert.False(t, d.Completed)
	}
}
