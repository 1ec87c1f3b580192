package dates

import (
	"fmt"
	"time"
)

// DayKeyLayout is the canonical day-key format: zero-padded YYYY-MM-DD.
const DayKeyLayout = "2006-01-02"

// FormatDate canonicalizes a time to its YYYY-MM-DD day key using the
// time's own location. This is the membership key for completed dates;
// it is injective over distinct calendar days and stable under repeated
// calls with equal times.
func FormatDate(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDay parses a canonical day key back into a local-midnight time.
// Keys that are not well-formed YYYY-MM-DD are rejected.
func ParseDay(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	// time.Parse accepts some non-canonical spellings (e.g. "2024-3-1"
	// is rejected, but a round-trip check also catches overflow like
	// "2024-02-31" normalizing to March).
	if FormatDate(t) != key {
		return time.Time{}, fmt.Errorf("invalid day key %q: not canonical", key)
	}
	return t, nil
}

// IsValidDayKey reports whether key is a well-formed canonical day key.
func IsValidDayKey(key string) bool {
	_, err := ParseDay(key)
	return err == nil
}

// SameDay reports whether two times fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return FormatDate(a) == FormatDate(b)
}

// AddDays returns the time shifted by n calendar days, normalized by the
// time package (DST transitions cannot skip or repeat a day key).
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, t.Location())
}

// MonthName returns the full English month name.
// Calling it with a value outside January..December is a programmer
// error and panics.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		panic(fmt.Sprintf("dates: month out of range: %d", int(m)))
	}
	return m.String()
}

// CurrentMonth returns the year and month of the clock's current day.
// The clock is re-read on every call.
func CurrentMonth(clock Clock) (int, time.Month) {
	now := clock.Now()
	return now.Year(), now.Month()
}

// AddMonths shifts a (year, month) pair by delta months, rolling the year
// in either direction. AddMonths(2024, January, -1) is (2023, December);
// AddMonths(2024, December, 1) is (2025, January).
func AddMonths(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
