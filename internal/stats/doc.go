// Package stats derives read-only aggregates from a routine's completion
// set and an explicit "now": streak counts, calendar-week and trailing
// day/month series, and windowed completion rates.
//
// Every function is pure. Nothing here mutates the store; callers pass a
// routine value and get projections back. A routine with zero completions
// yields all-zero results, never an error.
//
// Streaks share one bounded-window policy: both the current and the best
// streak scan at most the trailing StreakWindow days. Completions older
// than the window are invisible to streaks but still count toward the
// routine's unbounded total.
package stats
