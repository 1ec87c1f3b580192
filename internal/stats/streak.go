package stats

import (
	"time"

	"github.com/roach88/routinely/internal/dates"
	"github.com/roach88/routinely/internal/routine"
)

// StreakWindow bounds every streak scan to the trailing year. One policy
// for both current and best streak, so best >= current always holds.
const StreakWindow = 365

// CurrentStreak counts consecutive completed days walking backward from
// today. The walk starts at offset 0: if today is not completed the
// streak is 0 even when yesterday was.
func CurrentStreak(r routine.Routine, now time.Time) int {
	set := r.CompletedSet()
	streak := 0
	for i := 0; i < StreakWindow; i++ {
		key := dates.FormatDate(dates.AddDays(now, -i))
		if _, ok := set[key]; !ok {
			break
		}
		streak++
	}
	return streak
}

// BestStreak is the longest run of consecutive completed days anywhere in
// the trailing StreakWindow days (today included). Scans oldest to
// newest with a running counter that resets on any gap.
func BestStreak(r routine.Routine, now time.Time) int {
	set := r.CompletedSet()
	best, run := 0, 0
	for i := StreakWindow - 1; i >= 0; i-- {
		key := dates.FormatDate(dates.AddDays(now, -i))
		if _, ok := set[key]; ok {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// Streaks bundles both streak figures for one read.
type Streaks struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// ComputeStreaks derives both streaks in one pass over the window.
func ComputeStreaks(r routine.Routine, now time.Time) Streaks {
	return Streaks{
		Current: CurrentStreak(r, now),
		Best:    BestStreak(r, now),
	}
}
