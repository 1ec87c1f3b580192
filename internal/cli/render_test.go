package cli

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/routinely/internal/routine"
	"github.com/roach88/routinely/internal/stats"
)

// renderFixture is a routine on a 4-day run ending on the fixture date,
// Sunday 2024-03-10.
func renderFixture() (routine.Routine, time.Time) {
	r := routine.Routine{
		ID:    "0r-gym",
		Name:  "Gym",
		Color: "#3B82F6",
		CompletedDates: []string{
			"2024-03-07", "2024-03-08", "2024-03-09", "2024-03-10",
		},
	}
	return r, time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRenderCalendar(t *testing.T) {
	r, now := renderFixture()

	out := RenderCalendar(r, 2024, time.March, now)

	newGoldie(t).Assert(t, "calendar_march", []byte(out))
}

func TestRenderCalendar_OtherMonthHasNoToday(t *testing.T) {
	r, now := renderFixture()

	out := RenderCalendar(r, 2024, time.April, now)
	assert.NotContains(t, out, ">", "today marker only appears in its own month")
	assert.Contains(t, out, "April 2024")
}

func TestRenderStatsWeekly(t *testing.T) {
	r, now := renderFixture()

	out, err := RenderStats(r, stats.TimeframeWeekly, now)
	require.NoError(t, err)

	newGoldie(t).Assert(t, "stats_weekly", []byte(out))
}

func TestRenderStats_UnknownFrame(t *testing.T) {
	r, now := renderFixture()
	_, err := RenderStats(r, stats.Timeframe("hourly"), now)
	require.Error(t, err)
}

func TestRenderList(t *testing.T) {
	r, now := renderFixture()
	r.Description = "Morning lift"

	out := RenderList([]routine.Routine{r}, now)

	newGoldie(t).Assert(t, "list_overview", []byte(out))
}

func TestRenderList_Empty(t *testing.T) {
	out := RenderList(nil, time.Now())
	assert.Contains(t, out, "No routines yet")
}

func TestRenderColors(t *testing.T) {
	out := RenderColors()
	for _, c := range routine.Palette {
		assert.Contains(t, out, c.Name)
		assert.Contains(t, out, c.Value)
	}
}
