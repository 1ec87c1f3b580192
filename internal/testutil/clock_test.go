package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock_Now(t *testing.T) {
	instant := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)
	c := NewFixedClock(instant)

	assert.Equal(t, instant, c.Now())
	assert.Equal(t, instant, c.Now(), "repeated reads return the same instant")
}

func TestFixedClock_Advance(t *testing.T) {
	c := NewFixedClockAt(2024, time.March, 10)

	c.Advance(2 * time.Hour)
	assert.Equal(t, 14, c.Now().Hour())

	c.Advance(-3 * time.Hour)
	assert.Equal(t, 11, c.Now().Hour())
}

func TestFixedClock_AdvanceDays(t *testing.T) {
	c := NewFixedClockAt(2024, time.February, 28)

	c.AdvanceDays(1)
	assert.Equal(t, 29, c.Now().Day(), "2024 is a leap year")

	c.AdvanceDays(1)
	assert.Equal(t, time.March, c.Now().Month())
	assert.Equal(t, 1, c.Now().Day())

	c.AdvanceDays(-2)
	assert.Equal(t, time.February, c.Now().Month())
	assert.Equal(t, 28, c.Now().Day())
}

func TestFixedClock_Set(t *testing.T) {
	c := NewFixedClockAt(2024, time.March, 10)
	next := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)

	c.Set(next)
	assert.Equal(t, next, c.Now())
}
