package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2025, 3, 14, 17, 45, 12, 500, time.Local)
	start := StartOfDay(ts)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local), start)
}

func TestEndOfDay(t *testing.T) {
	ts := time.Date(2025, 3, 14, 0, 0, 1, 0, time.Local)
	end := EndOfDay(ts)
	assert.Equal(t, time.Date(2025, 3, 14, 23, 59, 59, 999000000, time.Local), end)

	// The last millisecond of the day is still before the boundary under $lt.
	lastMoment := time.Date(2025, 3, 14, 23, 59, 59, 998000000, time.Local)
	assert.True(t, lastMoment.Before(end))
}

func TestStartOfMonth(t *testing.T) {
	ts := time.Date(2025, 12, 31, 23, 59, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local), StartOfMonth(ts))
}

func TestEndOfMonth(t *testing.T) {
	// February in a leap year.
	ts := time.Date(2024, 2, 10, 12, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.Local), EndOfMonth(ts))

	// December rolls into the next year correctly.
	ts = time.Date(2025, 12, 5, 8, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 999000000, time.Local), EndOfMonth(ts))
}
