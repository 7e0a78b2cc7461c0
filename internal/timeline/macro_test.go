package timeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/albertobort/boda-api/internal/timeline"
)

var weddingDate = time.Date(2026, time.November, 14, 12, 0, 0, 0, madrid)

func TestComputeMacroState_Countdown(t *testing.T) {
	now := time.Date(2026, time.October, 1, 12, 0, 0, 0, madrid)
	assert.Equal(t, timeline.StateCountdown, timeline.ComputeMacroState(weddingDate, now, madrid))

	// Even 23:59 the night before is still a countdown.
	now = time.Date(2026, time.November, 13, 23, 59, 59, 0, madrid)
	assert.Equal(t, timeline.StateCountdown, timeline.ComputeMacroState(weddingDate, now, madrid))
}

func TestComputeMacroState_WeddingDay(t *testing.T) {
	// The whole venue-local calendar day counts, before and after the ceremony.
	for _, hour := range []int{0, 9, 12, 18, 23} {
		now := time.Date(2026, time.November, 14, hour, 30, 0, 0, madrid)
		assert.Equal(t, timeline.StateWeddingDay, timeline.ComputeMacroState(weddingDate, now, madrid),
			"hour %d should be wedding-day", hour)
	}
}

func TestComputeMacroState_Married(t *testing.T) {
	now := time.Date(2026, time.November, 15, 0, 0, 1, 0, madrid)
	assert.Equal(t, timeline.StateMarried, timeline.ComputeMacroState(weddingDate, now, madrid))

	now = time.Date(2027, time.June, 1, 0, 0, 0, 0, madrid)
	assert.Equal(t, timeline.StateMarried, timeline.ComputeMacroState(weddingDate, now, madrid))
}

func TestComputeMacroState_ComparesVenueCalendarDay(t *testing.T) {
	// 23:30 UTC on the 13th is already the 14th in Madrid.
	now := time.Date(2026, time.November, 13, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, timeline.StateWeddingDay, timeline.ComputeMacroState(weddingDate, now, madrid))
}

func TestComputeMacroState_TransitionsAreOrdered(t *testing.T) {
	rank := map[timeline.MacroState]int{
		timeline.StateCountdown:  0,
		timeline.StateWeddingDay: 1,
		timeline.StateMarried:    2,
	}

	start := time.Date(2026, time.November, 12, 0, 0, 0, 0, madrid)
	prev := timeline.ComputeMacroState(weddingDate, start, madrid)
	sawWeddingDay := false

	for hour := 1; hour <= 4*24; hour++ {
		now := start.Add(time.Duration(hour) * time.Hour)
		state := timeline.ComputeMacroState(weddingDate, now, madrid)

		assert.GreaterOrEqual(t, rank[state], rank[prev], "state moved backward at %s", now)
		if state == timeline.StateWeddingDay {
			sawWeddingDay = true
		}
		prev = state
	}

	assert.True(t, sawWeddingDay, "sweep should pass through wedding-day")
}

func TestComputeCountdown(t *testing.T) {
	now := time.Date(2026, time.November, 11, 10, 58, 30, 0, madrid)
	cd := timeline.ComputeCountdown(weddingDate, now)

	assert.Equal(t, timeline.Countdown{Days: 3, Hours: 1, Minutes: 1, Seconds: 30}, cd)
}

func TestComputeCountdown_FloorsSubsecondRemainder(t *testing.T) {
	now := weddingDate.Add(-1500 * time.Millisecond)
	cd := timeline.ComputeCountdown(weddingDate, now)

	assert.Equal(t, timeline.Countdown{Days: 0, Hours: 0, Minutes: 0, Seconds: 1}, cd)
}

func TestComputeCountdown_ZeroAfterWedding(t *testing.T) {
	assert.Equal(t, timeline.Countdown{}, timeline.ComputeCountdown(weddingDate, weddingDate))
	assert.Equal(t, timeline.Countdown{}, timeline.ComputeCountdown(weddingDate, weddingDate.Add(time.Hour)))
}

func TestFormatTimeLeft(t *testing.T) {
	assert.Equal(t, "3h 12m", timeline.FormatTimeLeft(timeline.TimeLeft{Hours: 3, Minutes: 12, Seconds: 59}))
	assert.Equal(t, "12m 5s", timeline.FormatTimeLeft(timeline.TimeLeft{Minutes: 12, Seconds: 5}))
	assert.Equal(t, "42s", timeline.FormatTimeLeft(timeline.TimeLeft{Seconds: 42}))
	assert.Equal(t, "0s", timeline.FormatTimeLeft(timeline.TimeLeft{}))
}
