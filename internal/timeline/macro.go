package timeline

import (
	"fmt"
	"time"
)

// MacroState is the coarse lifecycle phase of the wedding itself.
type MacroState string

const (
	StateCountdown  MacroState = "countdown"
	StateWeddingDay MacroState = "wedding-day"
	StateMarried    MacroState = "married"
)

// ComputeMacroState derives the macro state from the wedding date and the
// current instant. The calendar-day comparison happens in the venue's time
// zone, so guests in other zones still flip to wedding-day at venue midnight.
// For a fixed date the state only ever moves forward:
// countdown → wedding-day → married.
func ComputeMacroState(weddingDate, now time.Time, venue *time.Location) MacroState {
	wy, wm, wd := weddingDate.In(venue).Date()
	ny, nm, nd := now.In(venue).Date()

	if wy == ny && wm == nm && wd == nd {
		return StateWeddingDay
	}
	if now.After(weddingDate) {
		return StateMarried
	}
	return StateCountdown
}

// Countdown is the time remaining until the ceremony, split into calendar
// components. All fields are zero once the wedding date has passed.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// ComputeCountdown decomposes the remaining time into days, hours, minutes
// and seconds. Each call recomputes from the raw difference rather than
// decrementing a previous value, so repeated ticks never drift.
func ComputeCountdown(weddingDate, now time.Time) Countdown {
	d := weddingDate.Sub(now)
	if d <= 0 {
		return Countdown{}
	}

	secs := int(d / time.Second)
	return Countdown{
		Days:    secs / 86400,
		Hours:   (secs / 3600) % 24,
		Minutes: (secs / 60) % 60,
		Seconds: secs % 60,
	}
}

// FormatTimeLeft renders remaining time the way the site displays it:
// "3h 12m", "12m 5s" or "42s" depending on magnitude.
func FormatTimeLeft(t TimeLeft) string {
	if t.Hours > 0 {
		return fmt.Sprintf("%dh %dm", t.Hours, t.Minutes)
	}
	if t.Minutes > 0 {
		return fmt.Sprintf("%dm %ds", t.Minutes, t.Seconds)
	}
	return fmt.Sprintf("%ds", t.Seconds)
}
