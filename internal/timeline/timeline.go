package timeline

import "time"

// IconKind selects the glyph shown next to a schedule entry.
type IconKind string

const (
	IconChurch   IconKind = "church"
	IconWine     IconKind = "wine"
	IconUtensils IconKind = "utensils"
	IconMusic    IconKind = "music"
	IconHeart    IconKind = "heart"
)

// Event is one entry of the wedding-day schedule. The schedule is assumed
// to be in chronological order; callers own that invariant.
type Event struct {
	Start time.Time `json:"start"`
	Label string    `json:"label"`
	Venue string    `json:"venue"`
	Icon  IconKind  `json:"icon"`
}

// Phase classifies a single scheduled event relative to the current time.
type Phase string

const (
	PhasePast     Phase = "past"
	PhaseCurrent  Phase = "current"
	PhaseUpcoming Phase = "upcoming"
)

// TimeLeft is the remaining time until the soonest upcoming event.
// Hours is not capped at 24.
type TimeLeft struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Status is the derived classification of one schedule entry.
// TimeLeft is set only on the soonest upcoming event.
type Status struct {
	Index    int       `json:"index"`
	Phase    Phase     `json:"phase"`
	TimeLeft *TimeLeft `json:"time_left,omitempty"`
}

// ComputeStatuses classifies every schedule entry for the given instant.
// An event is current from its start until the next event starts; the last
// event stays current indefinitely once started. With a strictly increasing
// schedule at most one event is current at any time.
func ComputeStatuses(events []Event, now time.Time) []Status {
	statuses := make([]Status, 0, len(events))
	nextUpcoming := true

	for i, ev := range events {
		var next *time.Time
		if i < len(events)-1 {
			next = &events[i+1].Start
		}

		switch {
		case now.Before(ev.Start):
			st := Status{Index: i, Phase: PhaseUpcoming}
			if nextUpcoming {
				left := decompose(ev.Start.Sub(now))
				st.TimeLeft = &left
				nextUpcoming = false
			}
			statuses = append(statuses, st)
		case next != nil && now.Before(*next):
			statuses = append(statuses, Status{Index: i, Phase: PhaseCurrent})
		case next == nil:
			statuses = append(statuses, Status{Index: i, Phase: PhaseCurrent})
		default:
			statuses = append(statuses, Status{Index: i, Phase: PhasePast})
		}
	}

	return statuses
}

// decompose splits a positive duration into whole hours, minutes and seconds.
func decompose(d time.Duration) TimeLeft {
	secs := int(d / time.Second)
	return TimeLeft{
		Hours:   secs / 3600,
		Minutes: (secs / 60) % 60,
		Seconds: secs % 60,
	}
}
