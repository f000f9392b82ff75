package schedule

import "time"

const DefaultGranularityMinutes = 15

// Generator derives the candidate slot sequence for one provider day.
// Granularity is the step between successive slot starts; it is configuration,
// not a constant of the domain.
type Generator struct {
	granularity int
}

func NewGenerator(granularityMinutes int) Generator {
	if granularityMinutes <= 0 {
		granularityMinutes = DefaultGranularityMinutes
	}
	return Generator{granularity: granularityMinutes}
}

func (g Generator) Granularity() int {
	return g.granularity
}

// Generate walks the provider's open intervals for date's weekday and emits
// every start where the full service duration still fits inside the interval.
// date and now must both be expressed in the provider's timezone; when date
// is today, slots starting at or before now are dropped.
func (g Generator) Generate(svc ServiceSpec, intervals []WorkingInterval, date time.Time, now time.Time) []Slot {
	open := ForWeekday(intervals, date.Weekday())
	if len(open) == 0 || svc.DurationMinutes <= 0 {
		return nil
	}

	cutoff := TimeOfDay(-1)
	if sameDate(date, now) {
		cutoff = TimeOfDayFrom(now)
	}

	var slots []Slot
	for _, iv := range open {
		if svc.DurationMinutes > iv.Span() {
			continue
		}
		for start := iv.Start; start.Add(svc.DurationMinutes) <= iv.End; start = start.Add(g.granularity) {
			// The cutoff is truncated to the minute, so a start equal to it
			// may already be seconds in the past.
			if start <= cutoff {
				continue
			}
			slots = append(slots, Slot{Start: start, End: start.Add(svc.DurationMinutes)})
		}
	}
	return slots
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
