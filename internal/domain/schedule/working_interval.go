package schedule

import (
	"errors"
	"sort"
	"time"
)

var (
	ErrIntervalInverted   = errors.New("working interval start must be before end")
	ErrIntervalOutOfRange = errors.New("working interval outside the day")
	ErrIntervalsOverlap   = errors.New("working intervals overlap")
)

// WorkingInterval is a recurring weekly open period during which a provider
// accepts appointments. The engine only ever reads these; they are owned by
// provider configuration.
type WorkingInterval struct {
	Weekday time.Weekday
	Start   TimeOfDay
	End     TimeOfDay
}

func (w WorkingInterval) Validate() error {
	if !w.Start.Valid() || w.End <= 0 || w.End > MinutesPerDay {
		return ErrIntervalOutOfRange
	}
	if w.Start >= w.End {
		return ErrIntervalInverted
	}
	return nil
}

func (w WorkingInterval) Span() int {
	return int(w.End - w.Start)
}

// ValidateIntervals checks a provider's full weekly configuration: every
// interval well formed and no two intervals on the same weekday overlapping.
func ValidateIntervals(intervals []WorkingInterval) error {
	byDay := make(map[time.Weekday][]WorkingInterval, 7)
	for _, iv := range intervals {
		if err := iv.Validate(); err != nil {
			return err
		}
		byDay[iv.Weekday] = append(byDay[iv.Weekday], iv)
	}
	for _, ivs := range byDay {
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].Start < ivs[j].Start })
		for i := 1; i < len(ivs); i++ {
			if ivs[i].Start < ivs[i-1].End {
				return ErrIntervalsOverlap
			}
		}
	}
	return nil
}

// ForWeekday returns the open intervals applying to a weekday, ordered by
// start time. An empty result means the day is closed.
func ForWeekday(intervals []WorkingInterval, day time.Weekday) []WorkingInterval {
	out := make([]WorkingInterval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Weekday == day {
			out = append(out, iv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
