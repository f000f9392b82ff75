package schedule

// BookedWindow is an existing non-canceled appointment as the conflict filter
// sees it: its own span plus the buffers of the service it was booked with,
// so an existing booking claims exactly what a candidate of the same service
// would claim.
type BookedWindow struct {
	Start        TimeOfDay
	End          TimeOfDay
	BufferBefore int
	BufferAfter  int
}

func (b BookedWindow) Window() Window {
	return Window{
		Start: b.Start.Minutes() - b.BufferBefore,
		End:   b.End.Minutes() + b.BufferAfter,
	}
}

// Conflicts reports whether a single candidate start collides with any
// existing booking. This is the one test the booking transaction re-runs
// inside its critical section.
func Conflicts(start TimeOfDay, svc ServiceSpec, booked []BookedWindow) bool {
	w := OccupiedWindow(start, svc)
	for _, b := range booked {
		if w.Overlaps(b.Window()) {
			return true
		}
	}
	return false
}

// FilterConflicts keeps the candidates whose occupied windows overlap none of
// the existing bookings. Quadratic on purpose: per-provider per-day counts
// are small, and an interval tree could be swapped in without changing
// behavior.
func FilterConflicts(candidates []Slot, svc ServiceSpec, booked []BookedWindow) []Slot {
	if len(booked) == 0 {
		return candidates
	}
	kept := make([]Slot, 0, len(candidates))
	for _, s := range candidates {
		if !Conflicts(s.Start, svc, booked) {
			kept = append(kept, s)
		}
	}
	return kept
}
