package schedule

// ServiceSpec is the slice of a service the slot math needs: how long one
// appointment runs and how much padding it claims on either side.
type ServiceSpec struct {
	ID              int64
	DurationMinutes int
	BufferBefore    int
	BufferAfter     int
}

// Slot is a computed candidate appointment window on a calendar date.
// It is never persisted; it only becomes durable as an Appointment.
type Slot struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Window is a half-open [Start, End) span in minutes relative to the day's
// midnight. Buffers may push it below 0 or past MinutesPerDay; overlap
// comparison does not care.
type Window struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open windows intersect. A window ending
// exactly where another begins does not overlap it.
func (w Window) Overlaps(o Window) bool {
	return w.Start < o.End && o.Start < w.End
}

// OccupiedWindow extends a slot start by the service's buffers. It is used
// only for conflict comparison and never shown to the customer.
func OccupiedWindow(start TimeOfDay, svc ServiceSpec) Window {
	return Window{
		Start: start.Minutes() - svc.BufferBefore,
		End:   start.Minutes() + svc.DurationMinutes + svc.BufferAfter,
	}
}
