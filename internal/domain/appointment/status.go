package appointment

// Status is the lifecycle state of an appointment. Rows are never physically
// deleted; canceled is the soft-delete state and frees the slot.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCanceled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// BlocksSlot reports whether an appointment in this status still claims its
// time window for conflict purposes.
func (s Status) BlocksSlot() bool {
	return s != StatusCanceled
}

var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusCanceled},
	StatusApproved: {StatusCompleted, StatusCanceled, StatusNoShow},
}

// CanTransitionTo enforces the status state machine. Terminal states
// (canceled, completed, no_show) admit no further change.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
