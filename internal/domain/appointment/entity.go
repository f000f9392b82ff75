package appointment

import (
	"errors"
	"time"

	"bookwise/internal/domain/schedule"
)

var (
	ErrInvalidSlot         = errors.New("appointment end must follow start")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrMissingReference    = errors.New("appointment requires service, provider and customer")
	ErrForbiddenTransition = errors.New("status transition not allowed")
)

// Appointment is a durable, confirmed-or-pending claim on a provider's time.
// After creation the only mutation is a status transition.
type Appointment struct {
	id          int64
	serviceID   int64
	providerID  int64
	customerID  int64
	bookingDate time.Time
	start       schedule.TimeOfDay
	end         schedule.TimeOfDay
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPending builds the appointment the booking transaction inserts.
// The id stays zero until the ledger assigns one.
func NewPending(serviceID, providerID, customerID int64, bookingDate time.Time, start, end schedule.TimeOfDay, now time.Time) (*Appointment, error) {
	if serviceID <= 0 || providerID <= 0 || customerID <= 0 {
		return nil, ErrMissingReference
	}
	if start >= end {
		return nil, ErrInvalidSlot
	}
	return &Appointment{
		serviceID:   serviceID,
		providerID:  providerID,
		customerID:  customerID,
		bookingDate: bookingDate,
		start:       start,
		end:         end,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds an appointment from a ledger row.
func Reconstruct(id, serviceID, providerID, customerID int64, bookingDate time.Time, start, end schedule.TimeOfDay, status Status, createdAt, updatedAt time.Time) (*Appointment, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return &Appointment{
		id:          id,
		serviceID:   serviceID,
		providerID:  providerID,
		customerID:  customerID,
		bookingDate: bookingDate,
		start:       start,
		end:         end,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (a *Appointment) ID() int64                    { return a.id }
func (a *Appointment) ServiceID() int64             { return a.serviceID }
func (a *Appointment) ProviderID() int64            { return a.providerID }
func (a *Appointment) CustomerID() int64            { return a.customerID }
func (a *Appointment) BookingDate() time.Time       { return a.bookingDate }
func (a *Appointment) Start() schedule.TimeOfDay    { return a.start }
func (a *Appointment) End() schedule.TimeOfDay      { return a.end }
func (a *Appointment) Status() Status               { return a.status }
func (a *Appointment) CreatedAt() time.Time         { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time         { return a.updatedAt }

func (a *Appointment) TransitionTo(next Status, now time.Time) error {
	if !next.Valid() {
		return ErrInvalidStatus
	}
	if !a.status.CanTransitionTo(next) {
		return ErrForbiddenTransition
	}
	a.status = next
	a.updatedAt = now
	return nil
}
