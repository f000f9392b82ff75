package queries

import (
	"context"
	"time"

	"bookwise/internal/pkg/errs"
)

// AppointmentView is the read model returned to clients; times are ISO
// strings in the provider's zone, the way they were booked.
type AppointmentView struct {
	ID           int64     `json:"id"`
	ServiceID    int64     `json:"service_id"`
	ServiceName  string    `json:"service_name"`
	ProviderID   int64     `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	CustomerID   int64     `json:"customer_id"`
	BookingDate  string    `json:"booking_date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AppointmentViewReadStore interface {
	FindViewByID(ctx context.Context, id int64) (*AppointmentView, error)
	ListByProviderDate(ctx context.Context, providerID int64, date time.Time) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id int64) (*AppointmentView, error)
	ListByProviderDate(ctx context.Context, providerID int64, date string) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	store AppointmentViewReadStore
}

func NewAppointmentQueries(store AppointmentViewReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id int64) (*AppointmentView, error) {
	if id <= 0 {
		return nil, errs.Mark(errs.New("id must be positive"), errs.ErrInvalidInput)
	}
	return q.store.FindViewByID(ctx, id)
}

func (q *appointmentQueriesImpl) ListByProviderDate(ctx context.Context, providerID int64, date string) ([]*AppointmentView, error) {
	if providerID <= 0 {
		return nil, errs.Mark(errs.New("provider id must be positive"), errs.ErrInvalidInput)
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	return q.store.ListByProviderDate(ctx, providerID, day)
}
