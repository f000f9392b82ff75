package shared

import (
	"context"
	"time"

	"bookwise/internal/domain/appointment"
	"bookwise/internal/domain/schedule"
	"bookwise/internal/infra/db"
)

type UnitOfWork interface {
	// Within: write transaction with serialization-failure retry
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	Customers() CustomerRepository
	Notifications() NotificationRepository
	DB() db.DBTX
}

// AppointmentRepository is the write side of the appointment ledger. All
// mutation of appointment rows goes through it, inside a UnitOfWork.
type AppointmentRepository interface {
	// LockProvider serializes concurrent bookings for one provider by taking
	// a row lock; unrelated providers proceed in parallel.
	LockProvider(ctx context.Context, dbtx db.DBTX, providerID int64) error
	// DayWindows returns the occupied windows of every non-canceled
	// appointment for the provider on the date, buffers included.
	DayWindows(ctx context.Context, dbtx db.DBTX, providerID int64, date time.Time) ([]schedule.BookedWindow, error)
	Insert(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (int64, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id int64, status appointment.Status, now time.Time) error
}

type CustomerRepository interface {
	// Upsert keys customers by email and returns the durable customer id.
	Upsert(ctx context.Context, dbtx db.DBTX, c CustomerDetails) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type CustomerDetails struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// ServiceSnapshot is the service catalog read contract: what the engine
// needs to generate and price slots, nothing more.
type ServiceSnapshot struct {
	ID              int64
	Name            string
	DurationMinutes int
	BufferBefore    int
	BufferAfter     int
	Active          bool
}

func (s ServiceSnapshot) Spec() schedule.ServiceSpec {
	return schedule.ServiceSpec{
		ID:              s.ID,
		DurationMinutes: s.DurationMinutes,
		BufferBefore:    s.BufferBefore,
		BufferAfter:     s.BufferAfter,
	}
}

// ProviderSnapshot carries the provider's timezone; every time computation
// the engine performs happens in that zone, never the server default.
type ProviderSnapshot struct {
	ID       int64
	Name     string
	Timezone string
	Active   bool
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, id int64) (*ServiceSnapshot, error)
}

type ProviderReadStore interface {
	FindByID(ctx context.Context, id int64) (*ProviderSnapshot, error)
}

type WorkingHoursReadStore interface {
	FindByProvider(ctx context.Context, providerID int64) ([]schedule.WorkingInterval, error)
}

type AppointmentReadStore interface {
	DayWindows(ctx context.Context, providerID int64, date time.Time) ([]schedule.BookedWindow, error)
	// MonthWindows groups a whole month's occupied windows by day of month
	// in one round trip, for the available-dates fan-out.
	MonthWindows(ctx context.Context, providerID int64, year int, month time.Month) (map[int][]schedule.BookedWindow, error)
}
