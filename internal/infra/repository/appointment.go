package repository

import (
	"context"
	"errors"
	"time"

	"bookwise/internal/domain/appointment"
	"bookwise/internal/domain/schedule"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// AppointmentRepository is the write side of the appointment ledger.
// Methods take the transaction they must run in; the repository itself
// carries no connection state.
type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

// LockProvider takes a row lock on the provider, serializing every booking
// check-and-insert for that provider for the rest of the transaction.
// Bookings for other providers are unaffected.
func (r *AppointmentRepository) LockProvider(ctx context.Context, dbtx db.DBTX, providerID int64) error {
	var id int64
	err := dbtx.QueryRow(ctx, `SELECT id FROM providers WHERE id = $1 FOR UPDATE`, providerID).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr(infra.KindNotFound, "provider not found", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to lock provider", err)
	}
	return nil
}

func (r *AppointmentRepository) DayWindows(ctx context.Context, dbtx db.DBTX, providerID int64, date time.Time) ([]schedule.BookedWindow, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT a.start_time, a.end_time, s.buffer_before_minutes, s.buffer_after_minutes
		FROM appointments a
		JOIN services s ON s.id = a.service_id
		WHERE a.provider_id = $1 AND a.booking_date = $2 AND a.status <> 'canceled'
		ORDER BY a.start_time`,
		providerID, pgconv.PgFromDate(date))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query day windows", err)
	}
	defer rows.Close()

	var out []schedule.BookedWindow
	for rows.Next() {
		var start, end pgtype.Time
		var before, after int
		if err := rows.Scan(&start, &end, &before, &after); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan day window", err)
		}
		out = append(out, schedule.BookedWindow{
			Start:        pgconv.TimeOfDayFromPg(start),
			End:          pgconv.TimeOfDayFromPg(end),
			BufferBefore: before,
			BufferAfter:  after,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read day windows", err)
	}
	return out, nil
}

func (r *AppointmentRepository) Insert(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx, `
		INSERT INTO appointments (service_id, provider_id, customer_id, booking_date, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id`,
		appt.ServiceID(), appt.ProviderID(), appt.CustomerID(),
		pgconv.PgFromDate(appt.BookingDate()),
		pgconv.PgFromTimeOfDay(appt.Start()), pgconv.PgFromTimeOfDay(appt.End()),
		string(appt.Status()), appt.CreatedAt(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				return 0, infra.WrapRepoErr(infra.KindDuplicateKey, "slot already booked", err)
			case pgErrCodeForeignKeyViolation:
				return 0, infra.WrapRepoErr(infra.KindForeignKeyViolated, "unknown reference on appointment", err)
			}
		}
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to insert appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*appointment.Appointment, error) {
	var (
		apptID, serviceID, providerID, customerID int64
		bookingDate                               pgtype.Date
		start, end                                pgtype.Time
		status                                    string
		createdAt, updatedAt                      time.Time
	)
	err := dbtx.QueryRow(ctx, `
		SELECT id, service_id, provider_id, customer_id, booking_date, start_time, end_time, status, created_at, updated_at
		FROM appointments
		WHERE id = $1
		FOR UPDATE`,
		id).Scan(&apptID, &serviceID, &providerID, &customerID, &bookingDate, &start, &end, &status, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "appointment not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find appointment", err)
	}

	appt, err := appointment.Reconstruct(apptID, serviceID, providerID, customerID,
		pgconv.DateFromPg(bookingDate),
		pgconv.TimeOfDayFromPg(start), pgconv.TimeOfDayFromPg(end),
		appointment.Status(status), createdAt, updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "corrupt appointment row", err)
	}
	return appt, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id int64, status appointment.Status, now time.Time) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE appointments SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), now)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "appointment not found", nil)
	}
	return nil
}
