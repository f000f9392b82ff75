package readstore

import (
	"context"
	"time"

	"bookwise/internal/domain/schedule"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/pkg/pgconv"
	"bookwise/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// AppointmentReadStore serves the availability read path. Every call re-reads
// current ledger state; nothing is cached here, so availability never sees a
// stale in-process snapshot.
type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

func (r *AppointmentReadStore) DayWindows(ctx context.Context, providerID int64, date time.Time) ([]schedule.BookedWindow, error) {
	rows, err := r.db.Query(ctx, `
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
	return scanWindows(rows)
}

// MonthWindows pulls a whole month in one indexed query, grouped by day of
// month, so the available-dates fan-out costs one round trip instead of 31.
func (r *AppointmentReadStore) MonthWindows(ctx context.Context, providerID int64, year int, month time.Month) (map[int][]schedule.BookedWindow, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	rows, err := r.db.Query(ctx, `
		SELECT EXTRACT(DAY FROM a.booking_date)::int, a.start_time, a.end_time, s.buffer_before_minutes, s.buffer_after_minutes
		FROM appointments a
		JOIN services s ON s.id = a.service_id
		WHERE a.provider_id = $1 AND a.booking_date >= $2 AND a.booking_date < $3 AND a.status <> 'canceled'
		ORDER BY a.booking_date, a.start_time`,
		providerID, pgconv.PgFromDate(first), pgconv.PgFromDate(next))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query month windows", err)
	}
	defer rows.Close()

	out := make(map[int][]schedule.BookedWindow)
	for rows.Next() {
		var day, before, after int
		var start, end pgtype.Time
		if err := rows.Scan(&day, &start, &end, &before, &after); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan month window", err)
		}
		out[day] = append(out[day], schedule.BookedWindow{
			Start:        pgconv.TimeOfDayFromPg(start),
			End:          pgconv.TimeOfDayFromPg(end),
			BufferBefore: before,
			BufferAfter:  after,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read month windows", err)
	}
	return out, nil
}

func (r *AppointmentReadStore) FindViewByID(ctx context.Context, id int64) (*queries.AppointmentView, error) {
	row := r.db.QueryRow(ctx, appointmentViewSelect+` WHERE a.id = $1`, id)
	view, err := scanAppointmentView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr(infra.KindNotFound, "appointment not found", err), errs.ErrAppointmentNotFound)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find appointment view", err)
	}
	return view, nil
}

func (r *AppointmentReadStore) ListByProviderDate(ctx context.Context, providerID int64, date time.Time) ([]*queries.AppointmentView, error) {
	rows, err := r.db.Query(ctx, appointmentViewSelect+`
		WHERE a.provider_id = $1 AND a.booking_date = $2
		ORDER BY a.start_time`,
		providerID, pgconv.PgFromDate(date))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list appointments", err)
	}
	defer rows.Close()

	var out []*queries.AppointmentView
	for rows.Next() {
		view, err := scanAppointmentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan appointment view", err)
		}
		out = append(out, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read appointments", err)
	}
	return out, nil
}

const appointmentViewSelect = `
	SELECT a.id, a.service_id, s.name, a.provider_id, p.name, a.customer_id,
	       a.booking_date, a.start_time, a.end_time, a.status, a.created_at, a.updated_at
	FROM appointments a
	JOIN services s ON s.id = a.service_id
	JOIN providers p ON p.id = a.provider_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointmentView(row rowScanner) (*queries.AppointmentView, error) {
	var (
		v           queries.AppointmentView
		bookingDate pgtype.Date
		start, end  pgtype.Time
	)
	err := row.Scan(&v.ID, &v.ServiceID, &v.ServiceName, &v.ProviderID, &v.ProviderName, &v.CustomerID,
		&bookingDate, &start, &end, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.BookingDate = pgconv.DateFromPg(bookingDate).Format("2006-01-02")
	v.StartTime = pgconv.TimeOfDayFromPg(start).String()
	v.EndTime = pgconv.TimeOfDayFromPg(end).String()
	return &v, nil
}

func scanWindows(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]schedule.BookedWindow, error) {
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
