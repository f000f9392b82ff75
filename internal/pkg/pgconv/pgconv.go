package pgconv

import (
	"errors"
	"time"

	"bookwise/internal/domain/schedule"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const microsPerMinute = 60 * 1_000_000

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// TimeOfDayFromPg converts a postgres TIME column to whole minutes.
func TimeOfDayFromPg(t pgtype.Time) schedule.TimeOfDay {
	if !t.Valid {
		return 0
	}
	return schedule.TimeOfDay(t.Microseconds / microsPerMinute)
}

func PgFromTimeOfDay(t schedule.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t.Minutes()) * microsPerMinute, Valid: true}
}

func DateFromPg(d pgtype.Date) time.Time {
	return d.Time
}

func PgFromDate(t time.Time) pgtype.Date {
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}
