package readstore

import (
	"context"
	"time"

	"bookwise/internal/domain/schedule"
	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// WorkingHoursReadStore reads the provider's recurring weekly open intervals.
type WorkingHoursReadStore struct {
	db db.DBTX
}

func NewWorkingHoursReadStore(dbtx db.DBTX) *WorkingHoursReadStore {
	return &WorkingHoursReadStore{db: dbtx}
}

func (r *WorkingHoursReadStore) FindByProvider(ctx context.Context, providerID int64) ([]schedule.WorkingInterval, error) {
	rows, err := r.db.Query(ctx, `
		SELECT weekday, start_time, end_time
		FROM working_hours
		WHERE provider_id = $1
		ORDER BY weekday, start_time`,
		providerID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query working hours", err)
	}
	defer rows.Close()

	var out []schedule.WorkingInterval
	for rows.Next() {
		var weekday int
		var start, end pgtype.Time
		if err := rows.Scan(&weekday, &start, &end); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan working hours", err)
		}
		out = append(out, schedule.WorkingInterval{
			Weekday: time.Weekday(weekday),
			Start:   pgconv.TimeOfDayFromPg(start),
			End:     pgconv.TimeOfDayFromPg(end),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read working hours", err)
	}
	// Overlapping or inverted rows mean corrupt provider configuration; the
	// generator assumes disjoint intervals, so refuse to serve them.
	if err := schedule.ValidateIntervals(out); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid working hours configuration", err)
	}
	return out, nil
}
