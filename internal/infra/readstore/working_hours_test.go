//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"bookwise/internal/domain/schedule"
	"bookwise/internal/infra/readstore"
	"bookwise/internal/pkg/pgconv"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func pgMinutes(hour, minute int) any {
	return pgconv.PgFromTimeOfDay(schedule.NewTimeOfDay(hour, minute))
}

func TestWorkingHoursReadStore_FindByProvider(t *testing.T) {
	t.Run("returns the provider's weekly intervals", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`SELECT weekday, start_time, end_time`).
			WithArgs(int64(2)).
			WillReturnRows(pgxmock.NewRows([]string{"weekday", "start_time", "end_time"}).
				AddRow(1, pgMinutes(9, 0), pgMinutes(12, 0)).
				AddRow(1, pgMinutes(13, 0), pgMinutes(17, 0)).
				AddRow(5, pgMinutes(9, 0), pgMinutes(13, 0)))

		store := readstore.NewWorkingHoursReadStore(mock)
		intervals, err := store.FindByProvider(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, intervals, 3)
		assert.Equal(t, time.Monday, intervals[0].Weekday)
		assert.Equal(t, schedule.NewTimeOfDay(9, 0), intervals[0].Start)
		assert.Equal(t, schedule.NewTimeOfDay(12, 0), intervals[0].End)
		assert.Equal(t, time.Friday, intervals[2].Weekday)
	})

	t.Run("provider with no hours yields empty", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`SELECT weekday, start_time, end_time`).
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows([]string{"weekday", "start_time", "end_time"}))

		store := readstore.NewWorkingHoursReadStore(mock)
		intervals, err := store.FindByProvider(context.Background(), 3)
		require.NoError(t, err)
		assert.Empty(t, intervals)
	})

	t.Run("overlapping same-day rows are rejected", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(`SELECT weekday, start_time, end_time`).
			WithArgs(int64(2)).
			WillReturnRows(pgxmock.NewRows([]string{"weekday", "start_time", "end_time"}).
				AddRow(1, pgMinutes(9, 0), pgMinutes(13, 0)).
				AddRow(1, pgMinutes(12, 0), pgMinutes(17, 0)))

		store := readstore.NewWorkingHoursReadStore(mock)
		_, err := store.FindByProvider(context.Background(), 2)
		assert.ErrorIs(t, err, schedule.ErrIntervalsOverlap)
	})
}
