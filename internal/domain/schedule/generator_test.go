//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"bookwise/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monday(loc *time.Location) time.Time {
	// 2025-06-02 is a Monday
	return time.Date(2025, 6, 2, 0, 0, 0, 0, loc)
}

func openMonday(start, end string) []schedule.WorkingInterval {
	s, _ := schedule.ParseTimeOfDay(start)
	e, _ := schedule.ParseTimeOfDay(end)
	return []schedule.WorkingInterval{{Weekday: time.Monday, Start: s, End: e}}
}

func TestGenerator_Generate(t *testing.T) {
	loc := time.UTC
	farFuture := time.Date(2025, 1, 1, 0, 0, 0, 0, loc)

	testCases := []struct {
		name        string
		granularity int
		svc         schedule.ServiceSpec
		intervals   []schedule.WorkingInterval
		now         time.Time
		wantStarts  []string
	}{
		{
			name:        "hourly service fills a full working day",
			granularity: 60,
			svc:         schedule.ServiceSpec{DurationMinutes: 60},
			intervals:   openMonday("09:00", "17:00"),
			now:         farFuture,
			wantStarts:  []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"},
		},
		{
			name:        "duration filling the interval exactly yields the single exact-fit slot",
			granularity: 15,
			svc:         schedule.ServiceSpec{DurationMinutes: 90},
			intervals:   openMonday("09:00", "10:30"),
			now:         farFuture,
			wantStarts:  []string{"09:00"},
		},
		{
			name:        "duration strictly larger than span yields empty",
			granularity: 15,
			svc:         schedule.ServiceSpec{DurationMinutes: 91},
			intervals:   openMonday("09:00", "10:30"),
			now:         farFuture,
			wantStarts:  nil,
		},
		{
			name:        "closed weekday yields empty",
			granularity: 15,
			svc:         schedule.ServiceSpec{DurationMinutes: 30},
			intervals:   []schedule.WorkingInterval{{Weekday: time.Tuesday, Start: schedule.NewTimeOfDay(9, 0), End: schedule.NewTimeOfDay(17, 0)}},
			now:         farFuture,
			wantStarts:  nil,
		},
		{
			name:        "split shift walks both intervals",
			granularity: 60,
			svc:         schedule.ServiceSpec{DurationMinutes: 60},
			intervals: []schedule.WorkingInterval{
				{Weekday: time.Monday, Start: schedule.NewTimeOfDay(9, 0), End: schedule.NewTimeOfDay(11, 0)},
				{Weekday: time.Monday, Start: schedule.NewTimeOfDay(14, 0), End: schedule.NewTimeOfDay(16, 0)},
			},
			now:        farFuture,
			wantStarts: []string{"09:00", "10:00", "14:00", "15:00"},
		},
		{
			name:        "past starts excluded when the date is today",
			granularity: 60,
			svc:         schedule.ServiceSpec{DurationMinutes: 60},
			intervals:   openMonday("09:00", "17:00"),
			now:         time.Date(2025, 6, 2, 12, 30, 0, 0, loc),
			wantStarts:  []string{"13:00", "14:00", "15:00", "16:00"},
		},
		{
			name:        "slot starting at the current minute is excluded for today",
			granularity: 60,
			svc:         schedule.ServiceSpec{DurationMinutes: 60},
			intervals:   openMonday("09:00", "17:00"),
			now:         time.Date(2025, 6, 2, 13, 0, 30, 0, loc),
			wantStarts:  []string{"14:00", "15:00", "16:00"},
		},
		{
			name:        "future dates unrestricted by the clock",
			granularity: 60,
			svc:         schedule.ServiceSpec{DurationMinutes: 60},
			intervals:   openMonday("09:00", "11:00"),
			now:         time.Date(2025, 6, 1, 23, 0, 0, 0, loc),
			wantStarts:  []string{"09:00", "10:00"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gen := schedule.NewGenerator(tc.granularity)
			slots := gen.Generate(tc.svc, tc.intervals, monday(loc), tc.now)

			starts := make([]string, 0, len(slots))
			for _, s := range slots {
				starts = append(starts, s.Start.String())
				assert.Equal(t, s.Start.Add(tc.svc.DurationMinutes), s.End)
			}
			if tc.wantStarts == nil {
				assert.Empty(t, starts)
			} else {
				assert.Equal(t, tc.wantStarts, starts)
			}
		})
	}
}

func TestGenerator_GenerateIsIdempotent(t *testing.T) {
	gen := schedule.NewGenerator(15)
	svc := schedule.ServiceSpec{DurationMinutes: 45, BufferAfter: 15}
	intervals := openMonday("08:00", "20:00")
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	first := gen.Generate(svc, intervals, monday(time.UTC), now)
	second := gen.Generate(svc, intervals, monday(time.UTC), now)
	assert.Equal(t, first, second)
}

func TestGenerator_SlotsStayInsideWorkingIntervals(t *testing.T) {
	gen := schedule.NewGenerator(15)
	svc := schedule.ServiceSpec{DurationMinutes: 50}
	intervals := openMonday("09:10", "12:00")
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	slots := gen.Generate(svc, intervals, monday(time.UTC), now)
	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.GreaterOrEqual(t, s.Start.Minutes(), schedule.NewTimeOfDay(9, 10).Minutes())
		assert.LessOrEqual(t, s.End.Minutes(), schedule.NewTimeOfDay(12, 0).Minutes())
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := schedule.ParseTimeOfDay("14:45")
	require.NoError(t, err)
	assert.Equal(t, schedule.NewTimeOfDay(14, 45), got)
	assert.Equal(t, "14:45", got.String())

	_, err = schedule.ParseTimeOfDay("25:00")
	assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)

	_, err = schedule.ParseTimeOfDay("9am")
	assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
}

func TestValidateIntervals(t *testing.T) {
	ok := []schedule.WorkingInterval{
		{Weekday: time.Monday, Start: schedule.NewTimeOfDay(9, 0), End: schedule.NewTimeOfDay(12, 0)},
		{Weekday: time.Monday, Start: schedule.NewTimeOfDay(12, 0), End: schedule.NewTimeOfDay(17, 0)},
		{Weekday: time.Friday, Start: schedule.NewTimeOfDay(9, 0), End: schedule.NewTimeOfDay(13, 0)},
	}
	assert.NoError(t, schedule.ValidateIntervals(ok))

	overlapping := []schedule.WorkingInterval{
		{Weekday: time.Monday, Start: schedule.NewTimeOfDay(9, 0), End: schedule.NewTimeOfDay(13, 0)},
		{Weekday: time.Monday, Start: schedule.NewTimeOfDay(12, 0), End: schedule.NewTimeOfDay(17, 0)},
	}
	assert.ErrorIs(t, schedule.ValidateIntervals(overlapping), schedule.ErrIntervalsOverlap)

	inverted := []schedule.WorkingInterval{
		{Weekday: time.Monday, Start: schedule.NewTimeOfDay(17, 0), End: schedule.NewTimeOfDay(9, 0)},
	}
	assert.ErrorIs(t, schedule.ValidateIntervals(inverted), schedule.ErrIntervalInverted)
}
