package queries

import (
	"context"
	"log/slog"
	"time"

	"bookwise/internal/domain/schedule"
	"bookwise/internal/observability/metrics"
	"bookwise/internal/pkg/clock"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/shared"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// SlotView is the customer-visible shape of a candidate slot. Buffer math
// stays internal.
type SlotView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilityQueries interface {
	// AvailableSlots answers "which slots on date D", date in ISO YYYY-MM-DD.
	AvailableSlots(ctx context.Context, serviceID, providerID int64, date string) ([]SlotView, error)
	// AvailableDates answers "which dates in month M have at least one free
	// slot", month in YYYY-MM.
	AvailableDates(ctx context.Context, serviceID, providerID int64, month string) ([]string, error)
}

type availabilityQueriesImpl struct {
	services  shared.ServiceReadStore
	providers shared.ProviderReadStore
	hours     shared.WorkingHoursReadStore
	ledger    shared.AppointmentReadStore
	cache     shared.AvailabilityCache
	generator schedule.Generator
	clock     clock.Clock
	logger    *slog.Logger
}

func NewAvailabilityQueries(
	services shared.ServiceReadStore,
	providers shared.ProviderReadStore,
	hours shared.WorkingHoursReadStore,
	ledger shared.AppointmentReadStore,
	cache shared.AvailabilityCache,
	generator schedule.Generator,
	clk clock.Clock,
	logger *slog.Logger,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		services:  services,
		providers: providers,
		hours:     hours,
		ledger:    ledger,
		cache:     cache,
		generator: generator,
		clock:     clk,
		logger:    logger,
	}
}

func (q *availabilityQueriesImpl) AvailableSlots(ctx context.Context, serviceID, providerID int64, date string) ([]SlotView, error) {
	metrics.AvailabilityRequests.WithLabelValues("slots").Inc()

	bctx, err := q.resolveBookingContext(ctx, serviceID, providerID)
	if err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation(dateLayout, date, bctx.loc)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	slots, err := q.slotsForDay(ctx, bctx, day)
	if err != nil {
		return nil, err
	}

	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{Start: s.Start.String(), End: s.End.String()}
	}
	return views, nil
}

func (q *availabilityQueriesImpl) AvailableDates(ctx context.Context, serviceID, providerID int64, month string) ([]string, error) {
	metrics.AvailabilityRequests.WithLabelValues("dates").Inc()

	bctx, err := q.resolveBookingContext(ctx, serviceID, providerID)
	if err != nil {
		return nil, err
	}

	first, err := time.ParseInLocation(monthLayout, month, bctx.loc)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	if cached, ok, cacheErr := q.cache.GetDates(ctx, serviceID, providerID, month); cacheErr != nil {
		q.logger.Warn("availability cache read failed", "error", cacheErr)
	} else if ok {
		metrics.AvailabilityCacheHits.Inc()
		return cached, nil
	}
	metrics.AvailabilityCacheMisses.Inc()

	byDay, err := q.ledger.MonthWindows(ctx, providerID, first.Year(), first.Month())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	now := q.clock.Now().In(bctx.loc)
	dates := make([]string, 0, 31)
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		candidates := q.generator.Generate(bctx.spec, bctx.intervals, day, now)
		if len(candidates) == 0 {
			continue
		}
		free := schedule.FilterConflicts(candidates, bctx.spec, byDay[day.Day()])
		if len(free) > 0 {
			dates = append(dates, day.Format(dateLayout))
		}
	}

	if err := q.cache.SetDates(ctx, serviceID, providerID, month, dates); err != nil {
		q.logger.Warn("availability cache write failed", "error", err)
	}
	return dates, nil
}

// bookingContext is the resolved, validated read context every availability
// computation starts from: active service, active provider, its timezone and
// its weekly hours.
type bookingContext struct {
	spec      schedule.ServiceSpec
	provider  *shared.ProviderSnapshot
	intervals []schedule.WorkingInterval
	loc       *time.Location
}

func (q *availabilityQueriesImpl) resolveBookingContext(ctx context.Context, serviceID, providerID int64) (*bookingContext, error) {
	if serviceID <= 0 || providerID <= 0 {
		return nil, errs.Mark(errs.New("ids must be positive"), errs.ErrInvalidInput)
	}

	svc, err := q.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, errs.Mark(errs.ErrServiceInactive, errs.ErrInvalidInput)
	}

	provider, err := q.providers.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if !provider.Active {
		return nil, errs.Mark(errs.ErrProviderInactive, errs.ErrInvalidInput)
	}

	loc, err := time.LoadLocation(provider.Timezone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	intervals, err := q.hours.FindByProvider(ctx, providerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	return &bookingContext{
		spec:      svc.Spec(),
		provider:  provider,
		intervals: intervals,
		loc:       loc,
	}, nil
}

func (q *availabilityQueriesImpl) slotsForDay(ctx context.Context, bctx *bookingContext, day time.Time) ([]schedule.Slot, error) {
	now := q.clock.Now().In(bctx.loc)

	candidates := q.generator.Generate(bctx.spec, bctx.intervals, day, now)
	if len(candidates) == 0 {
		return nil, nil
	}

	booked, err := q.ledger.DayWindows(ctx, bctx.provider.ID, day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	return schedule.FilterConflicts(candidates, bctx.spec, booked), nil
}
