package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookwise/internal/domain/appointment"
	"bookwise/internal/domain/schedule"
	"bookwise/internal/infra"
	"bookwise/internal/observability/metrics"
	"bookwise/internal/pkg/clock"
	"bookwise/internal/pkg/config"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/shared"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type CreateBookingParams struct {
	ServiceID  int64
	ProviderID int64
	Date       string
	Time       string
	Customer   shared.CustomerDetails
}

type CreateBookingResult struct {
	AppointmentID int64
	// SideEffectErrors reports post-commit failures. The booking itself is
	// durable regardless; callers retry the side effects, never the insert.
	SideEffectErrors []string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
	UpdateStatus(ctx context.Context, appointmentID int64, status string) error
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	services  shared.ServiceReadStore
	providers shared.ProviderReadStore
	hours     shared.WorkingHoursReadStore
	cache     shared.AvailabilityCache
	publisher shared.EventPublisher
	generator schedule.Generator
	clock     clock.Clock
	logger    *slog.Logger
	txTimeout time.Duration
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	services shared.ServiceReadStore,
	providers shared.ProviderReadStore,
	hours shared.WorkingHoursReadStore,
	cache shared.AvailabilityCache,
	publisher shared.EventPublisher,
	generator schedule.Generator,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		services:  services,
		providers: providers,
		hours:     hours,
		cache:     cache,
		publisher: publisher,
		generator: generator,
		clock:     clk,
		logger:    logger,
		txTimeout: cfg.TxTimeout,
	}
}

// CreateBooking runs the booking state machine: validate, then re-check and
// insert inside one per-provider serialized transaction, then fire the
// post-commit side effects. Two concurrent attempts on the same slot cannot
// both commit; the loser sees ErrSlotUnavailable.
func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	req, err := b.validate(ctx, params)
	if err != nil {
		metrics.BookingAttempts.WithLabelValues("invalid_input").Inc()
		return nil, err
	}

	// The customer row is owned by an external collaborator; resolving it
	// happens before any lock is taken so a failure leaves the ledger
	// untouched and the critical section stays a check plus an insert.
	customerID, err := b.upsertCustomer(ctx, params.Customer)
	if err != nil {
		metrics.BookingAttempts.WithLabelValues("error").Inc()
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}

	appointmentID, err := b.commitAppointment(ctx, req, customerID)
	if err != nil {
		return nil, err
	}
	metrics.BookingAttempts.WithLabelValues("committed").Inc()

	result := &CreateBookingResult{AppointmentID: appointmentID}
	result.SideEffectErrors = b.runSideEffects(ctx, req, appointmentID, customerID)
	return result, nil
}

// bookingRequest is a fully validated, timezone-resolved booking attempt.
type bookingRequest struct {
	spec       schedule.ServiceSpec
	providerID int64
	date       time.Time
	start      schedule.TimeOfDay
	end        schedule.TimeOfDay
	loc        *time.Location
}

func (b *bookingCommandsImpl) validate(ctx context.Context, params CreateBookingParams) (*bookingRequest, error) {
	if params.ServiceID <= 0 || params.ProviderID <= 0 {
		return nil, errs.Mark(errs.New("ids must be positive"), errs.ErrInvalidInput)
	}
	if params.Customer.Email == "" {
		return nil, errs.Mark(errs.New("customer email required"), errs.ErrInvalidInput)
	}

	svc, err := b.services.FindByID(ctx, params.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, errs.Mark(errs.ErrServiceInactive, errs.ErrInvalidInput)
	}

	provider, err := b.providers.FindByID(ctx, params.ProviderID)
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

	date, err := time.ParseInLocation(dateLayout, params.Date, loc)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}
	start, err := schedule.ParseTimeOfDay(params.Time)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	req := &bookingRequest{
		spec:       svc.Spec(),
		providerID: provider.ID,
		date:       date,
		start:      start,
		end:        start.Add(svc.DurationMinutes),
		loc:        loc,
	}

	// The requested start must be a slot the generator would offer: inside
	// working hours, aligned to the granularity, not in the past.
	intervals, err := b.hours.FindByProvider(ctx, provider.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceFailure)
	}
	now := b.clock.Now().In(loc)
	for _, s := range b.generator.Generate(req.spec, intervals, date, now) {
		if s.Start == start {
			return req, nil
		}
	}
	return nil, errs.Mark(errs.New("requested time is not a bookable slot"), errs.ErrSlotUnavailable)
}

// commitAppointment is the critical section: a row lock on the provider
// serializes it against every other booking for the same provider, the
// conflict test re-runs against committed state, and the insert lands in the
// same transaction. Bounded by the configured timeout.
func (b *bookingCommandsImpl) commitAppointment(ctx context.Context, req *bookingRequest, customerID int64) (int64, error) {
	txCtx, cancel := context.WithTimeout(ctx, b.txTimeout)
	defer cancel()

	started := b.clock.Now()
	var appointmentID int64
	err := b.uow.Within(txCtx, func(ctx context.Context, tx shared.Tx) error {
		ledger := tx.Appointments()

		if err := ledger.LockProvider(ctx, tx.DB(), req.providerID); err != nil {
			return err
		}

		booked, err := ledger.DayWindows(ctx, tx.DB(), req.providerID, req.date)
		if err != nil {
			return err
		}
		if schedule.Conflicts(req.start, req.spec, booked) {
			return errs.ErrSlotUnavailable
		}

		appt, err := appointment.NewPending(req.spec.ID, req.providerID, customerID, req.date, req.start, req.end, b.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidInput)
		}

		appointmentID, err = ledger.Insert(ctx, tx.DB(), appt)
		return err
	})
	metrics.BookingTxDuration.Observe(b.clock.Now().Sub(started).Seconds())

	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotUnavailable):
			metrics.BookingAttempts.WithLabelValues("slot_unavailable").Inc()
			return 0, errs.ErrSlotUnavailable
		case infra.IsKind(err, infra.KindDuplicateKey):
			// A racing transaction committed the same slot first and the
			// partial unique index caught it.
			metrics.BookingAttempts.WithLabelValues("slot_unavailable").Inc()
			return 0, errs.Mark(err, errs.ErrSlotUnavailable)
		case errors.Is(err, context.DeadlineExceeded):
			metrics.BookingAttempts.WithLabelValues("timeout").Inc()
			return 0, errs.Mark(err, errs.ErrBookingTimeout)
		default:
			metrics.BookingAttempts.WithLabelValues("error").Inc()
			return 0, errs.Mark(err, errs.ErrPersistenceFailure)
		}
	}
	return appointmentID, nil
}

func (b *bookingCommandsImpl) upsertCustomer(ctx context.Context, c shared.CustomerDetails) (int64, error) {
	var id int64
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Customers().Upsert(ctx, tx.DB(), c)
		return txErr
	})
	return id, err
}

// runSideEffects performs the post-commit steps: durable notification job,
// booking-created event, month cache invalidation. Failures are reported and
// independently retryable; they never undo the appointment.
func (b *bookingCommandsImpl) runSideEffects(ctx context.Context, req *bookingRequest, appointmentID, customerID int64) []string {
	var failures []string
	fail := func(step string, err error) {
		metrics.SideEffectFailures.WithLabelValues(step).Inc()
		b.logger.Error("post-commit side effect failed",
			"step", step, "appointment_id", appointmentID,
			"error", errs.Mark(err, errs.ErrSideEffectFailure))
		failures = append(failures, step)
	}

	ev := shared.BookingCreatedEvent{
		AppointmentID: appointmentID,
		ServiceID:     req.spec.ID,
		ProviderID:    req.providerID,
		CustomerID:    customerID,
		BookingDate:   req.date.Format(dateLayout),
		StartTime:     req.start.String(),
		EndTime:       req.end.String(),
	}

	if err := b.enqueueNotification(ctx, ev); err != nil {
		fail("notification_job", err)
	}
	if err := b.publisher.PublishBookingCreated(ctx, ev); err != nil {
		fail("event_publish", err)
	}
	if err := b.cache.InvalidateProvider(ctx, req.providerID); err != nil {
		fail("cache_invalidate", err)
	}
	return failures
}

func (b *bookingCommandsImpl) enqueueNotification(ctx context.Context, ev shared.BookingCreatedEvent) error {
	payload, err := encodeEvent(ev)
	if err != nil {
		return err
	}
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, tx.DB(), "email", "booking.created", payload, b.clock.Now())
	})
}
