package commands

import (
	"context"
	"encoding/json"

	"bookwise/internal/domain/appointment"
	"bookwise/internal/infra"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/shared"
)

// UpdateStatus applies one transition of the appointment state machine.
// Rows are never deleted; canceling frees the slot for new bookings.
func (b *bookingCommandsImpl) UpdateStatus(ctx context.Context, appointmentID int64, status string) error {
	if appointmentID <= 0 {
		return errs.Mark(errs.New("id must be positive"), errs.ErrInvalidInput)
	}
	next := appointment.Status(status)
	if !next.Valid() {
		return errs.Mark(errs.New("unknown status"), errs.ErrInvalidInput)
	}

	var providerID int64
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, err := tx.Appointments().FindByID(ctx, tx.DB(), appointmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrAppointmentNotFound)
			}
			return err
		}
		if err := appt.TransitionTo(next, b.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvalidStatusChange)
		}
		providerID = appt.ProviderID()
		return tx.Appointments().UpdateStatus(ctx, tx.DB(), appointmentID, next, b.clock.Now())
	})
	if err != nil {
		return err
	}

	// A status change moves capacity, so cached month availability for the
	// provider is stale.
	if cacheErr := b.cache.InvalidateProvider(ctx, providerID); cacheErr != nil {
		b.logger.Warn("cache invalidation failed after status change",
			"appointment_id", appointmentID, "error", cacheErr)
	}
	return nil
}

func encodeEvent(ev shared.BookingCreatedEvent) ([]byte, error) {
	return json.Marshal(ev)
}
