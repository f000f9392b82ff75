//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"bookwise/internal/domain/appointment"
	"bookwise/internal/domain/schedule"
	"bookwise/internal/infra"
	dbpkg "bookwise/internal/infra/db"
	"bookwise/internal/usecase/shared"
)

// fakeLedger is an in-memory appointment ledger. Its mutex stands in for the
// per-provider row lock: every unit of work runs fully serialized, the same
// guarantee the postgres transaction provides.
type fakeLedger struct {
	mu        sync.Mutex
	rows      []*storedRow
	nextID    int64
	insertErr error
	lockErr   error
}

type storedRow struct {
	id       int64
	provider int64
	date     string
	start    schedule.TimeOfDay
	end      schedule.TimeOfDay
	buffers  [2]int
	status   appointment.Status
}

type fakeTx struct {
	ledger        *fakeLedger
	customers     *fakeCustomers
	notifications *fakeNotifications
}

func (t *fakeTx) Appointments() shared.AppointmentRepository   { return t.ledger }
func (t *fakeTx) Customers() shared.CustomerRepository         { return t.customers }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *fakeTx) DB() dbpkg.DBTX                               { return nil }

type fakeUoW struct {
	tx *fakeTx
	// holdLock stalls each transaction while the provider lock is held, so
	// a context deadline can expire before the work runs.
	holdLock time.Duration
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.tx.ledger.mu.Lock()
	defer u.tx.ledger.mu.Unlock()
	if u.holdLock > 0 {
		time.Sleep(u.holdLock)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db dbpkg.DBTX) error) error {
	return fn(ctx, nil)
}

func (l *fakeLedger) LockProvider(_ context.Context, _ dbpkg.DBTX, _ int64) error {
	return l.lockErr
}

func (l *fakeLedger) DayWindows(_ context.Context, _ dbpkg.DBTX, providerID int64, date time.Time) ([]schedule.BookedWindow, error) {
	key := date.Format("2006-01-02")
	var out []schedule.BookedWindow
	for _, r := range l.rows {
		if r.provider == providerID && r.date == key && r.status.BlocksSlot() {
			out = append(out, schedule.BookedWindow{
				Start: r.start, End: r.end,
				BufferBefore: r.buffers[0], BufferAfter: r.buffers[1],
			})
		}
	}
	return out, nil
}

func (l *fakeLedger) Insert(_ context.Context, _ dbpkg.DBTX, appt *appointment.Appointment) (int64, error) {
	if l.insertErr != nil {
		return 0, l.insertErr
	}
	l.nextID++
	l.rows = append(l.rows, &storedRow{
		id:       l.nextID,
		provider: appt.ProviderID(),
		date:     appt.BookingDate().Format("2006-01-02"),
		start:    appt.Start(),
		end:      appt.End(),
		status:   appt.Status(),
	})
	return l.nextID, nil
}

func (l *fakeLedger) FindByID(_ context.Context, _ dbpkg.DBTX, id int64) (*appointment.Appointment, error) {
	for _, r := range l.rows {
		if r.id == id {
			return appointment.Reconstruct(r.id, 1, r.provider, 1,
				time.Time{}, r.start, r.end, r.status, time.Time{}, time.Time{})
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "appointment not found", errors.New("no rows"))
}

func (l *fakeLedger) UpdateStatus(_ context.Context, _ dbpkg.DBTX, id int64, status appointment.Status, _ time.Time) error {
	for _, r := range l.rows {
		if r.id == id {
			r.status = status
			return nil
		}
	}
	return infra.WrapRepoErr(infra.KindNotFound, "appointment not found", errors.New("no rows"))
}

type fakeCustomers struct {
	upsertErr error
	upserts   int
}

func (c *fakeCustomers) Upsert(_ context.Context, _ dbpkg.DBTX, _ shared.CustomerDetails) (int64, error) {
	if c.upsertErr != nil {
		return 0, c.upsertErr
	}
	c.upserts++
	return 77, nil
}

type fakeNotifications struct {
	mu      sync.Mutex
	jobs    int
	failErr error
}

func (n *fakeNotifications) CreateJob(_ context.Context, _ dbpkg.DBTX, _, _ string, _ []byte, _ time.Time) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failErr != nil {
		return n.failErr
	}
	n.jobs++
	return nil
}

type fakeServices struct {
	snapshot *shared.ServiceSnapshot
	err      error
}

func (s *fakeServices) FindByID(_ context.Context, _ int64) (*shared.ServiceSnapshot, error) {
	return s.snapshot, s.err
}

type fakeProviders struct {
	snapshot *shared.ProviderSnapshot
	err      error
}

func (p *fakeProviders) FindByID(_ context.Context, _ int64) (*shared.ProviderSnapshot, error) {
	return p.snapshot, p.err
}

type fakeHours struct {
	intervals []schedule.WorkingInterval
}

func (h *fakeHours) FindByProvider(_ context.Context, _ int64) ([]schedule.WorkingInterval, error) {
	return h.intervals, nil
}

type fakeCache struct {
	mu            sync.Mutex
	invalidations []int64
	err           error
}

func (c *fakeCache) GetDates(_ context.Context, _, _ int64, _ string) ([]string, bool, error) {
	return nil, false, nil
}

func (c *fakeCache) SetDates(_ context.Context, _, _ int64, _ string, _ []string) error {
	return nil
}

func (c *fakeCache) InvalidateProvider(_ context.Context, providerID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.invalidations = append(c.invalidations, providerID)
	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []shared.BookingCreatedEvent
	err       error
}

func (p *fakePublisher) PublishBookingCreated(_ context.Context, ev shared.BookingCreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, ev)
	return nil
}
