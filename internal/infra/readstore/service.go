package readstore

import (
	"context"

	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/pkg/pgconv"
	"bookwise/internal/usecase/shared"
)

// ServiceReadStore reads the service catalog. The engine never writes it;
// services are managed by an external admin surface.
type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id int64) (*shared.ServiceSnapshot, error) {
	var s shared.ServiceSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, name, duration_minutes, buffer_before_minutes, buffer_after_minutes, active
		FROM services WHERE id = $1`,
		id).Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.BufferBefore, &s.BufferAfter, &s.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr(infra.KindNotFound, "service not found", err), errs.ErrServiceNotFound)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find service", err)
	}
	return &s, nil
}
