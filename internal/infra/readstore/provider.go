package readstore

import (
	"context"

	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/pkg/pgconv"
	"bookwise/internal/usecase/shared"
)

type ProviderReadStore struct {
	db db.DBTX
}

func NewProviderReadStore(dbtx db.DBTX) *ProviderReadStore {
	return &ProviderReadStore{db: dbtx}
}

func (r *ProviderReadStore) FindByID(ctx context.Context, id int64) (*shared.ProviderSnapshot, error) {
	var p shared.ProviderSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, name, timezone, active
		FROM providers WHERE id = $1`,
		id).Scan(&p.ID, &p.Name, &p.Timezone, &p.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr(infra.KindNotFound, "provider not found", err), errs.ErrProviderNotFound)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find provider", err)
	}
	return &p, nil
}
