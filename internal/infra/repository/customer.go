package repository

import (
	"context"

	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/usecase/shared"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// Upsert keys customers by email. Booking is usually the first contact a
// customer has with the business, so the insert path is the common one.
func (r *CustomerRepository) Upsert(ctx context.Context, dbtx db.DBTX, c shared.CustomerDetails) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx, `
		INSERT INTO customers (first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name  = EXCLUDED.last_name,
			phone      = EXCLUDED.phone,
			updated_at = now()
		RETURNING id`,
		c.FirstName, c.LastName, c.Email, c.Phone,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to upsert customer", err)
	}
	return id, nil
}
