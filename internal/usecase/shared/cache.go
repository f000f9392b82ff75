package shared

import "context"

// AvailabilityCache memoizes month availability per (service, provider,
// month). Any write to a provider's ledger must invalidate that provider's
// entries, so a cached month never outlives a booking.
type AvailabilityCache interface {
	GetDates(ctx context.Context, serviceID, providerID int64, month string) ([]string, bool, error)
	SetDates(ctx context.Context, serviceID, providerID int64, month string, dates []string) error
	InvalidateProvider(ctx context.Context, providerID int64) error
}
