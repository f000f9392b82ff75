package request

// AvailableSlotsQuery binds the query string of the per-day availability
// endpoint. Date is passed through as-is; the usecase owns format validation.
type AvailableSlotsQuery struct {
	ServiceID  int64  `form:"service_id" binding:"required,gt=0"`
	ProviderID int64  `form:"provider_id" binding:"required,gt=0"`
	Date       string `form:"date" binding:"required"`
}

type AvailableDatesQuery struct {
	ServiceID  int64  `form:"service_id" binding:"required,gt=0"`
	ProviderID int64  `form:"provider_id" binding:"required,gt=0"`
	Month      string `form:"month" binding:"required"`
}
