package response

import (
	"time"

	"bookwise/internal/usecase/queries"
)

type AppointmentResponse struct {
	ID           int64     `json:"id"`
	ServiceID    int64     `json:"service_id"`
	ServiceName  string    `json:"service_name"`
	ProviderID   int64     `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	CustomerID   int64     `json:"customer_id"`
	BookingDate  string    `json:"booking_date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           v.ID,
		ServiceID:    v.ServiceID,
		ServiceName:  v.ServiceName,
		ProviderID:   v.ProviderID,
		ProviderName: v.ProviderName,
		CustomerID:   v.CustomerID,
		BookingDate:  v.BookingDate,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromAppointmentViews(views []*queries.AppointmentView) []*AppointmentResponse {
	out := make([]*AppointmentResponse, len(views))
	for i, v := range views {
		out[i] = FromAppointmentView(v)
	}
	return out
}
