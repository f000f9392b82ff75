package shared

import "context"

// BookingCreatedEvent is the fire-and-forget payload handed to downstream
// notification and payment collaborators after a booking commits.
type BookingCreatedEvent struct {
	AppointmentID int64  `json:"appointment_id"`
	ServiceID     int64  `json:"service_id"`
	ProviderID    int64  `json:"provider_id"`
	CustomerID    int64  `json:"customer_id"`
	BookingDate   string `json:"booking_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, ev BookingCreatedEvent) error
}
