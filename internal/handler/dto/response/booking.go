package response

import (
	"bookwise/internal/usecase/commands"
)

type BookingCreatedResponse struct {
	AppointmentID    int64    `json:"appointment_id"`
	Status           string   `json:"status"`
	SideEffectErrors []string `json:"side_effect_errors,omitempty"`
}

func FromBookingResult(result *commands.CreateBookingResult) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		AppointmentID:    result.AppointmentID,
		Status:           "pending",
		SideEffectErrors: result.SideEffectErrors,
	}
}
