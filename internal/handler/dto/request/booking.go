package request

import (
	"strings"

	"bookwise/internal/usecase/commands"
	"bookwise/internal/usecase/shared"
)

type BookingCustomer struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone,omitempty"`
}

type CreateBookingRequest struct {
	ServiceID  int64           `json:"service_id" binding:"required,gt=0"`
	ProviderID int64           `json:"provider_id" binding:"required,gt=0"`
	Date       string          `json:"date" binding:"required"`
	Time       string          `json:"time" binding:"required"`
	Customer   BookingCustomer `json:"customer" binding:"required"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ServiceID:  r.ServiceID,
		ProviderID: r.ProviderID,
		Date:       r.Date,
		Time:       r.Time,
		Customer: shared.CustomerDetails{
			FirstName: strings.TrimSpace(r.Customer.FirstName),
			LastName:  strings.TrimSpace(r.Customer.LastName),
			Email:     strings.ToLower(strings.TrimSpace(r.Customer.Email)),
			Phone:     strings.TrimSpace(r.Customer.Phone),
		},
	}
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
