package request

import "strings"

// CreateBookingRequest is the payload of POST /v1/bookings. The acting
// customer comes from the current session, never from the payload.

type CreateBookingRequest struct {
	ProviderID string `json:"provider_id" binding:"required"`
	ServiceID  string `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
}

func (r CreateBookingRequest) ResolveProviderID() string {
	return strings.TrimSpace(r.ProviderID)
}

func (r CreateBookingRequest) ResolveServiceID() string {
	return strings.TrimSpace(r.ServiceID)
}
