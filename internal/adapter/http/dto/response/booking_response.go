package response

import (
	"time"

	"glow_go/internal/domain/entities"
)

type BookingResponse struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	ServiceID    string    `json:"service_id"`
	ServiceName  string    `json:"service_name"`
	UserID       string    `json:"user_id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		ProviderID:   b.ProviderID,
		ProviderName: b.ProviderName,
		ServiceID:    b.ServiceID,
		ServiceName:  b.ServiceName,
		UserID:       b.UserID,
		Date:         b.Date,
		Time:         b.Time,
		Status:       string(b.Status),
		TotalPrice:   b.TotalPrice,
		CreatedAt:    b.CreatedAt,
	}
}

func FromBookings(bs []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBooking(b))
	}
	return out
}
