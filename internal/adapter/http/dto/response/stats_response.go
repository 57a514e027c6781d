package response

import (
	"glow_go/internal/usecase"
)

type ProviderStatsResponse struct {
	BookingCount     int     `json:"booking_count"`
	ConfirmedRevenue float64 `json:"confirmed_revenue"`
}

func FromProviderStats(s usecase.ProviderStats) ProviderStatsResponse {
	return ProviderStatsResponse{
		BookingCount:     s.BookingCount,
		ConfirmedRevenue: s.ConfirmedRevenue,
	}
}
