package routes

import (
	"glow_go/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathProviders = "/providers"
	PathBookings  = "/bookings"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	sessionHandler *handlers.SessionHandler,
	providerHandler *handlers.ProviderHandler,
	bookingHandler *handlers.BookingHandler,
) {
	auth := rg.Group(PathAuth)
	{
		// Identity stub: no credentials, the payload becomes the session.
		auth.POST("/login", sessionHandler.Login)
		auth.POST("/logout", sessionHandler.Logout)
		auth.GET("/me", sessionHandler.Me)
	}

	providers := rg.Group(PathProviders)
	{
		providers.GET("", providerHandler.ListProviders)
		providers.GET("/:id", providerHandler.GetProvider)

		// Provider dashboard views.
		providers.GET("/:id/bookings", bookingHandler.ListProviderBookings)
		providers.GET("/:id/stats", bookingHandler.GetProviderStats)
	}

	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.ListMyBookings)
		bookings.PATCH("/:id/confirm", bookingHandler.ConfirmBooking)
		bookings.PATCH("/:id/cancel", bookingHandler.CancelBooking)
		bookings.PATCH("/:id/complete", bookingHandler.CompleteBooking)
	}
}
