package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	request "glow_go/internal/adapter/http/dto/request"
	response "glow_go/internal/adapter/http/dto/response"
	"glow_go/internal/domain/entities"
	"glow_go/internal/usecase"
	"glow_go/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
	errNotSignedIn           = pkg.NewDomainErrorSimple("NOT_SIGNED_IN", "Sign in required", http.StatusUnauthorized)
	errProviderRoleRequired  = pkg.NewDomainErrorSimple("PROVIDER_ROLE_REQUIRED", "This action is for providers only", http.StatusForbidden)
)

// BookingHandler handles HTTP requests for the booking lifecycle and its
// read-only projections.
//
// Provider-only transitions are enforced here, at the presentation boundary;
// the lifecycle engine itself stays advisory about the actor, matching the
// original product behavior.

type BookingHandler struct {
	usecase  usecase.IBookingUseCase
	sessions usecase.ISessionUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase, sessions usecase.ISessionUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc, sessions: sessions}
}

// CreateBooking reserves a provider service for the signed-in customer.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.CreateBooking(c.Request.Context(), payload.ResolveProviderID(), payload.ResolveServiceID(), payload.Date, payload.Time)
	if err != nil {
		log.Printf("[booking][handler] create failed provider_id=%s err=%v", payload.ResolveProviderID(), err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

// ListMyBookings returns the signed-in user's bookings, newest first.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}

	bookings, err := h.usecase.ListByUserID(c.Request.Context(), user.ID)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// ConfirmBooking moves a pending booking to confirmed. Providers only.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.patchStatus(c, h.usecase.ConfirmBooking, true)
}

// CancelBooking cancels a pending or confirmed booking. Either role may
// cancel; the state machine still guards terminal states.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.patchStatus(c, h.usecase.CancelBooking, false)
}

// CompleteBooking marks a confirmed booking as completed. Providers only.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.patchStatus(c, h.usecase.CompleteBooking, true)
}

func (h *BookingHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Booking, error),
	providerOnly bool,
) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}
	if providerOnly && user.Role != entities.UserRoleProvider {
		c.JSON(errProviderRoleRequired.HTTPStatus, errProviderRoleRequired.ToHTTPError())
		return
	}

	id := c.Param("id")
	booking, err := updater(c.Request.Context(), id)
	if err != nil {
		log.Printf("[booking][handler] transition failed booking_id=%s err=%v", id, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

// ListProviderBookings returns a provider's incoming bookings, newest first.
func (h *BookingHandler) ListProviderBookings(c *gin.Context) {
	if !h.requireProvider(c) {
		return
	}

	bookings, err := h.usecase.ListByProviderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// GetProviderStats returns the provider dashboard aggregates.
func (h *BookingHandler) GetProviderStats(c *gin.Context) {
	if !h.requireProvider(c) {
		return
	}

	stats, err := h.usecase.StatsByProviderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProviderStats(stats))
}

func (h *BookingHandler) requireUser(c *gin.Context) (*entities.User, bool) {
	user, err := h.sessions.CurrentUser(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNotSignedIn) {
			c.JSON(errNotSignedIn.HTTPStatus, errNotSignedIn.ToHTTPError())
		} else {
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return nil, false
	}
	return user, true
}

func (h *BookingHandler) requireProvider(c *gin.Context) bool {
	user, ok := h.requireUser(c)
	if !ok {
		return false
	}
	if user.Role != entities.UserRoleProvider {
		c.JSON(errProviderRoleRequired.HTTPStatus, errProviderRoleRequired.ToHTTPError())
		return false
	}
	return true
}

func mapBookingError(err error) *pkg.AppError {
	var vErr *entities.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", fmt.Sprintf("Invalid %s: %s", vErr.Field, vErr.Reason), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidProviderID), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Provider not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not permitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotSignedIn):
		return pkg.NewDomainErrorSimple("NOT_SIGNED_IN", "Sign in required", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
