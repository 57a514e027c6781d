package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"glow_go/internal/domain/entities"
	"glow_go/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidBookingID  = errors.New("invalid booking id")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidProviderID = errors.New("invalid provider id")
)

// ProviderStats is the dashboard projection for a single provider.
//
// ConfirmedRevenue sums price snapshots of confirmed and completed bookings
// only; pending and cancelled bookings never count as revenue.

type ProviderStats struct {
	BookingCount     int
	ConfirmedRevenue float64
}

// IBookingUseCase is the booking lifecycle engine plus its read-only query
// layer.
//
// Lifecycle operations follow read-all / transform / write-all against the
// store, so a failed operation never leaves a partially written collection.
// Queries are recomputed from the current store snapshot on every call and
// never mutate it.

type IBookingUseCase interface {
	CreateBooking(ctx context.Context, providerID, serviceID, date, timeSlot string) (entities.Booking, error)
	Transition(ctx context.Context, id string, target entities.BookingStatus) (entities.Booking, error)
	ConfirmBooking(ctx context.Context, id string) (entities.Booking, error)
	CancelBooking(ctx context.Context, id string) (entities.Booking, error)
	CompleteBooking(ctx context.Context, id string) (entities.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
	ListByProviderID(ctx context.Context, providerID string) ([]entities.Booking, error)
	StatsByProviderID(ctx context.Context, providerID string) (ProviderStats, error)
}

type BookingUseCase struct {
	repo     interfaces.IBookingRepository
	sessions interfaces.ISessionRepository
	catalog  interfaces.IProviderCatalog
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, sessions interfaces.ISessionRepository, catalog interfaces.IProviderCatalog) *BookingUseCase {
	return &BookingUseCase{repo: repo, sessions: sessions, catalog: catalog}
}

// CreateBooking validates the request against the catalog and the current
// session, snapshots provider/service name and price, appends the new pending
// booking and persists the full collection.
//
// Known limitation: no double-booking check against provider/slot/date
// overlap — the slot enumeration is advisory, pending a product decision.
func (u *BookingUseCase) CreateBooking(ctx context.Context, providerID, serviceID, date, timeSlot string) (entities.Booking, error) {
	providerID = strings.TrimSpace(providerID)
	serviceID = strings.TrimSpace(serviceID)
	if providerID == "" {
		return entities.Booking{}, ErrInvalidProviderID
	}

	provider, ok := u.catalog.ProviderByID(providerID)
	if !ok {
		return entities.Booking{}, ErrProviderNotFound
	}

	user, err := u.sessions.Load(ctx)
	if err != nil {
		return entities.Booking{}, err
	}

	// When the service is outside the provider's catalog the draft validator
	// reports it as a field error.
	service, _ := provider.ServiceByID(serviceID)
	if service.ID == "" {
		service.ID = serviceID
	}

	draft := entities.BookingDraft{
		User:     user,
		Provider: provider,
		Service:  service,
		Date:     strings.TrimSpace(date),
		Time:     strings.TrimSpace(timeSlot),
	}
	if vErr := draft.Validate(time.Now()); vErr != nil {
		log.Printf("[booking][usecase] create rejected provider_id=%s field=%s reason=%q", providerID, vErr.Field, vErr.Reason)
		return entities.Booking{}, vErr
	}

	bookings, err := u.repo.LoadAll(ctx)
	if err != nil {
		return entities.Booking{}, err
	}

	b := entities.Booking{
		ID:           freshBookingID(bookings),
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
		ServiceID:    service.ID,
		ServiceName:  service.Name,
		UserID:       user.ID,
		Date:         draft.Date,
		Time:         draft.Time,
		Status:       entities.BookingStatusPending,
		TotalPrice:   service.Price,
		CreatedAt:    time.Now().UTC(),
	}

	if err := u.repo.SaveAll(ctx, append(bookings, b)); err != nil {
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] created booking_id=%s provider_id=%s service_id=%s date=%s time=%q", b.ID, b.ProviderID, b.ServiceID, b.Date, b.Time)
	return b, nil
}

// freshBookingID returns a uuid not yet present in the collection.
func freshBookingID(bookings []entities.Booking) string {
	for {
		id := uuid.NewString()
		taken := false
		for _, b := range bookings {
			if b.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

// Transition moves a booking along the status graph and persists the full
// collection. Terminal states are final: any edge out of cancelled or
// completed fails with ErrInvalidTransition and the booking is left unchanged.
func (u *BookingUseCase) Transition(ctx context.Context, id string, target entities.BookingStatus) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	if !target.IsValid() {
		return entities.Booking{}, ErrInvalidTransition
	}

	bookings, err := u.repo.LoadAll(ctx)
	if err != nil {
		return entities.Booking{}, err
	}

	idx := -1
	for i := range bookings {
		if bookings[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return entities.Booking{}, ErrBookingNotFound
	}

	if !bookings[idx].Status.CanTransitionTo(target) {
		log.Printf("[booking][usecase] transition rejected booking_id=%s from=%s to=%s", id, bookings[idx].Status, target)
		return entities.Booking{}, ErrInvalidTransition
	}

	bookings[idx].Status = target
	if err := u.repo.SaveAll(ctx, bookings); err != nil {
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] transition applied booking_id=%s to=%s", id, target)
	return bookings[idx], nil
}

func (u *BookingUseCase) ConfirmBooking(ctx context.Context, id string) (entities.Booking, error) {
	return u.Transition(ctx, id, entities.BookingStatusConfirmed)
}

func (u *BookingUseCase) CancelBooking(ctx context.Context, id string) (entities.Booking, error) {
	return u.Transition(ctx, id, entities.BookingStatusCancelled)
}

func (u *BookingUseCase) CompleteBooking(ctx context.Context, id string) (entities.Booking, error) {
	return u.Transition(ctx, id, entities.BookingStatusCompleted)
}

// ListByUserID returns the user's bookings, most recently created first.
func (u *BookingUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.list(ctx, func(b entities.Booking) bool { return b.UserID == userID })
}

// ListByProviderID returns a provider's incoming bookings, most recently
// created first.
func (u *BookingUseCase) ListByProviderID(ctx context.Context, providerID string) ([]entities.Booking, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, ErrInvalidProviderID
	}
	return u.list(ctx, func(b entities.Booking) bool { return b.ProviderID == providerID })
}

func (u *BookingUseCase) list(ctx context.Context, keep func(entities.Booking) bool) ([]entities.Booking, error) {
	bookings, err := u.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Booking, 0, len(bookings))
	// Walk backwards so equal timestamps fall back to reverse insertion order.
	for i := len(bookings) - 1; i >= 0; i-- {
		if keep(bookings[i]) {
			out = append(out, bookings[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// StatsByProviderID recomputes the provider dashboard aggregates from the
// current store snapshot.
func (u *BookingUseCase) StatsByProviderID(ctx context.Context, providerID string) (ProviderStats, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return ProviderStats{}, ErrInvalidProviderID
	}

	bookings, err := u.repo.LoadAll(ctx)
	if err != nil {
		return ProviderStats{}, err
	}

	var stats ProviderStats
	for _, b := range bookings {
		if b.ProviderID != providerID {
			continue
		}
		stats.BookingCount++
		if b.Status == entities.BookingStatusConfirmed || b.Status == entities.BookingStatusCompleted {
			stats.ConfirmedRevenue += b.TotalPrice
		}
	}
	return stats, nil
}
