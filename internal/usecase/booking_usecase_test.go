package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"glow_go/internal/domain/entities"
	mock_interfaces "glow_go/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func providerFixture() entities.Provider {
	return entities.Provider{
		ID:      "1",
		Name:    "Lumina Beauty Studio",
		OwnerID: "owner1",
		Services: []entities.Service{
			{ID: "s1", Name: "Classic Haircut", Price: 25, DurationMinutes: 45, Category: entities.CategoryHair},
			{ID: "s2", Name: "Full Color & Blowout", Price: 120, DurationMinutes: 120, Category: entities.CategoryHair},
		},
	}
}

func customerFixture() *entities.User {
	return &entities.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: entities.UserRoleCustomer}
}

func tomorrowDate() string {
	return time.Now().AddDate(0, 0, 1).Format(entities.BookingDateLayout)
}

type bookingMocks struct {
	repo     *mock_interfaces.MockIBookingRepository
	sessions *mock_interfaces.MockISessionRepository
	catalog  *mock_interfaces.MockIProviderCatalog
}

func newBookingUseCaseWithMocks(t *testing.T) (*BookingUseCase, bookingMocks) {
	ctrl := gomock.NewController(t)
	m := bookingMocks{
		repo:     mock_interfaces.NewMockIBookingRepository(ctrl),
		sessions: mock_interfaces.NewMockISessionRepository(ctrl),
		catalog:  mock_interfaces.NewMockIProviderCatalog(ctrl),
	}
	return NewBookingUseCase(m.repo, m.sessions, m.catalog), m
}

func TestBookingUseCase_CreateBooking(t *testing.T) {
	t.Run("invalid provider id", func(t *testing.T) {
		uc, _ := newBookingUseCaseWithMocks(t)
		_, err := uc.CreateBooking(context.Background(), "   ", "s1", tomorrowDate(), "10:00 AM")
		if !errors.Is(err, ErrInvalidProviderID) {
			t.Fatalf("expected ErrInvalidProviderID, got %v", err)
		}
	})

	t.Run("provider not in catalog", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		m.catalog.EXPECT().ProviderByID("99").Return(entities.Provider{}, false)

		_, err := uc.CreateBooking(context.Background(), "99", "s1", tomorrowDate(), "10:00 AM")
		if !errors.Is(err, ErrProviderNotFound) {
			t.Fatalf("expected ErrProviderNotFound, got %v", err)
		}
	})

	t.Run("no signed-in user", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		m.catalog.EXPECT().ProviderByID("1").Return(providerFixture(), true)
		m.sessions.EXPECT().Load(gomock.Any()).Return(nil, nil)

		_, err := uc.CreateBooking(context.Background(), "1", "s1", tomorrowDate(), "10:00 AM")
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "user" {
			t.Fatalf("expected user validation error, got %v", err)
		}
	})

	t.Run("provider role cannot book", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		m.catalog.EXPECT().ProviderByID("1").Return(providerFixture(), true)
		m.sessions.EXPECT().Load(gomock.Any()).Return(&entities.User{ID: "owner1", Role: entities.UserRoleProvider}, nil)

		_, err := uc.CreateBooking(context.Background(), "1", "s1", tomorrowDate(), "10:00 AM")
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "user" {
			t.Fatalf("expected user validation error, got %v", err)
		}
	})

	t.Run("service outside provider catalog", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		m.catalog.EXPECT().ProviderByID("1").Return(providerFixture(), true)
		m.sessions.EXPECT().Load(gomock.Any()).Return(customerFixture(), nil)

		_, err := uc.CreateBooking(context.Background(), "1", "s6", tomorrowDate(), "10:00 AM")
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "service" {
			t.Fatalf("expected service validation error, got %v", err)
		}
	})

	t.Run("today is rejected on the date field", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		m.catalog.EXPECT().ProviderByID("1").Return(providerFixture(), true)
		m.sessions.EXPECT().Load(gomock.Any()).Return(customerFixture(), nil)

		today := time.Now().Format(entities.BookingDateLayout)
		_, err := uc.CreateBooking(context.Background(), "1", "s1", today, "10:00 AM")
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "date" {
			t.Fatalf("expected date validation error, got %v", err)
		}
	})

	t.Run("slot outside enumeration", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		m.catalog.EXPECT().ProviderByID("1").Return(providerFixture(), true)
		m.sessions.EXPECT().Load(gomock.Any()).Return(customerFixture(), nil)

		_, err := uc.CreateBooking(context.Background(), "1", "s1", tomorrowDate(), "07:00 PM")
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "time" {
			t.Fatalf("expected time validation error, got %v", err)
		}
	})

	t.Run("repo load error", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		m.catalog.EXPECT().ProviderByID("1").Return(providerFixture(), true)
		m.sessions.EXPECT().Load(gomock.Any()).Return(customerFixture(), nil)
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(nil, errors.New("disk"))

		_, err := uc.CreateBooking(context.Background(), "1", "s1", tomorrowDate(), "10:00 AM")
		if err == nil || err.Error() != "disk" {
			t.Fatalf("expected disk error, got %v", err)
		}
	})

	t.Run("classic haircut scenario", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		existing := []entities.Booking{{ID: "b0", UserID: "u2", ProviderID: "2"}}

		m.catalog.EXPECT().ProviderByID("1").Return(providerFixture(), true)
		m.sessions.EXPECT().Load(gomock.Any()).Return(customerFixture(), nil)
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(existing, nil)
		m.repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bs []entities.Booking) error {
				if len(bs) != 2 {
					t.Fatalf("expected append to existing collection, got %d", len(bs))
				}
				b := bs[1]
				if b.ID == "" || b.ID == "b0" {
					t.Fatalf("expected fresh unique id, got %q", b.ID)
				}
				if b.Status != entities.BookingStatusPending {
					t.Fatalf("expected pending, got %s", b.Status)
				}
				if b.TotalPrice != 25 || b.ServiceName != "Classic Haircut" || b.ProviderName != "Lumina Beauty Studio" {
					t.Fatalf("unexpected snapshots: %+v", b)
				}
				if b.UserID != "u1" || b.Time != "10:00 AM" {
					t.Fatalf("unexpected booking: %+v", b)
				}
				if b.CreatedAt.IsZero() {
					t.Fatalf("expected created_at timestamp")
				}
				return nil
			},
		)

		res, err := uc.CreateBooking(context.Background(), " 1 ", " s1 ", tomorrowDate(), "10:00 AM")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BookingStatusPending || res.TotalPrice != 25 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("nothing persisted on validation failure", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		m.catalog.EXPECT().ProviderByID("1").Return(providerFixture(), true)
		m.sessions.EXPECT().Load(gomock.Any()).Return(customerFixture(), nil)
		// No LoadAll/SaveAll expectations: any store touch fails the test.

		_, err := uc.CreateBooking(context.Background(), "1", "s1", "not-a-date", "10:00 AM")
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestBookingUseCase_Transition(t *testing.T) {
	pending := func() []entities.Booking {
		return []entities.Booking{{ID: "b1", ProviderID: "1", UserID: "u1", Status: entities.BookingStatusPending, TotalPrice: 25}}
	}

	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newBookingUseCaseWithMocks(t)
		_, err := uc.Transition(context.Background(), "  ", entities.BookingStatusConfirmed)
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("unknown target status", func(t *testing.T) {
		uc, _ := newBookingUseCaseWithMocks(t)
		_, err := uc.Transition(context.Background(), "b1", entities.BookingStatus("archived"))
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(pending(), nil)

		_, err := uc.Transition(context.Background(), "missing", entities.BookingStatusConfirmed)
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("pending to confirmed", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(pending(), nil)
		m.repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bs []entities.Booking) error {
				if bs[0].Status != entities.BookingStatusConfirmed {
					t.Fatalf("expected confirmed persisted, got %s", bs[0].Status)
				}
				return nil
			},
		)

		res, err := uc.ConfirmBooking(context.Background(), "b1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BookingStatusConfirmed {
			t.Fatalf("expected confirmed, got %s", res.Status)
		}
	})

	t.Run("double confirm fails the second time", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		confirmed := []entities.Booking{{ID: "b1", Status: entities.BookingStatusConfirmed}}
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(confirmed, nil)
		// SaveAll must not be called: the booking stays confirmed.

		_, err := uc.ConfirmBooking(context.Background(), "b1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		cancelled := []entities.Booking{{ID: "b1", Status: entities.BookingStatusCancelled}}
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(cancelled, nil).Times(3)

		for _, target := range []entities.BookingStatus{entities.BookingStatusPending, entities.BookingStatusConfirmed, entities.BookingStatusCompleted} {
			if _, err := uc.Transition(context.Background(), "b1", target); !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("cancelled -> %s: expected ErrInvalidTransition, got %v", target, err)
			}
		}
	})

	t.Run("cancel then confirm scenario", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		store := pending()
		m.repo.EXPECT().LoadAll(gomock.Any()).DoAndReturn(
			func(context.Context) ([]entities.Booking, error) {
				out := make([]entities.Booking, len(store))
				copy(out, store)
				return out, nil
			},
		).Times(2)
		m.repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, bs []entities.Booking) error {
				store = bs
				return nil
			},
		)

		res, err := uc.CancelBooking(context.Background(), "b1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BookingStatusCancelled {
			t.Fatalf("expected cancelled, got %s", res.Status)
		}

		if _, err := uc.ConfirmBooking(context.Background(), "b1"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition after cancel, got %v", err)
		}
		if store[0].Status != entities.BookingStatusCancelled {
			t.Fatalf("booking must stay cancelled, got %s", store[0].Status)
		}
	})

	t.Run("confirmed to completed", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		confirmed := []entities.Booking{{ID: "b1", Status: entities.BookingStatusConfirmed}}
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(confirmed, nil)
		m.repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.CompleteBooking(context.Background(), "b1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.BookingStatusCompleted {
			t.Fatalf("expected completed, got %s", res.Status)
		}
	})
}

func TestBookingUseCase_Queries(t *testing.T) {
	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	collection := []entities.Booking{
		{ID: "b1", UserID: "u1", ProviderID: "1", Status: entities.BookingStatusPending, TotalPrice: 25, CreatedAt: base},
		{ID: "b2", UserID: "u2", ProviderID: "1", Status: entities.BookingStatusConfirmed, TotalPrice: 120, CreatedAt: base.Add(time.Hour)},
		{ID: "b3", UserID: "u1", ProviderID: "2", Status: entities.BookingStatusCompleted, TotalPrice: 95, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "b4", UserID: "u1", ProviderID: "1", Status: entities.BookingStatusCancelled, TotalPrice: 45, CreatedAt: base.Add(3 * time.Hour)},
	}

	t.Run("ListByUserID filters and orders newest first", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(collection, nil)

		got, err := uc.ListByUserID(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 bookings, got %d", len(got))
		}
		if got[0].ID != "b4" || got[1].ID != "b3" || got[2].ID != "b1" {
			t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
		}
		for _, b := range got {
			if b.UserID != "u1" {
				t.Fatalf("leaked foreign booking: %+v", b)
			}
		}
	})

	t.Run("ListByUserID invalid id", func(t *testing.T) {
		uc, _ := newBookingUseCaseWithMocks(t)
		if _, err := uc.ListByUserID(context.Background(), " "); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("ListByProviderID filters and orders newest first", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(collection, nil)

		got, err := uc.ListByProviderID(context.Background(), "1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 || got[0].ID != "b4" || got[1].ID != "b2" || got[2].ID != "b1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("equal timestamps fall back to reverse insertion order", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		same := []entities.Booking{
			{ID: "first", UserID: "u1", CreatedAt: base},
			{ID: "second", UserID: "u1", CreatedAt: base},
		}
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(same, nil)

		got, err := uc.ListByUserID(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].ID != "second" || got[1].ID != "first" {
			t.Fatalf("unexpected tie-break order: %+v", got)
		}
	})

	t.Run("StatsByProviderID sums confirmed and completed only", func(t *testing.T) {
		uc, m := newBookingUseCaseWithMocks(t)
		m.repo.EXPECT().LoadAll(gomock.Any()).Return(collection, nil)

		stats, err := uc.StatsByProviderID(context.Background(), "1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.BookingCount != 3 {
			t.Fatalf("expected 3 bookings counted, got %d", stats.BookingCount)
		}
		if stats.ConfirmedRevenue != 120 {
			t.Fatalf("expected revenue 120, got %v", stats.ConfirmedRevenue)
		}
	})

	t.Run("StatsByProviderID invalid id", func(t *testing.T) {
		uc, _ := newBookingUseCaseWithMocks(t)
		if _, err := uc.StatsByProviderID(context.Background(), ""); !errors.Is(err, ErrInvalidProviderID) {
			t.Fatalf("expected ErrInvalidProviderID, got %v", err)
		}
	})
}
