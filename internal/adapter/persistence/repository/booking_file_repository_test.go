package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"glow_go/internal/domain/entities"
)

func TestBookingFileRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	repo := NewBookingFileRepositoryAt(path)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	bookings := []entities.Booking{
		{ID: "b1", ProviderID: "1", ProviderName: "Lumina Beauty Studio", ServiceID: "s1", ServiceName: "Classic Haircut", UserID: "u1", Date: "2030-01-02", Time: "10:00 AM", Status: entities.BookingStatusPending, TotalPrice: 25, CreatedAt: now},
		{ID: "b2", ProviderID: "2", ProviderName: "The Gentry Barber", ServiceID: "s5", ServiceName: "Swedish Massage", UserID: "u2", Date: "2030-01-03", Time: "01:00 PM", Status: entities.BookingStatusConfirmed, TotalPrice: 95, CreatedAt: now.Add(time.Minute)},
	}

	if err := repo.SaveAll(ctx, bookings); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	// Re-open at the same path to prove the collection survives a restart.
	loaded, err := NewBookingFileRepositoryAt(path).LoadAll(ctx)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(loaded))
	}
	for i := range bookings {
		got, want := loaded[i], bookings[i]
		if got.ID != want.ID || got.Status != want.Status || got.TotalPrice != want.TotalPrice || got.Time != want.Time {
			t.Fatalf("round trip mismatch at %d: got %+v want %+v", i, got, want)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) {
			t.Fatalf("created_at mismatch at %d: got %v want %v", i, got.CreatedAt, want.CreatedAt)
		}
	}
}

func TestBookingFileRepository_LoadFailsSoft(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		repo := NewBookingFileRepositoryAt(filepath.Join(t.TempDir(), "missing.json"))
		loaded, err := repo.LoadAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(loaded) != 0 {
			t.Fatalf("expected empty collection, got %d", len(loaded))
		}
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bookings.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		loaded, err := NewBookingFileRepositoryAt(path).LoadAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(loaded) != 0 {
			t.Fatalf("expected empty collection, got %d", len(loaded))
		}
	})
}

func TestBookingFileRepository_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	repo := NewBookingFileRepositoryAt(path)
	ctx := context.Background()

	if err := repo.SaveAll(ctx, []entities.Booking{{ID: "b1"}, {ID: "b2"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.SaveAll(ctx, []entities.Booking{{ID: "b3"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "b3" {
		t.Fatalf("expected full overwrite, got %+v", loaded)
	}
}
