package repository

import (
	"context"
	"path/filepath"
	"sync"

	"glow_go/internal/domain/entities"
	"glow_go/internal/usecase/interfaces"
)

const bookingsFileName = "bookings.json"

// BookingFileRepository persists the booking collection as a single ordered
// JSON record on local disk.
//
// This is the default store: it survives process restarts on the same device
// and assumes a single active session (no cross-device or multi-writer
// guarantees). Insertion order is preserved for display.

type BookingFileRepository struct {
	mu   sync.RWMutex
	path string
}

var _ interfaces.IBookingRepository = (*BookingFileRepository)(nil)

func NewBookingFileRepository() *BookingFileRepository {
	return &BookingFileRepository{path: filepath.Join(dataDir(), bookingsFileName)}
}

// NewBookingFileRepositoryAt pins the store to an explicit file path.
func NewBookingFileRepositoryAt(path string) *BookingFileRepository {
	return &BookingFileRepository{path: path}
}

func (r *BookingFileRepository) LoadAll(_ context.Context) ([]entities.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []entities.Booking
	if !readJSONFile(r.path, &bookings) {
		return []entities.Booking{}, nil
	}
	return bookings, nil
}

func (r *BookingFileRepository) SaveAll(_ context.Context, bookings []entities.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bookings == nil {
		bookings = []entities.Booking{}
	}
	return writeJSONFile(r.path, bookings)
}
