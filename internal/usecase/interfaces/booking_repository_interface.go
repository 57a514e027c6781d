package interfaces

import (
	"context"

	"glow_go/internal/domain/entities"
)

// IBookingRepository abstracts durable storage of the booking collection.
//
// The store holds the collection as a single ordered record with no query
// capability: LoadAll reads the whole collection (missing or corrupt data
// degrades to an empty collection, never an error the caller must handle as
// fatal), SaveAll atomically overwrites it. All filtering happens in the
// query layer; mutations follow read-all, transform, write-all.

type IBookingRepository interface {
	LoadAll(ctx context.Context) ([]entities.Booking, error)
	SaveAll(ctx context.Context, bookings []entities.Booking) error
}
