package entities

// ServiceCategory is the fixed set of catalog categories.

type ServiceCategory string

const (
	CategoryHair    ServiceCategory = "Hair"
	CategorySkin    ServiceCategory = "Skin"
	CategoryNails   ServiceCategory = "Nails"
	CategoryMassage ServiceCategory = "Massage"
	CategoryMakeup  ServiceCategory = "Makeup"
)

// Service is a bookable offering inside a provider's catalog.
//
// Immutable reference data: bookings snapshot name and price at creation time,
// so later catalog edits never rewrite history.

type Service struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Price           float64         `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	Category        ServiceCategory `json:"category"`
	Description     string          `json:"description"`
}
