package catalog

import (
	"glow_go/internal/domain/entities"
	"glow_go/internal/usecase/interfaces"
)

// StaticCatalog serves the preloaded provider/service reference data.
//
// The marketplace ships with a fixed directory; there is no provider-editing
// flow, so the catalog is immutable after construction.

type StaticCatalog struct {
	providers []entities.Provider
}

var _ interfaces.IProviderCatalog = (*StaticCatalog)(nil)

// NewStaticCatalog returns the seeded marketplace directory.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{providers: seedProviders()}
}

func (c *StaticCatalog) Providers() []entities.Provider {
	out := make([]entities.Provider, len(c.providers))
	copy(out, c.providers)
	return out
}

func (c *StaticCatalog) ProviderByID(id string) (entities.Provider, bool) {
	for _, p := range c.providers {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Provider{}, false
}

func seedServices() []entities.Service {
	return []entities.Service{
		{ID: "s1", Name: "Classic Haircut", Price: 25, DurationMinutes: 45, Category: entities.CategoryHair, Description: "Precision cutting and styling."},
		{ID: "s2", Name: "Full Color & Blowout", Price: 120, DurationMinutes: 120, Category: entities.CategoryHair, Description: "Vibrant color and signature blow dry."},
		{ID: "s3", Name: "Deep Cleansing Facial", Price: 85, DurationMinutes: 60, Category: entities.CategorySkin, Description: "Rejuvenate your skin with premium products."},
		{ID: "s4", Name: "Gel Manicure", Price: 45, DurationMinutes: 45, Category: entities.CategoryNails, Description: "Long-lasting high-shine polish."},
		{ID: "s5", Name: "Swedish Massage", Price: 95, DurationMinutes: 60, Category: entities.CategoryMassage, Description: "Relaxation techniques for stress relief."},
		{ID: "s6", Name: "Bridal Makeup", Price: 250, DurationMinutes: 150, Category: entities.CategoryMakeup, Description: "Stunning look for your special day."},
	}
}

func seedProviders() []entities.Provider {
	services := seedServices()
	return []entities.Provider{
		{
			ID:           "1",
			Name:         "Lumina Beauty Studio",
			Address:      "123 Crystal Avenue, Downtown",
			Rating:       4.8,
			ReviewsCount: 128,
			Image:        "https://picsum.photos/seed/lumina/800/600",
			Services:     services[:4],
			OwnerID:      "owner1",
		},
		{
			ID:           "2",
			Name:         "The Gentry Barber",
			Address:      "45 Heritage Lane, Old Town",
			Rating:       4.9,
			ReviewsCount: 256,
			Image:        "https://picsum.photos/seed/barber/800/600",
			Services:     []entities.Service{services[0], services[4]},
			OwnerID:      "owner2",
		},
		{
			ID:           "3",
			Name:         "Velvet Skin & Spa",
			Address:      "88 Serenity Blvd, North Hills",
			Rating:       4.7,
			ReviewsCount: 89,
			Image:        "https://picsum.photos/seed/spa/800/600",
			Services:     []entities.Service{services[2], services[4], services[5]},
			OwnerID:      "owner1",
		},
	}
}
