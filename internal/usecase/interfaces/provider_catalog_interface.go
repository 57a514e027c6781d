package interfaces

import (
	"glow_go/internal/domain/entities"
)

// IProviderCatalog abstracts the preloaded provider/service reference data.
//
// The catalog is read-only input to the lifecycle engine; there is no
// mutation API.

type IProviderCatalog interface {
	Providers() []entities.Provider
	ProviderByID(id string) (entities.Provider, bool)
}
