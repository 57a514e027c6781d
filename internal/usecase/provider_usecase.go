package usecase

import (
	"context"
	"errors"

	"glow_go/internal/domain/entities"
	"glow_go/internal/usecase/interfaces"
)

var ErrProviderNotFound = errors.New("provider not found")

// IProviderUseCase exposes the read-only provider directory.

type IProviderUseCase interface {
	ListProviders(ctx context.Context) ([]entities.Provider, error)
	GetProviderByID(ctx context.Context, id string) (entities.Provider, error)
}

type ProviderUseCase struct {
	catalog interfaces.IProviderCatalog
}

var _ IProviderUseCase = (*ProviderUseCase)(nil)

func NewProviderUseCase(catalog interfaces.IProviderCatalog) *ProviderUseCase {
	return &ProviderUseCase{catalog: catalog}
}

func (u *ProviderUseCase) ListProviders(_ context.Context) ([]entities.Provider, error) {
	return u.catalog.Providers(), nil
}

func (u *ProviderUseCase) GetProviderByID(_ context.Context, id string) (entities.Provider, error) {
	if id == "" {
		return entities.Provider{}, ErrInvalidProviderID
	}
	p, ok := u.catalog.ProviderByID(id)
	if !ok {
		return entities.Provider{}, ErrProviderNotFound
	}
	return p, nil
}
