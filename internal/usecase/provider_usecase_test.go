package usecase

import (
	"context"
	"errors"
	"testing"

	"glow_go/internal/domain/entities"
	mock_interfaces "glow_go/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newProviderUseCaseWithMocks(t *testing.T) (*ProviderUseCase, *mock_interfaces.MockIProviderCatalog) {
	ctrl := gomock.NewController(t)
	catalog := mock_interfaces.NewMockIProviderCatalog(ctrl)
	return NewProviderUseCase(catalog), catalog
}

func TestProviderUseCase_ListProviders(t *testing.T) {
	uc, catalog := newProviderUseCaseWithMocks(t)
	catalog.EXPECT().Providers().Return([]entities.Provider{providerFixture()})

	got, err := uc.ListProviders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("unexpected providers: %+v", got)
	}
}

func TestProviderUseCase_GetProviderByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc, _ := newProviderUseCaseWithMocks(t)
		if _, err := uc.GetProviderByID(context.Background(), ""); !errors.Is(err, ErrInvalidProviderID) {
			t.Fatalf("expected ErrInvalidProviderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, catalog := newProviderUseCaseWithMocks(t)
		catalog.EXPECT().ProviderByID("99").Return(entities.Provider{}, false)

		if _, err := uc.GetProviderByID(context.Background(), "99"); !errors.Is(err, ErrProviderNotFound) {
			t.Fatalf("expected ErrProviderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, catalog := newProviderUseCaseWithMocks(t)
		catalog.EXPECT().ProviderByID("1").Return(providerFixture(), true)

		p, err := uc.GetProviderByID(context.Background(), "1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Lumina Beauty Studio" {
			t.Fatalf("unexpected provider: %+v", p)
		}
	})
}
