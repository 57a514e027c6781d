package response

import (
	"glow_go/internal/domain/entities"
)

type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
}

type ProviderResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Address      string            `json:"address"`
	Rating       float64           `json:"rating"`
	ReviewsCount int               `json:"reviews_count"`
	Image        string            `json:"image"`
	Services     []ServiceResponse `json:"services"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Category:        string(s.Category),
		Description:     s.Description,
	}
}

func FromProvider(p entities.Provider) ProviderResponse {
	services := make([]ServiceResponse, 0, len(p.Services))
	for _, s := range p.Services {
		services = append(services, FromService(s))
	}
	return ProviderResponse{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		Rating:       p.Rating,
		ReviewsCount: p.ReviewsCount,
		Image:        p.Image,
		Services:     services,
	}
}

func FromProviders(ps []entities.Provider) []ProviderResponse {
	out := make([]ProviderResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProvider(p))
	}
	return out
}
