package entities

// Provider is a saloon offering a fixed, ordered catalog of services.
//
// Reference data only: there is no provider-editing flow, so the struct has no
// mutators. OwnerID links the saloon to the user account that manages it.

type Provider struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Rating       float64   `json:"rating"`
	ReviewsCount int       `json:"reviews_count"`
	Image        string    `json:"image"`
	Services     []Service `json:"services"`
	OwnerID      string    `json:"owner_id"`
}

// ServiceByID resolves a service from the provider's own catalog.
func (p Provider) ServiceByID(id string) (Service, bool) {
	for _, s := range p.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
