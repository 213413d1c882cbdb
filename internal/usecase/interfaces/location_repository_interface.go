package interfaces

import (
	"context"

	"atuestampa_api/internal/domain/entities"
)

// ILocationRepository abstracts the read-only location catalog.
//
// An empty countryCode/departmentCode lists the whole table; a non-empty one
// scopes the listing to that parent.
type ILocationRepository interface {
	ListCountries(ctx context.Context) ([]entities.Country, error)
	ListDepartments(ctx context.Context, countryCode string) ([]entities.Department, error)
	ListCities(ctx context.Context, departmentCode string) ([]entities.City, error)
}
