package usecase

import (
	"context"
	"strings"

	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase/interfaces"
)

// ILocationUseCase exposes the read-only location catalog to the HTTP layer.
type ILocationUseCase interface {
	ListCountries(ctx context.Context) ([]entities.Country, error)
	ListDepartments(ctx context.Context, countryCode string) ([]entities.Department, error)
	ListCities(ctx context.Context, departmentCode string) ([]entities.City, error)
}

type LocationUseCase struct {
	repo interfaces.ILocationRepository
}

var _ ILocationUseCase = (*LocationUseCase)(nil)

func NewLocationUseCase(repo interfaces.ILocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

func (u *LocationUseCase) ListCountries(ctx context.Context) ([]entities.Country, error) {
	return u.repo.ListCountries(ctx)
}

func (u *LocationUseCase) ListDepartments(ctx context.Context, countryCode string) ([]entities.Department, error) {
	return u.repo.ListDepartments(ctx, strings.ToUpper(strings.TrimSpace(countryCode)))
}

func (u *LocationUseCase) ListCities(ctx context.Context, departmentCode string) ([]entities.City, error) {
	return u.repo.ListCities(ctx, strings.TrimSpace(departmentCode))
}
