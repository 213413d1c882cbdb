package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase/interfaces"
)

var (
	ErrMissingLocationFields = errors.New("countryCode, departmentCode and cityCode are required")
	ErrUnsupportedCountry    = errors.New("shipping is only supported for Colombia")
	ErrInvalidDepartment     = errors.New("invalid department for the selected country")
	ErrInvalidCity           = errors.New("invalid city for the selected department")
)

// IShippingUseCase validates a location selection and prices it.
type IShippingUseCase interface {
	CalculateQuote(ctx context.Context, query entities.ShippingQuoteQuery) (entities.ShippingQuote, error)
}

type ShippingUseCase struct {
	locations            interfaces.ILocationRepository
	pricing              interfaces.IShippingPricingProvider
	supportedCountryCode string
}

var _ IShippingUseCase = (*ShippingUseCase)(nil)

func NewShippingUseCase(locations interfaces.ILocationRepository, pricing interfaces.IShippingPricingProvider, supportedCountryCode string) *ShippingUseCase {
	code := strings.ToUpper(strings.TrimSpace(supportedCountryCode))
	if code == "" {
		code = "CO"
	}
	return &ShippingUseCase{locations: locations, pricing: pricing, supportedCountryCode: code}
}

// CalculateQuote resolves the selection against the catalog and delegates
// pricing to the configured provider. No caching: every call re-resolves and
// re-prices.
func (u *ShippingUseCase) CalculateQuote(ctx context.Context, query entities.ShippingQuoteQuery) (entities.ShippingQuote, error) {
	countryCode := strings.ToUpper(strings.TrimSpace(query.CountryCode))
	departmentCode := strings.TrimSpace(query.DepartmentCode)
	cityCode := strings.TrimSpace(query.CityCode)

	if countryCode == "" || departmentCode == "" || cityCode == "" {
		return entities.ShippingQuote{}, ErrMissingLocationFields
	}

	if countryCode != u.supportedCountryCode {
		log.Printf("[shipping][usecase] unsupported country country_code=%s", countryCode)
		return entities.ShippingQuote{}, ErrUnsupportedCountry
	}

	departments, err := u.locations.ListDepartments(ctx, countryCode)
	if err != nil {
		return entities.ShippingQuote{}, err
	}
	var department *entities.Department
	for i := range departments {
		if departments[i].Code == departmentCode {
			department = &departments[i]
			break
		}
	}
	if department == nil {
		log.Printf("[shipping][usecase] invalid department country_code=%s department_code=%s", countryCode, departmentCode)
		return entities.ShippingQuote{}, ErrInvalidDepartment
	}

	cities, err := u.locations.ListCities(ctx, departmentCode)
	if err != nil {
		return entities.ShippingQuote{}, err
	}
	var city *entities.City
	for i := range cities {
		if cities[i].Code == cityCode {
			city = &cities[i]
			break
		}
	}
	if city == nil {
		log.Printf("[shipping][usecase] invalid city department_code=%s city_code=%s", departmentCode, cityCode)
		return entities.ShippingQuote{}, ErrInvalidCity
	}

	pricing, err := u.pricing.GetQuote(ctx, entities.ShippingQuoteQuery{
		CountryCode:    countryCode,
		DepartmentCode: departmentCode,
		CityCode:       cityCode,
	})
	if err != nil {
		return entities.ShippingQuote{}, err
	}

	return entities.ShippingQuote{
		Country:      entities.LocationRef{Code: countryCode, Name: department.CountryName},
		Department:   entities.LocationRef{Code: department.Code, Name: department.Name},
		City:         entities.LocationRef{Code: city.Code, Name: city.Name},
		Amount:       pricing.Amount,
		Currency:     pricing.Currency,
		Provider:     pricing.Provider,
		CalculatedAt: time.Now().UTC(),
	}, nil
}
