package repository

import (
	"context"
	"sort"

	"atuestampa_api/internal/domain/entities"
	"atuestampa_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCountriesTableName   = "countries"
	defaultDepartmentsTableName = "departments"
	defaultCitiesTableName      = "cities"

	departmentsCountryCodeIndex = "country_code-index"
	citiesDepartmentCodeIndex   = "department_code-index"
)

type countryItem struct {
	Code string `dynamodbav:"code"`
	Name string `dynamodbav:"name"`
}

type departmentItem struct {
	Code        string `dynamodbav:"code"`
	Name        string `dynamodbav:"name"`
	CountryCode string `dynamodbav:"country_code"`
	CountryName string `dynamodbav:"country_name"`
}

type cityItem struct {
	Code           string `dynamodbav:"code"`
	Name           string `dynamodbav:"name"`
	DepartmentCode string `dynamodbav:"department_code"`
	DepartmentName string `dynamodbav:"department_name"`
}

// LocationDynamoRepository reads the seeded location catalog.
//
// Table requirements:
//   - countries:   PK code
//   - departments: PK code, GSI country_code-index (PK: country_code)
//   - cities:      PK code, GSI department_code-index (PK: department_code)
type LocationDynamoRepository struct {
	ddb              *dynamodb.Client
	countriesTable   string
	departmentsTable string
	citiesTable      string
}

var _ interfaces.ILocationRepository = (*LocationDynamoRepository)(nil)

func NewLocationDynamoRepository(ddb *dynamodb.Client) *LocationDynamoRepository {
	return &LocationDynamoRepository{
		ddb:              ddb,
		countriesTable:   getenvDefault("COUNTRIES_TABLE", defaultCountriesTableName),
		departmentsTable: getenvDefault("DEPARTMENTS_TABLE", defaultDepartmentsTableName),
		citiesTable:      getenvDefault("CITIES_TABLE", defaultCitiesTableName),
	}
}

func (r *LocationDynamoRepository) ListCountries(ctx context.Context) ([]entities.Country, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.countriesTable),
	})
	if err != nil {
		return nil, err
	}

	countries := make([]entities.Country, 0, len(out.Items))
	for _, raw := range out.Items {
		var it countryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		countries = append(countries, entities.Country{Code: it.Code, Name: it.Name})
	}
	sort.Slice(countries, func(i, j int) bool { return countries[i].Name < countries[j].Name })
	return countries, nil
}

func (r *LocationDynamoRepository) ListDepartments(ctx context.Context, countryCode string) ([]entities.Department, error) {
	var raws []map[string]types.AttributeValue

	if countryCode == "" {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName: aws.String(r.departmentsTable),
		})
		if err != nil {
			return nil, err
		}
		raws = out.Items
	} else {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.departmentsTable),
			IndexName:              aws.String(departmentsCountryCodeIndex),
			KeyConditionExpression: aws.String("country_code = :cc"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cc": &types.AttributeValueMemberS{Value: countryCode},
			},
		})
		if err != nil {
			return nil, err
		}
		raws = out.Items
	}

	departments := make([]entities.Department, 0, len(raws))
	for _, raw := range raws {
		var it departmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		departments = append(departments, entities.Department{
			Code:        it.Code,
			Name:        it.Name,
			CountryCode: it.CountryCode,
			CountryName: it.CountryName,
		})
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].Name < departments[j].Name })
	return departments, nil
}

func (r *LocationDynamoRepository) ListCities(ctx context.Context, departmentCode string) ([]entities.City, error) {
	var raws []map[string]types.AttributeValue

	if departmentCode == "" {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName: aws.String(r.citiesTable),
		})
		if err != nil {
			return nil, err
		}
		raws = out.Items
	} else {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.citiesTable),
			IndexName:              aws.String(citiesDepartmentCodeIndex),
			KeyConditionExpression: aws.String("department_code = :dc"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":dc": &types.AttributeValueMemberS{Value: departmentCode},
			},
		})
		if err != nil {
			return nil, err
		}
		raws = out.Items
	}

	cities := make([]entities.City, 0, len(raws))
	for _, raw := range raws {
		var it cityItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		cities = append(cities, entities.City{
			Code:           it.Code,
			Name:           it.Name,
			DepartmentCode: it.DepartmentCode,
			DepartmentName: it.DepartmentName,
		})
	}
	sort.Slice(cities, func(i, j int) bool { return cities[i].Name < cities[j].Name })
	return cities, nil
}
