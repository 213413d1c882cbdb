package entities

// Location reference data is read-only from this service's perspective: it is
// seeded out-of-band and only consulted to validate shipping selections.
//
// Storage model (DynamoDB):
//   - countries:   PK code
//   - departments: PK code, GSI country_code-index (PK: country_code)
//   - cities:      PK code, GSI department_code-index (PK: department_code)

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Department struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
}

type City struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	DepartmentCode string `json:"departmentCode"`
	DepartmentName string `json:"departmentName"`
}
