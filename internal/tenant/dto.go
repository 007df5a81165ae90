// AngelaMos | 2026
// dto.go

package tenant

import (
	"time"
)

type UpdateProfileRequest struct {
	Name          *string  `json:"name"                  validate:"omitempty,min=1,max=200"`
	Industry      *string  `json:"industry"              validate:"omitempty,oneof=saas fintech ecommerce manufacturing healthcare consulting"`
	EmployeeCount *int     `json:"employee_count"        validate:"omitempty,gt=0"`
	AnnualRevenue *float64 `json:"annual_revenue"        validate:"omitempty,gte=0"`
	Headquarters  *string  `json:"headquarters_location" validate:"omitempty,max=200"`
	Compliance    []string `json:"compliance_standards"  validate:"omitempty,dive,oneof=eu_csrd sec_climate ghg_protocol tcfd"`
}

type ProfileResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Domain        string    `json:"domain"`
	Plan          string    `json:"plan"`
	Industry      string    `json:"industry"`
	EmployeeCount int       `json:"employee_count"`
	AnnualRevenue float64   `json:"annual_revenue"`
	Headquarters  string    `json:"headquarters_location"`
	Compliance    []string  `json:"compliance_standards"`
	MaxUsers      int       `json:"max_users"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type StatsResponse struct {
	TotalUsers        int `json:"total_users"`
	TotalEmissions    int `json:"total_emissions"`
	TotalSources      int `json:"total_sources"`
	TotalSuppliers    int `json:"total_suppliers"`
	TotalTargets      int `json:"total_targets"`
	TotalInitiatives  int `json:"total_initiatives"`
	TotalCertificates int `json:"total_certificates"`
}

func toProfileResponse(t *Tenant) ProfileResponse {
	return ProfileResponse{
		ID:            t.ID,
		Name:          t.Name,
		Domain:        t.Domain,
		Plan:          t.Plan,
		Industry:      t.Industry,
		EmployeeCount: t.EmployeeCount,
		AnnualRevenue: t.AnnualRevenue,
		Headquarters:  t.Headquarters,
		Compliance:    t.Compliance,
		MaxUsers:      t.MaxUsers,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
