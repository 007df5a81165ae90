// AngelaMos | 2026
// dto.go

package supplier

import (
	"time"
)

type CreateSupplierRequest struct {
	Name             string  `json:"supplier_name"     validate:"required,min=1,max=200"`
	Industry         string  `json:"industry"          validate:"required,max=100"`
	Location         string  `json:"location"          validate:"max=200"`
	ContactEmail     string  `json:"contact_email"     validate:"required,email,max=255"`
	AnnualRevenue    float64 `json:"annual_revenue"    validate:"gte=0"`
	EmployeeCount    int     `json:"employee_count"    validate:"gte=0"`
	CarbonScore      float64 `json:"carbon_score"      validate:"gte=0,lte=100"`
	PartnershipLevel string  `json:"partnership_level" validate:"omitempty,oneof=basic preferred strategic"`
}

type SupplierResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"supplier_name"`
	Industry           string    `json:"industry"`
	Location           string    `json:"location"`
	ContactEmail       string    `json:"contact_email"`
	AnnualRevenue      float64   `json:"annual_revenue"`
	EmployeeCount      int       `json:"employee_count"`
	CarbonScore        float64   `json:"carbon_score"`
	VerificationStatus string    `json:"verification_status"`
	PartnershipLevel   string    `json:"partnership_level"`
	CreatedAt          time.Time `json:"created_at"`
}

type CreateChainEmissionRequest struct {
	SupplierID      string    `json:"supplier_id"            validate:"required,uuid"`
	EmissionType    string    `json:"emission_type"          validate:"required,oneof=upstream downstream"`
	Scope           string    `json:"scope"                  validate:"required,oneof=scope_1 scope_2 scope_3"`
	CO2EquivalentKg float64   `json:"co2_equivalent_kg"      validate:"required,gt=0"`
	Description     string    `json:"activity_description"   validate:"required,max=500"`
	PeriodStart     time.Time `json:"reporting_period_start" validate:"required"`
	PeriodEnd       time.Time `json:"reporting_period_end"   validate:"required,gtfield=PeriodStart"`
	DataQuality     string    `json:"data_quality"           validate:"omitempty,oneof=estimated measured calculated"`
}

type ChainEmissionResponse struct {
	ID                string    `json:"id"`
	SupplierID        string    `json:"supplier_id"`
	EmissionType      string    `json:"emission_type"`
	Scope             string    `json:"scope"`
	CO2EquivalentKg   float64   `json:"co2_equivalent_kg"`
	Description       string    `json:"activity_description"`
	PeriodStart       time.Time `json:"reporting_period_start"`
	PeriodEnd         time.Time `json:"reporting_period_end"`
	DataQuality       string    `json:"data_quality"`
	VerificationLevel string    `json:"verification_level"`
	CreatedAt         time.Time `json:"created_at"`
}

type CreateChainTargetRequest struct {
	Name                   string   `json:"target_name"             validate:"required,min=1,max=200"`
	BaselineYear           int      `json:"baseline_year"           validate:"required,gte=1990,lte=2100"`
	TargetYear             int      `json:"target_year"             validate:"required,gtfield=BaselineYear,lte=2100"`
	ReductionPercentage    float64  `json:"reduction_percentage"    validate:"required,gt=0,lte=100"`
	ScopeCoverage          []string `json:"scope_coverage"          validate:"required,min=1,dive,oneof=scope_1 scope_2 scope_3"`
	ParticipatingSuppliers []string `json:"participating_suppliers" validate:"omitempty,dive,uuid"`
}

type ChainTargetResponse struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"target_name"`
	TargetType             string    `json:"target_type"`
	BaselineYear           int       `json:"baseline_year"`
	TargetYear             int       `json:"target_year"`
	ReductionPercentage    float64   `json:"reduction_percentage"`
	ScopeCoverage          []string  `json:"scope_coverage"`
	ParticipatingSuppliers []string  `json:"participating_suppliers"`
	ProgressPercentage     float64   `json:"progress_percentage"`
	Status                 string    `json:"status"`
	CreatedAt              time.Time `json:"created_at"`
}

type TopEmitter struct {
	SupplierID     string  `db:"supplier_id"     json:"supplier_id"`
	SupplierName   string  `db:"supplier_name"   json:"supplier_name"`
	TotalEmissions float64 `db:"total_emissions" json:"total_emissions"`
	RecordCount    int     `db:"record_count"    json:"record_count"`
}

type DashboardResponse struct {
	SupplierCount         int          `json:"supplier_count"`
	UpstreamEmissionsKg   float64      `json:"upstream_emissions_kg"`
	DownstreamEmissionsKg float64      `json:"downstream_emissions_kg"`
	TotalEmissionsKg      float64      `json:"total_emissions_kg"`
	AverageCarbonScore    float64      `json:"average_carbon_score"`
	TopEmitters           []TopEmitter `json:"top_emitters"`
}

func toSupplierResponse(s *Supplier) SupplierResponse {
	return SupplierResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Industry:           s.Industry,
		Location:           s.Location,
		ContactEmail:       s.ContactEmail,
		AnnualRevenue:      s.AnnualRevenue,
		EmployeeCount:      s.EmployeeCount,
		CarbonScore:        s.CarbonScore,
		VerificationStatus: s.VerificationStatus,
		PartnershipLevel:   s.PartnershipLevel,
		CreatedAt:          s.CreatedAt,
	}
}

func toChainEmissionResponse(e *ChainEmission) ChainEmissionResponse {
	return ChainEmissionResponse{
		ID:                e.ID,
		SupplierID:        e.SupplierID,
		EmissionType:      e.EmissionType,
		Scope:             e.Scope,
		CO2EquivalentKg:   e.CO2EquivalentKg,
		Description:       e.Description,
		PeriodStart:       e.PeriodStart,
		PeriodEnd:         e.PeriodEnd,
		DataQuality:       e.DataQuality,
		VerificationLevel: e.VerificationLevel,
		CreatedAt:         e.CreatedAt,
	}
}

func toChainTargetResponse(t *ChainTarget) ChainTargetResponse {
	return ChainTargetResponse{
		ID:                     t.ID,
		Name:                   t.Name,
		TargetType:             t.TargetType,
		BaselineYear:           t.BaselineYear,
		TargetYear:             t.TargetYear,
		ReductionPercentage:    t.ReductionPercentage,
		ScopeCoverage:          t.ScopeCoverage,
		ParticipatingSuppliers: t.ParticipatingSuppliers,
		ProgressPercentage:     t.ProgressPercentage,
		Status:                 t.Status,
		CreatedAt:              t.CreatedAt,
	}
}
