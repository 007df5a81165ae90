// AngelaMos | 2026
// dto.go

package initiative

import (
	"time"
)

type CreateTargetRequest struct {
	Name                string   `json:"target_name"                 validate:"required,min=1,max=200"`
	BaselineYear        int      `json:"baseline_year"               validate:"required,gte=1990,lte=2100"`
	TargetYear          int      `json:"target_year"                 validate:"required,gtfield=BaselineYear,lte=2100"`
	BaselineEmissionsKg float64  `json:"baseline_emissions_kg"       validate:"required,gt=0"`
	ReductionPercentage float64  `json:"target_reduction_percentage" validate:"required,gt=0,lte=100"`
	ScopeCoverage       []string `json:"scope_coverage"              validate:"required,min=1,dive,oneof=scope_1 scope_2 scope_3"`
}

type TargetResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"target_name"`
	BaselineYear        int       `json:"baseline_year"`
	TargetYear          int       `json:"target_year"`
	BaselineEmissionsKg float64   `json:"baseline_emissions_kg"`
	ReductionPercentage float64   `json:"target_reduction_percentage"`
	ScopeCoverage       []string  `json:"scope_coverage"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

type TargetProgress struct {
	TargetID            string  `json:"target_id"`
	TargetName          string  `json:"target_name"`
	BaselineEmissionsKg float64 `json:"baseline_emissions_kg"`
	TargetEmissionsKg   float64 `json:"target_emissions_kg"`
	CurrentEmissionsKg  float64 `json:"current_emissions_kg"`
	ProgressPercentage  float64 `json:"progress_percentage"`
	TargetYear          int     `json:"target_year"`
	OnTrack             bool    `json:"on_track"`
}

type CreateInitiativeRequest struct {
	Name               string    `json:"initiative_name"      validate:"required,min=1,max=200"`
	Description        string    `json:"description"          validate:"required,max=2000"`
	ImplementationCost float64   `json:"implementation_cost"  validate:"gte=0"`
	AnnualSavings      float64   `json:"annual_savings"       validate:"gte=0"`
	AnnualCO2Reduction float64   `json:"annual_co2_reduction" validate:"gte=0"`
	ImplementationDate time.Time `json:"implementation_date"  validate:"required"`
	Status             string    `json:"status"               validate:"omitempty,oneof=planned in_progress completed"`
}

type InitiativeResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"initiative_name"`
	Description        string    `json:"description"`
	ImplementationCost float64   `json:"implementation_cost"`
	AnnualSavings      float64   `json:"annual_savings"`
	AnnualCO2Reduction float64   `json:"annual_co2_reduction"`
	ROIPercentage      float64   `json:"roi_percentage"`
	ImplementationDate time.Time `json:"implementation_date"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type FinancialImpact struct {
	TotalCarbonInvestment   float64 `json:"total_carbon_investment"`
	AnnualCostSavings       float64 `json:"annual_cost_savings"`
	AnnualCO2Reduction      float64 `json:"annual_co2_reduction"`
	CurrentAnnualCarbonCost float64 `json:"current_annual_carbon_cost"`
	AnnualROIPercentage     float64 `json:"annual_roi_percentage"`
	PaybackPeriodYears      float64 `json:"payback_period_years"`
	CarbonReductionValue    float64 `json:"carbon_reduction_value"`
}

func toTargetResponse(t *Target) TargetResponse {
	return TargetResponse{
		ID:                  t.ID,
		Name:                t.Name,
		BaselineYear:        t.BaselineYear,
		TargetYear:          t.TargetYear,
		BaselineEmissionsKg: t.BaselineEmissionsKg,
		ReductionPercentage: t.ReductionPercentage,
		ScopeCoverage:       t.ScopeCoverage,
		Status:              t.Status,
		CreatedAt:           t.CreatedAt,
	}
}

func toInitiativeResponse(i *Initiative) InitiativeResponse {
	return InitiativeResponse{
		ID:                 i.ID,
		Name:               i.Name,
		Description:        i.Description,
		ImplementationCost: i.ImplementationCost,
		AnnualSavings:      i.AnnualSavings,
		AnnualCO2Reduction: i.AnnualCO2Reduction,
		ROIPercentage:      i.ROIPercentage,
		ImplementationDate: i.ImplementationDate,
		Status:             i.Status,
		CreatedAt:          i.CreatedAt,
	}
}
