// AngelaMos | 2026
// dto.go

package emission

import (
	"time"
)

type CreateSourceRequest struct {
	Name        string `json:"source_name" validate:"required,min=1,max=200"`
	SourceType  string `json:"source_type" validate:"required,min=1,max=100"`
	Scope       string `json:"scope"       validate:"required,oneof=scope_1 scope_2 scope_3"`
	Description string `json:"description" validate:"max=500"`
}

type SourceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"source_name"`
	SourceType  string    `json:"source_type"`
	Scope       string    `json:"scope"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateRecordRequest carries either a measured co2_equivalent_kg or a
// typed activity the calculator can derive one from.
type CreateRecordRequest struct {
	SourceID        string    `json:"source_id"         validate:"required,uuid"`
	PeriodStart     time.Time `json:"period_start"      validate:"required"`
	PeriodEnd       time.Time `json:"period_end"        validate:"required,gtfield=PeriodStart"`
	CO2EquivalentKg float64   `json:"co2_equivalent_kg" validate:"gte=0"`
	Activity        Activity  `json:"activity_data"`
	EmissionFactor  float64   `json:"emission_factor"   validate:"gte=0"`
	DataQuality     string    `json:"data_quality"      validate:"omitempty,oneof=estimated measured calculated"`
}

type RecordResponse struct {
	ID              string    `json:"id"`
	SourceID        string    `json:"source_id"`
	PeriodStart     time.Time `json:"period_start"`
	PeriodEnd       time.Time `json:"period_end"`
	CO2EquivalentKg float64   `json:"co2_equivalent_kg"`
	Activity        Activity  `json:"activity_data"`
	EmissionFactor  float64   `json:"emission_factor"`
	DataQuality     string    `json:"data_quality"`
	CreatedAt       time.Time `json:"created_at"`
}

type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}

type SummaryResponse struct {
	PeriodStart        time.Time          `json:"period_start"`
	PeriodEnd          time.Time          `json:"period_end"`
	TotalEmissionsKg   float64            `json:"total_emissions_kg"`
	ScopeBreakdown     map[string]float64 `json:"scope_breakdown"`
	SourceBreakdown    map[string]float64 `json:"source_breakdown"`
	EmissionsIntensity float64            `json:"emissions_intensity"`
}

type TrendPoint struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	EmissionsKg     float64 `json:"emissions_kg"`
	EmissionsTonnes float64 `json:"emissions_tonnes"`
}

type TopSource struct {
	SourceID       string  `db:"source_id"       json:"source_id"`
	SourceName     string  `db:"source_name"     json:"source_name"`
	SourceType     string  `db:"source_type"     json:"source_type"`
	Scope          string  `db:"scope"           json:"scope"`
	TotalEmissions float64 `db:"total_emissions" json:"total_emissions"`
	RecordCount    int     `db:"record_count"    json:"record_count"`
}

type CalculateElectricityRequest struct {
	KWhConsumed         float64 `json:"kwh_consumed"         validate:"required,gt=0"`
	Region              string  `json:"region"               validate:"omitempty,oneof=us_average renewable coal natural_gas"`
	RenewablePercentage float64 `json:"renewable_percentage" validate:"gte=0,lte=100"`
}

type CalculateFuelRequest struct {
	FuelType string  `json:"fuel_type" validate:"required,oneof=natural_gas gasoline diesel jet_fuel"`
	Quantity float64 `json:"quantity"  validate:"required,gt=0"`
	Unit     string  `json:"unit"      validate:"omitempty,oneof=liters kwh"`
}

type CalculateTravelRequest struct {
	Trips []Trip `json:"trips" validate:"required,min=1,dive"`
}

func toSourceResponse(s *Source) SourceResponse {
	return SourceResponse{
		ID:          s.ID,
		Name:        s.Name,
		SourceType:  s.SourceType,
		Scope:       s.Scope,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

func toRecordResponse(rec *Record) RecordResponse {
	return RecordResponse{
		ID:              rec.ID,
		SourceID:        rec.SourceID,
		PeriodStart:     rec.PeriodStart,
		PeriodEnd:       rec.PeriodEnd,
		CO2EquivalentKg: rec.CO2EquivalentKg,
		Activity:        rec.Activity,
		EmissionFactor:  rec.EmissionFactor,
		DataQuality:     rec.DataQuality,
		CreatedAt:       rec.CreatedAt,
	}
}
