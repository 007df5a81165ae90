// AngelaMos | 2026
// calculator.go

package emission

import (
	"strings"
)

// EPA and DEFRA emission factors, kg CO2eq per unit.
var emissionFactors = map[string]float64{
	"electricity_us_average":  0.385,
	"electricity_renewable":   0.012,
	"electricity_coal":        0.820,
	"electricity_natural_gas": 0.350,

	"natural_gas": 0.185,
	"gasoline":    2.31,
	"diesel":      2.68,
	"jet_fuel":    2.52,

	"business_travel_short_haul":  0.158,
	"business_travel_medium_haul": 0.102,
	"business_travel_long_haul":   0.089,
	"car_petrol":                  0.168,
	"car_diesel":                  0.165,
	"car_electric":                0.047,
	"train":                       0.033,
	"bus":                         0.082,

	"office_paper":   0.9,
	"waste_landfill": 0.94,
	"waste_recycled": 0.21,
	"water_supply":   0.149,
	"server_cloud":   0.5,
}

// Annual tonnes CO2eq per employee.
var industryBenchmarks = map[string]float64{
	"saas":          4.2,
	"fintech":       5.8,
	"ecommerce":     6.5,
	"manufacturing": 15.3,
	"healthcare":    8.7,
	"consulting":    3.9,
}

const (
	defaultBenchmarkPerEmployee = 6.0
	defaultRecyclingRate        = 0.3
	shortHaulKm                 = 500.0
	mediumHaulKm                = 1500.0
)

const (
	ScopeOne   = "scope_1"
	ScopeTwo   = "scope_2"
	ScopeThree = "scope_3"
)

type Calculator struct {
	pricePerTonne float64
}

func NewCalculator(pricePerTonne float64) *Calculator {
	return &Calculator{pricePerTonne: pricePerTonne}
}

type ElectricityResult struct {
	CO2EquivalentKg     float64 `json:"co2_equivalent_kg"`
	Scope               string  `json:"scope"`
	KWhConsumed         float64 `json:"kwh_consumed"`
	EmissionFactor      float64 `json:"emission_factor"`
	GridFactor          float64 `json:"grid_factor"`
	RenewablePercentage float64 `json:"renewable_percentage"`
}

// Electricity blends the regional grid factor with the renewable factor
// weighted by the renewable share of consumption.
func (c *Calculator) Electricity(
	kwhConsumed float64,
	region string,
	renewablePercentage float64,
) ElectricityResult {
	gridFactor, ok := emissionFactors["electricity_"+region]
	if !ok {
		gridFactor = emissionFactors["electricity_us_average"]
	}
	renewableFactor := emissionFactors["electricity_renewable"]

	share := renewablePercentage / 100
	effectiveFactor := gridFactor*(1-share) + renewableFactor*share

	return ElectricityResult{
		CO2EquivalentKg:     kwhConsumed * effectiveFactor,
		Scope:               ScopeTwo,
		KWhConsumed:         kwhConsumed,
		EmissionFactor:      effectiveFactor,
		GridFactor:          gridFactor,
		RenewablePercentage: renewablePercentage,
	}
}

type FuelResult struct {
	CO2EquivalentKg float64 `json:"co2_equivalent_kg"`
	Scope           string  `json:"scope"`
	FuelType        string  `json:"fuel_type"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	EmissionFactor  float64 `json:"emission_factor"`
}

func (c *Calculator) Fuel(fuelType string, quantity float64, unit string) FuelResult {
	if unit == "" {
		unit = "liters"
	}

	factor := emissionFactors[fuelType]

	return FuelResult{
		CO2EquivalentKg: quantity * factor,
		Scope:           ScopeOne,
		FuelType:        fuelType,
		Quantity:        quantity,
		Unit:            unit,
		EmissionFactor:  factor,
	}
}

type TripResult struct {
	TransportMode  string  `json:"transport_mode"`
	DistanceKm     float64 `json:"distance_km"`
	Passengers     int     `json:"passengers"`
	EmissionFactor float64 `json:"emission_factor"`
	TripEmissions  float64 `json:"trip_emissions"`
}

type TravelResult struct {
	CO2EquivalentKg float64      `json:"co2_equivalent_kg"`
	Scope           string       `json:"scope"`
	Trips           []TripResult `json:"trips"`
}

// Travel applies haul-dependent factors to flights and per-mode factors
// otherwise, dividing each trip's emissions across its passengers.
func (c *Calculator) Travel(trips []Trip) TravelResult {
	result := TravelResult{
		Scope: ScopeThree,
		Trips: make([]TripResult, 0, len(trips)),
	}

	for _, trip := range trips {
		passengers := trip.Passengers
		if passengers < 1 {
			passengers = 1
		}

		var factor float64
		switch {
		case strings.Contains(trip.TransportMode, "flight"),
			strings.Contains(trip.TransportMode, "business_travel"):
			switch {
			case trip.DistanceKm < shortHaulKm:
				factor = emissionFactors["business_travel_short_haul"]
			case trip.DistanceKm < mediumHaulKm:
				factor = emissionFactors["business_travel_medium_haul"]
			default:
				factor = emissionFactors["business_travel_long_haul"]
			}
		default:
			var ok bool
			factor, ok = emissionFactors[trip.TransportMode]
			if !ok {
				factor = emissionFactors["car_petrol"]
			}
		}

		tripEmissions := trip.DistanceKm * factor / float64(passengers)
		result.CO2EquivalentKg += tripEmissions

		result.Trips = append(result.Trips, TripResult{
			TransportMode:  trip.TransportMode,
			DistanceKm:     trip.DistanceKm,
			Passengers:     passengers,
			EmissionFactor: factor,
			TripEmissions:  tripEmissions,
		})
	}

	return result
}

type OfficeInput struct {
	PaperKg       *float64 `json:"paper_kg"       validate:"omitempty,gte=0"`
	WasteKg       *float64 `json:"waste_kg"       validate:"omitempty,gte=0"`
	RecyclingRate *float64 `json:"recycling_rate" validate:"omitempty,gte=0,lte=1"`
	WaterM3       *float64 `json:"water_m3"       validate:"omitempty,gte=0"`
}

type OfficeResult struct {
	CO2EquivalentKg float64  `json:"co2_equivalent_kg"`
	Scope           string   `json:"scope"`
	PaperEmissions  *float64 `json:"paper_emissions,omitempty"`
	WasteEmissions  *float64 `json:"waste_emissions,omitempty"`
	WaterEmissions  *float64 `json:"water_emissions,omitempty"`
}

func (c *Calculator) Office(input OfficeInput) OfficeResult {
	var result OfficeResult
	result.Scope = ScopeThree

	if input.PaperKg != nil {
		paper := *input.PaperKg * emissionFactors["office_paper"]
		result.PaperEmissions = &paper
		result.CO2EquivalentKg += paper
	}

	if input.WasteKg != nil {
		rate := defaultRecyclingRate
		if input.RecyclingRate != nil {
			rate = *input.RecyclingRate
		}

		landfill := *input.WasteKg * (1 - rate) * emissionFactors["waste_landfill"]
		recycled := *input.WasteKg * rate * emissionFactors["waste_recycled"]
		waste := landfill + recycled
		result.WasteEmissions = &waste
		result.CO2EquivalentKg += waste
	}

	if input.WaterM3 != nil {
		water := *input.WaterM3 * emissionFactors["water_supply"]
		result.WaterEmissions = &water
		result.CO2EquivalentKg += water
	}

	return result
}

type BenchmarkResult struct {
	Industry                   string  `json:"industry"`
	BenchmarkTonnesPerEmployee float64 `json:"benchmark_tonnes_per_employee"`
	TotalBenchmarkTonnes       float64 `json:"total_benchmark_tonnes"`
	EmployeeCount              int     `json:"employee_count"`
}

func (c *Calculator) Benchmark(industry string, employeeCount int) BenchmarkResult {
	perEmployee, ok := industryBenchmarks[strings.ToLower(industry)]
	if !ok {
		perEmployee = defaultBenchmarkPerEmployee
	}

	return BenchmarkResult{
		Industry:                   industry,
		BenchmarkTonnesPerEmployee: perEmployee,
		TotalBenchmarkTonnes:       perEmployee * float64(employeeCount),
		EmployeeCount:              employeeCount,
	}
}

type CarbonCost struct {
	CO2Tonnes           float64 `json:"co2_tonnes"`
	CarbonPricePerTonne float64 `json:"carbon_price_per_tonne"`
	TotalCarbonCost     float64 `json:"total_carbon_cost"`
}

func (c *Calculator) CarbonCost(co2Kg float64) CarbonCost {
	tonnes := co2Kg / 1000

	return CarbonCost{
		CO2Tonnes:           tonnes,
		CarbonPricePerTonne: c.pricePerTonne,
		TotalCarbonCost:     tonnes * c.pricePerTonne,
	}
}

type ReductionValue struct {
	CO2ReductionTonnes  float64 `json:"co2_reduction_tonnes"`
	CarbonValue         float64 `json:"carbon_value"`
	EnergyCostSavings   float64 `json:"energy_cost_savings"`
	TotalFinancialValue float64 `json:"total_financial_value"`
}

func (c *Calculator) ReductionValue(
	reductionKg, energyCostSavings float64,
) ReductionValue {
	cost := c.CarbonCost(reductionKg)

	return ReductionValue{
		CO2ReductionTonnes:  cost.CO2Tonnes,
		CarbonValue:         cost.TotalCarbonCost,
		EnergyCostSavings:   energyCostSavings,
		TotalFinancialValue: cost.TotalCarbonCost + energyCostSavings,
	}
}

// ForActivity derives emissions and the effective factor from a typed
// activity payload. Other-typed activities carry no derivable quantity
// and return zeros; callers supply the measured value instead.
func (c *Calculator) ForActivity(a Activity) (co2Kg, factor float64, scope string) {
	switch a.Type {
	case ActivityElectricity:
		r := c.Electricity(
			a.Electricity.KWhConsumed,
			a.Electricity.Region,
			a.Electricity.RenewablePercentage,
		)
		return r.CO2EquivalentKg, r.EmissionFactor, r.Scope
	case ActivityFuel:
		r := c.Fuel(a.Fuel.FuelType, a.Fuel.Quantity, a.Fuel.Unit)
		return r.CO2EquivalentKg, r.EmissionFactor, r.Scope
	case ActivityTravel:
		r := c.Travel(a.Travel.Trips)
		var avgFactor float64
		if len(r.Trips) > 0 {
			for _, t := range r.Trips {
				avgFactor += t.EmissionFactor
			}
			avgFactor /= float64(len(r.Trips))
		}
		return r.CO2EquivalentKg, avgFactor, r.Scope
	default:
		return 0, 0, ScopeThree
	}
}
