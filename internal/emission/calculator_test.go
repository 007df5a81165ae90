// AngelaMos | 2026
// calculator_test.go

package emission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElectricity_BlendsRenewableShare(t *testing.T) {
	calc := NewCalculator(50)

	result := calc.Electricity(1000, "us_average", 40)

	// 60% grid at 0.385 plus 40% renewable at 0.012.
	wantFactor := 0.385*0.6 + 0.012*0.4
	assert.InDelta(t, wantFactor, result.EmissionFactor, 1e-9)
	assert.InDelta(t, 1000*wantFactor, result.CO2EquivalentKg, 1e-9)
	assert.Equal(t, ScopeTwo, result.Scope)
	assert.InDelta(t, 0.385, result.GridFactor, 1e-9)
}

func TestElectricity_UnknownRegionFallsBackToUSAverage(t *testing.T) {
	calc := NewCalculator(50)

	result := calc.Electricity(100, "atlantis", 0)

	assert.InDelta(t, 0.385, result.GridFactor, 1e-9)
	assert.InDelta(t, 38.5, result.CO2EquivalentKg, 1e-9)
}

func TestElectricity_FullyRenewable(t *testing.T) {
	calc := NewCalculator(50)

	result := calc.Electricity(1000, "coal", 100)

	assert.InDelta(t, 0.012, result.EmissionFactor, 1e-9)
	assert.InDelta(t, 12.0, result.CO2EquivalentKg, 1e-9)
}

func TestFuel_KnownTypes(t *testing.T) {
	calc := NewCalculator(50)

	diesel := calc.Fuel("diesel", 100, "liters")
	assert.InDelta(t, 268.0, diesel.CO2EquivalentKg, 1e-9)
	assert.Equal(t, ScopeOne, diesel.Scope)

	gas := calc.Fuel("natural_gas", 500, "")
	assert.InDelta(t, 92.5, gas.CO2EquivalentKg, 1e-9)
	assert.Equal(t, "liters", gas.Unit)
}

func TestTravel_HaulSelectionForFlights(t *testing.T) {
	calc := NewCalculator(50)

	result := calc.Travel([]Trip{
		{TransportMode: "flight", DistanceKm: 400, Passengers: 1},
		{TransportMode: "flight", DistanceKm: 1000, Passengers: 1},
		{TransportMode: "flight", DistanceKm: 6000, Passengers: 1},
	})

	require.Len(t, result.Trips, 3)
	assert.InDelta(t, 0.158, result.Trips[0].EmissionFactor, 1e-9)
	assert.InDelta(t, 0.102, result.Trips[1].EmissionFactor, 1e-9)
	assert.InDelta(t, 0.089, result.Trips[2].EmissionFactor, 1e-9)

	want := 400*0.158 + 1000*0.102 + 6000*0.089
	assert.InDelta(t, want, result.CO2EquivalentKg, 1e-9)
	assert.Equal(t, ScopeThree, result.Scope)
}

func TestTravel_DividesAcrossPassengers(t *testing.T) {
	calc := NewCalculator(50)

	result := calc.Travel([]Trip{
		{TransportMode: "car_petrol", DistanceKm: 300, Passengers: 3},
	})

	require.Len(t, result.Trips, 1)
	assert.InDelta(t, 300*0.168/3, result.CO2EquivalentKg, 1e-9)
}

func TestTravel_UnknownModeFallsBackToPetrolCar(t *testing.T) {
	calc := NewCalculator(50)

	result := calc.Travel([]Trip{
		{TransportMode: "rickshaw", DistanceKm: 10},
	})

	require.Len(t, result.Trips, 1)
	assert.InDelta(t, 0.168, result.Trips[0].EmissionFactor, 1e-9)
	// Zero passengers is treated as one.
	assert.Equal(t, 1, result.Trips[0].Passengers)
}

func TestOffice_WasteSplitsByRecyclingRate(t *testing.T) {
	calc := NewCalculator(50)
	waste := 100.0
	rate := 0.5

	result := calc.Office(OfficeInput{WasteKg: &waste, RecyclingRate: &rate})

	require.NotNil(t, result.WasteEmissions)
	want := 100*0.5*0.94 + 100*0.5*0.21
	assert.InDelta(t, want, *result.WasteEmissions, 1e-9)
	assert.InDelta(t, want, result.CO2EquivalentKg, 1e-9)
	assert.Nil(t, result.PaperEmissions)
	assert.Nil(t, result.WaterEmissions)
}

func TestOffice_DefaultRecyclingRate(t *testing.T) {
	calc := NewCalculator(50)
	waste := 100.0

	result := calc.Office(OfficeInput{WasteKg: &waste})

	require.NotNil(t, result.WasteEmissions)
	want := 100*0.7*0.94 + 100*0.3*0.21
	assert.InDelta(t, want, *result.WasteEmissions, 1e-9)
}

func TestOffice_SumsAllComponents(t *testing.T) {
	calc := NewCalculator(50)
	paper := 10.0
	water := 20.0

	result := calc.Office(OfficeInput{PaperKg: &paper, WaterM3: &water})

	require.NotNil(t, result.PaperEmissions)
	require.NotNil(t, result.WaterEmissions)
	assert.InDelta(t, 9.0, *result.PaperEmissions, 1e-9)
	assert.InDelta(t, 20*0.149, *result.WaterEmissions, 1e-9)
	assert.InDelta(t, 9.0+20*0.149, result.CO2EquivalentKg, 1e-9)
}

func TestBenchmark_KnownIndustry(t *testing.T) {
	calc := NewCalculator(50)

	result := calc.Benchmark("Manufacturing", 100)

	assert.InDelta(t, 15.3, result.BenchmarkTonnesPerEmployee, 1e-9)
	assert.InDelta(t, 1530.0, result.TotalBenchmarkTonnes, 1e-9)
}

func TestBenchmark_UnknownIndustryUsesDefault(t *testing.T) {
	calc := NewCalculator(50)

	result := calc.Benchmark("agriculture", 10)

	assert.InDelta(t, 6.0, result.BenchmarkTonnesPerEmployee, 1e-9)
	assert.InDelta(t, 60.0, result.TotalBenchmarkTonnes, 1e-9)
}

func TestCarbonCost(t *testing.T) {
	calc := NewCalculator(50)

	cost := calc.CarbonCost(2500)

	assert.InDelta(t, 2.5, cost.CO2Tonnes, 1e-9)
	assert.InDelta(t, 125.0, cost.TotalCarbonCost, 1e-9)
	assert.InDelta(t, 50.0, cost.CarbonPricePerTonne, 1e-9)
}

func TestReductionValue_AddsEnergySavings(t *testing.T) {
	calc := NewCalculator(80)

	value := calc.ReductionValue(10_000, 1200)

	assert.InDelta(t, 10.0, value.CO2ReductionTonnes, 1e-9)
	assert.InDelta(t, 800.0, value.CarbonValue, 1e-9)
	assert.InDelta(t, 2000.0, value.TotalFinancialValue, 1e-9)
}

func TestForActivity_DerivesByVariant(t *testing.T) {
	calc := NewCalculator(50)

	co2, factor, scope := calc.ForActivity(Activity{
		Type: ActivityElectricity,
		Electricity: &ElectricityActivity{
			KWhConsumed: 1000,
			Region:      "us_average",
		},
	})
	assert.InDelta(t, 385.0, co2, 1e-9)
	assert.InDelta(t, 0.385, factor, 1e-9)
	assert.Equal(t, ScopeTwo, scope)

	co2, _, scope = calc.ForActivity(Activity{
		Type: ActivityFuel,
		Fuel: &FuelActivity{FuelType: "gasoline", Quantity: 10},
	})
	assert.InDelta(t, 23.1, co2, 1e-9)
	assert.Equal(t, ScopeOne, scope)
}

func TestForActivity_OtherReturnsZeros(t *testing.T) {
	calc := NewCalculator(50)

	co2, factor, scope := calc.ForActivity(Activity{
		Type:  ActivityOther,
		Other: &OtherActivity{Description: "refrigerant top-up"},
	})

	assert.Zero(t, co2)
	assert.Zero(t, factor)
	assert.Equal(t, ScopeThree, scope)
}
