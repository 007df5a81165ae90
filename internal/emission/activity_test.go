// AngelaMos | 2026
// activity_test.go

package emission

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivity_RoundTrip(t *testing.T) {
	original := Activity{
		Type: ActivityTravel,
		Travel: &TravelActivity{
			Trips: []Trip{
				{TransportMode: "flight", DistanceKm: 1200, Passengers: 2},
				{TransportMode: "train", DistanceKm: 300, Passengers: 1},
			},
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Activity
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original.Type, decoded.Type)
	require.NotNil(t, decoded.Travel)
	assert.Equal(t, original.Travel.Trips, decoded.Travel.Trips)
	assert.Nil(t, decoded.Electricity)
	assert.Nil(t, decoded.Fuel)
	assert.Nil(t, decoded.Other)
}

func TestActivity_UnmarshalRejectsUnknownType(t *testing.T) {
	var a Activity
	err := json.Unmarshal([]byte(`{"type":"biomass"}`), &a)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownActivityType)
}

func TestActivity_UnmarshalRejectsMismatchedPayload(t *testing.T) {
	// Discriminator says electricity, payload carries fuel.
	raw := `{"type":"electricity","fuel":{"fuel_type":"diesel","quantity":10}}`

	var a Activity
	err := json.Unmarshal([]byte(raw), &a)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing electricity payload")
}

func TestActivity_ValidateAcceptsEachVariant(t *testing.T) {
	activities := []Activity{
		{Type: ActivityElectricity, Electricity: &ElectricityActivity{KWhConsumed: 1}},
		{Type: ActivityFuel, Fuel: &FuelActivity{FuelType: "diesel", Quantity: 1}},
		{Type: ActivityTravel, Travel: &TravelActivity{Trips: []Trip{{TransportMode: "bus", DistanceKm: 5}}}},
		{Type: ActivityOther, Other: &OtherActivity{Description: "misc"}},
	}

	for _, a := range activities {
		assert.NoError(t, a.Validate(), "type %s", a.Type)
	}
}

func TestActivity_ScanAndValue(t *testing.T) {
	original := Activity{
		Type: ActivityElectricity,
		Electricity: &ElectricityActivity{
			KWhConsumed:         2500,
			Region:              "natural_gas",
			RenewablePercentage: 10,
		},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned Activity
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)

	// JSONB arrives as string from some drivers.
	var fromString Activity
	require.NoError(t, fromString.Scan(string(value.([]byte))))
	assert.Equal(t, original, fromString)
}

func TestActivity_ScanRejectsNull(t *testing.T) {
	var a Activity
	assert.Error(t, a.Scan(nil))
}
