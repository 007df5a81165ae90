// AngelaMos | 2026
// activity.go

package emission

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	ActivityElectricity = "electricity"
	ActivityFuel        = "fuel"
	ActivityTravel      = "travel"
	ActivityOther       = "other"
)

var ErrUnknownActivityType = errors.New("unknown activity type")

type ElectricityActivity struct {
	KWhConsumed         float64 `json:"kwh_consumed"         validate:"required,gt=0"`
	Region              string  `json:"region"               validate:"omitempty,oneof=us_average renewable coal natural_gas"`
	RenewablePercentage float64 `json:"renewable_percentage" validate:"gte=0,lte=100"`
}

type FuelActivity struct {
	FuelType string  `json:"fuel_type" validate:"required,oneof=natural_gas gasoline diesel jet_fuel"`
	Quantity float64 `json:"quantity"  validate:"required,gt=0"`
	Unit     string  `json:"unit"      validate:"omitempty,oneof=liters kwh"`
}

type Trip struct {
	TransportMode string  `json:"transport_mode" validate:"required"`
	DistanceKm    float64 `json:"distance_km"    validate:"required,gt=0"`
	Passengers    int     `json:"passengers"     validate:"omitempty,gte=1"`
}

type TravelActivity struct {
	Trips []Trip `json:"trips" validate:"required,min=1,dive"`
}

type OtherActivity struct {
	Description string  `json:"description" validate:"required,max=500"`
	Quantity    float64 `json:"quantity"    validate:"gte=0"`
	Unit        string  `json:"unit"        validate:"omitempty,max=50"`
}

// Activity is the typed payload attached to an emission record. Exactly
// one variant is set, selected by the "type" discriminator on the wire.
type Activity struct {
	Type        string
	Electricity *ElectricityActivity
	Fuel        *FuelActivity
	Travel      *TravelActivity
	Other       *OtherActivity
}

type activityEnvelope struct {
	Type        string               `json:"type"`
	Electricity *ElectricityActivity `json:"electricity,omitempty"`
	Fuel        *FuelActivity        `json:"fuel,omitempty"`
	Travel      *TravelActivity      `json:"travel,omitempty"`
	Other       *OtherActivity       `json:"other,omitempty"`
}

func (a Activity) MarshalJSON() ([]byte, error) {
	env := activityEnvelope{
		Type:        a.Type,
		Electricity: a.Electricity,
		Fuel:        a.Fuel,
		Travel:      a.Travel,
		Other:       a.Other,
	}
	return json.Marshal(env)
}

func (a *Activity) UnmarshalJSON(data []byte) error {
	var env activityEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	*a = Activity{
		Type:        env.Type,
		Electricity: env.Electricity,
		Fuel:        env.Fuel,
		Travel:      env.Travel,
		Other:       env.Other,
	}

	return a.Validate()
}

// Validate checks the discriminator matches the populated variant.
func (a *Activity) Validate() error {
	switch a.Type {
	case ActivityElectricity:
		if a.Electricity == nil {
			return fmt.Errorf("activity %q: missing electricity payload", a.Type)
		}
	case ActivityFuel:
		if a.Fuel == nil {
			return fmt.Errorf("activity %q: missing fuel payload", a.Type)
		}
	case ActivityTravel:
		if a.Travel == nil {
			return fmt.Errorf("activity %q: missing travel payload", a.Type)
		}
	case ActivityOther:
		if a.Other == nil {
			return fmt.Errorf("activity %q: missing other payload", a.Type)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownActivityType, a.Type)
	}

	return nil
}

func (a Activity) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Activity) Scan(src any) error {
	if src == nil {
		return errors.New("scan Activity: null activity_data")
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan Activity: unsupported type %T", src)
	}

	return json.Unmarshal(data, a)
}
