// AngelaMos | 2026
// entity.go

package emission

import (
	"time"
)

type Source struct {
	ID          string    `db:"id"`
	TenantID    string    `db:"tenant_id"`
	Name        string    `db:"source_name"`
	SourceType  string    `db:"source_type"`
	Scope       string    `db:"scope"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

const (
	QualityEstimated  = "estimated"
	QualityMeasured   = "measured"
	QualityCalculated = "calculated"
)

type Record struct {
	ID              string    `db:"id"`
	TenantID        string    `db:"tenant_id"`
	SourceID        string    `db:"source_id"`
	PeriodStart     time.Time `db:"period_start"`
	PeriodEnd       time.Time `db:"period_end"`
	CO2EquivalentKg float64   `db:"co2_equivalent_kg"`
	Activity        Activity  `db:"activity_data"`
	EmissionFactor  float64   `db:"emission_factor"`
	DataQuality     string    `db:"data_quality"`
	CreatedAt       time.Time `db:"created_at"`
}

type sourceSeed struct {
	name       string
	sourceType string
	scope      string
}

// Industry-default source sets created at registration.
var defaultSources = map[string][]sourceSeed{
	"saas": {
		{"Office Electricity", "electricity", ScopeTwo},
		{"Employee Commuting", "commuting", ScopeThree},
		{"Business Travel", "travel", ScopeThree},
		{"Cloud Services", "cloud", ScopeThree},
		{"Office Heating", "heating", ScopeOne},
	},
	"manufacturing": {
		{"Production Electricity", "electricity", ScopeTwo},
		{"Industrial Processes", "production", ScopeOne},
		{"Raw Materials", "materials", ScopeThree},
		{"Transportation", "logistics", ScopeThree},
		{"Waste Management", "waste", ScopeThree},
	},
}

func defaultSourcesForIndustry(industry string) []sourceSeed {
	if seeds, ok := defaultSources[industry]; ok {
		return seeds
	}
	return defaultSources["saas"]
}
