// AngelaMos | 2026
// entity.go

package supplier

import (
	"time"

	"github.com/climabill/backend/internal/core"
)

const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationFlagged  = "flagged"
)

const (
	PartnershipBasic     = "basic"
	PartnershipPreferred = "preferred"
	PartnershipStrategic = "strategic"
)

type Supplier struct {
	ID                 string    `db:"id"`
	TenantID           string    `db:"tenant_id"`
	Name               string    `db:"supplier_name"`
	Industry           string    `db:"industry"`
	Location           string    `db:"location"`
	ContactEmail       string    `db:"contact_email"`
	AnnualRevenue      float64   `db:"annual_revenue"`
	EmployeeCount      int       `db:"employee_count"`
	CarbonScore        float64   `db:"carbon_score"`
	VerificationStatus string    `db:"verification_status"`
	PartnershipLevel   string    `db:"partnership_level"`
	CreatedAt          time.Time `db:"created_at"`
}

const (
	EmissionUpstream   = "upstream"
	EmissionDownstream = "downstream"
)

type ChainEmission struct {
	ID                string    `db:"id"`
	TenantID          string    `db:"tenant_id"`
	SupplierID        string    `db:"supplier_id"`
	EmissionType      string    `db:"emission_type"`
	Scope             string    `db:"scope"`
	CO2EquivalentKg   float64   `db:"co2_equivalent_kg"`
	Description       string    `db:"activity_description"`
	PeriodStart       time.Time `db:"reporting_period_start"`
	PeriodEnd         time.Time `db:"reporting_period_end"`
	DataQuality       string    `db:"data_quality"`
	VerificationLevel string    `db:"verification_level"`
	CreatedAt         time.Time `db:"created_at"`
}

type ChainTarget struct {
	ID                     string          `db:"id"`
	TenantID               string          `db:"tenant_id"`
	Name                   string          `db:"target_name"`
	TargetType             string          `db:"target_type"`
	BaselineYear           int             `db:"baseline_year"`
	TargetYear             int             `db:"target_year"`
	ReductionPercentage    float64         `db:"reduction_percentage"`
	ScopeCoverage          core.StringList `db:"scope_coverage"`
	ParticipatingSuppliers core.StringList `db:"participating_suppliers"`
	ProgressPercentage     float64         `db:"progress_percentage"`
	Status                 string          `db:"status"`
	CreatedAt              time.Time       `db:"created_at"`
}
