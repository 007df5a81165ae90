// AngelaMos | 2026
// entity.go

package initiative

import (
	"time"

	"github.com/climabill/backend/internal/core"
)

const (
	TargetActive   = "active"
	TargetAchieved = "achieved"
	TargetRevised  = "revised"
)

const (
	StatusPlanned    = "planned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Target struct {
	ID                  string          `db:"id"`
	TenantID            string          `db:"tenant_id"`
	Name                string          `db:"target_name"`
	BaselineYear        int             `db:"baseline_year"`
	TargetYear          int             `db:"target_year"`
	BaselineEmissionsKg float64         `db:"baseline_emissions_kg"`
	ReductionPercentage float64         `db:"target_reduction_percentage"`
	ScopeCoverage       core.StringList `db:"scope_coverage"`
	Status              string          `db:"status"`
	CreatedAt           time.Time       `db:"created_at"`
}

type Initiative struct {
	ID                 string    `db:"id"`
	TenantID           string    `db:"tenant_id"`
	Name               string    `db:"initiative_name"`
	Description        string    `db:"description"`
	ImplementationCost float64   `db:"implementation_cost"`
	AnnualSavings      float64   `db:"annual_savings"`
	AnnualCO2Reduction float64   `db:"annual_co2_reduction"`
	ROIPercentage      float64   `db:"roi_percentage"`
	ImplementationDate time.Time `db:"implementation_date"`
	Status             string    `db:"status"`
	CreatedAt          time.Time `db:"created_at"`
}
