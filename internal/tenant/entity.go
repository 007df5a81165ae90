// AngelaMos | 2026
// entity.go

package tenant

import (
	"database/sql"
	"time"

	"github.com/climabill/backend/internal/core"
)

const (
	PlanStarter      = "starter"
	PlanProfessional = "professional"
	PlanEnterprise   = "enterprise"
)

type Tenant struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Domain        string          `db:"domain"`
	Plan          string          `db:"plan"`
	Industry      string          `db:"industry"`
	EmployeeCount int             `db:"employee_count"`
	AnnualRevenue float64         `db:"annual_revenue"`
	Headquarters  string          `db:"headquarters_location"`
	Compliance    core.StringList `db:"compliance_standards"`
	MaxUsers      int             `db:"max_users"`
	IsActive      bool            `db:"is_active"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	DeletedAt     sql.NullTime    `db:"deleted_at"`
}

// MaxUsersForPlan mirrors the seat limits applied at registration.
func MaxUsersForPlan(plan string) int {
	switch plan {
	case PlanStarter:
		return 5
	case PlanEnterprise:
		return 500
	default:
		return 50
	}
}
