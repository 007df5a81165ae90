// AngelaMos | 2026
// repository.go

package initiative

import (
	"context"
	"fmt"

	"github.com/climabill/backend/internal/core"
)

type Repository interface {
	CreateTarget(ctx context.Context, target *Target) error
	ListTargets(ctx context.Context, tenantID string) ([]Target, error)
	ListActiveTargets(ctx context.Context, tenantID string) ([]Target, error)
	CreateInitiative(ctx context.Context, initiative *Initiative) error
	ListInitiatives(ctx context.Context, tenantID string) ([]Initiative, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTarget(ctx context.Context, target *Target) error {
	query := `
		INSERT INTO carbon_targets (
			id, tenant_id, target_name, baseline_year, target_year,
			baseline_emissions_kg, target_reduction_percentage,
			scope_coverage, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &target.CreatedAt, query,
		target.ID,
		target.TenantID,
		target.Name,
		target.BaselineYear,
		target.TargetYear,
		target.BaselineEmissionsKg,
		target.ReductionPercentage,
		target.ScopeCoverage,
		target.Status,
	)
	if err != nil {
		return fmt.Errorf("create carbon target: %w", err)
	}

	return nil
}

func (r *repository) ListTargets(
	ctx context.Context,
	tenantID string,
) ([]Target, error) {
	return r.listTargets(ctx, tenantID, false)
}

func (r *repository) ListActiveTargets(
	ctx context.Context,
	tenantID string,
) ([]Target, error) {
	return r.listTargets(ctx, tenantID, true)
}

func (r *repository) listTargets(
	ctx context.Context,
	tenantID string,
	activeOnly bool,
) ([]Target, error) {
	query := `
		SELECT id, tenant_id, target_name, baseline_year, target_year,
		       baseline_emissions_kg, target_reduction_percentage,
		       scope_coverage, status, created_at
		FROM carbon_targets
		WHERE tenant_id = $1`
	if activeOnly {
		query += ` AND status = 'active'`
	}
	query += ` ORDER BY created_at DESC`

	var targets []Target
	if err := r.db.SelectContext(ctx, &targets, query, tenantID); err != nil {
		return nil, fmt.Errorf("list carbon targets: %w", err)
	}

	return targets, nil
}

func (r *repository) CreateInitiative(
	ctx context.Context,
	initiative *Initiative,
) error {
	query := `
		INSERT INTO initiatives (
			id, tenant_id, initiative_name, description,
			implementation_cost, annual_savings, annual_co2_reduction,
			roi_percentage, implementation_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &initiative.CreatedAt, query,
		initiative.ID,
		initiative.TenantID,
		initiative.Name,
		initiative.Description,
		initiative.ImplementationCost,
		initiative.AnnualSavings,
		initiative.AnnualCO2Reduction,
		initiative.ROIPercentage,
		initiative.ImplementationDate,
		initiative.Status,
	)
	if err != nil {
		return fmt.Errorf("create initiative: %w", err)
	}

	return nil
}

func (r *repository) ListInitiatives(
	ctx context.Context,
	tenantID string,
) ([]Initiative, error) {
	query := `
		SELECT id, tenant_id, initiative_name, description,
		       implementation_cost, annual_savings, annual_co2_reduction,
		       roi_percentage, implementation_date, status, created_at
		FROM initiatives
		WHERE tenant_id = $1
		ORDER BY created_at DESC`

	var initiatives []Initiative
	if err := r.db.SelectContext(ctx, &initiatives, query, tenantID); err != nil {
		return nil, fmt.Errorf("list initiatives: %w", err)
	}

	return initiatives, nil
}
