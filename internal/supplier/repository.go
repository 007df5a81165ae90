// AngelaMos | 2026
// repository.go

package supplier

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/climabill/backend/internal/core"
)

type Repository interface {
	CreateSupplier(ctx context.Context, supplier *Supplier) error
	GetSupplier(ctx context.Context, tenantID, id string) (*Supplier, error)
	ListSuppliers(ctx context.Context, tenantID string) ([]Supplier, error)
	CreateChainEmission(ctx context.Context, emission *ChainEmission) error
	ListChainEmissions(ctx context.Context, tenantID string) ([]ChainEmission, error)
	CreateChainTarget(ctx context.Context, target *ChainTarget) error
	ListChainTargets(ctx context.Context, tenantID string) ([]ChainTarget, error)
	Dashboard(ctx context.Context, tenantID string) (*DashboardResponse, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSupplier(
	ctx context.Context,
	supplier *Supplier,
) error {
	query := `
		INSERT INTO suppliers (
			id, tenant_id, supplier_name, industry, location,
			contact_email, annual_revenue, employee_count, carbon_score,
			verification_status, partnership_level
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &supplier.CreatedAt, query,
		supplier.ID,
		supplier.TenantID,
		supplier.Name,
		supplier.Industry,
		supplier.Location,
		supplier.ContactEmail,
		supplier.AnnualRevenue,
		supplier.EmployeeCount,
		supplier.CarbonScore,
		supplier.VerificationStatus,
		supplier.PartnershipLevel,
	)
	if err != nil {
		return fmt.Errorf("create supplier: %w", err)
	}

	return nil
}

func (r *repository) GetSupplier(
	ctx context.Context,
	tenantID, id string,
) (*Supplier, error) {
	query := `
		SELECT id, tenant_id, supplier_name, industry, location,
		       contact_email, annual_revenue, employee_count, carbon_score,
		       verification_status, partnership_level, created_at
		FROM suppliers
		WHERE id = $1 AND tenant_id = $2`

	var supplier Supplier
	err := r.db.GetContext(ctx, &supplier, query, id, tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get supplier: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}

	return &supplier, nil
}

func (r *repository) ListSuppliers(
	ctx context.Context,
	tenantID string,
) ([]Supplier, error) {
	query := `
		SELECT id, tenant_id, supplier_name, industry, location,
		       contact_email, annual_revenue, employee_count, carbon_score,
		       verification_status, partnership_level, created_at
		FROM suppliers
		WHERE tenant_id = $1
		ORDER BY supplier_name`

	var suppliers []Supplier
	if err := r.db.SelectContext(ctx, &suppliers, query, tenantID); err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}

	return suppliers, nil
}

func (r *repository) CreateChainEmission(
	ctx context.Context,
	emission *ChainEmission,
) error {
	query := `
		INSERT INTO supply_chain_emissions (
			id, tenant_id, supplier_id, emission_type, scope,
			co2_equivalent_kg, activity_description,
			reporting_period_start, reporting_period_end,
			data_quality, verification_level
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &emission.CreatedAt, query,
		emission.ID,
		emission.TenantID,
		emission.SupplierID,
		emission.EmissionType,
		emission.Scope,
		emission.CO2EquivalentKg,
		emission.Description,
		emission.PeriodStart,
		emission.PeriodEnd,
		emission.DataQuality,
		emission.VerificationLevel,
	)
	if err != nil {
		return fmt.Errorf("create supply chain emission: %w", err)
	}

	return nil
}

func (r *repository) ListChainEmissions(
	ctx context.Context,
	tenantID string,
) ([]ChainEmission, error) {
	query := `
		SELECT id, tenant_id, supplier_id, emission_type, scope,
		       co2_equivalent_kg, activity_description,
		       reporting_period_start, reporting_period_end,
		       data_quality, verification_level, created_at
		FROM supply_chain_emissions
		WHERE tenant_id = $1
		ORDER BY reporting_period_start DESC`

	var emissions []ChainEmission
	if err := r.db.SelectContext(ctx, &emissions, query, tenantID); err != nil {
		return nil, fmt.Errorf("list supply chain emissions: %w", err)
	}

	return emissions, nil
}

func (r *repository) CreateChainTarget(
	ctx context.Context,
	target *ChainTarget,
) error {
	query := `
		INSERT INTO supply_chain_targets (
			id, tenant_id, target_name, target_type, baseline_year,
			target_year, reduction_percentage, scope_coverage,
			participating_suppliers, progress_percentage, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &target.CreatedAt, query,
		target.ID,
		target.TenantID,
		target.Name,
		target.TargetType,
		target.BaselineYear,
		target.TargetYear,
		target.ReductionPercentage,
		target.ScopeCoverage,
		target.ParticipatingSuppliers,
		target.ProgressPercentage,
		target.Status,
	)
	if err != nil {
		return fmt.Errorf("create supply chain target: %w", err)
	}

	return nil
}

func (r *repository) ListChainTargets(
	ctx context.Context,
	tenantID string,
) ([]ChainTarget, error) {
	query := `
		SELECT id, tenant_id, target_name, target_type, baseline_year,
		       target_year, reduction_percentage, scope_coverage,
		       participating_suppliers, progress_percentage, status,
		       created_at
		FROM supply_chain_targets
		WHERE tenant_id = $1
		ORDER BY created_at DESC`

	var targets []ChainTarget
	if err := r.db.SelectContext(ctx, &targets, query, tenantID); err != nil {
		return nil, fmt.Errorf("list supply chain targets: %w", err)
	}

	return targets, nil
}

func (r *repository) Dashboard(
	ctx context.Context,
	tenantID string,
) (*DashboardResponse, error) {
	var header struct {
		SupplierCount         int     `db:"supplier_count"`
		UpstreamEmissionsKg   float64 `db:"upstream_emissions_kg"`
		DownstreamEmissionsKg float64 `db:"downstream_emissions_kg"`
		AverageCarbonScore    float64 `db:"average_carbon_score"`
	}

	headerQuery := `
		SELECT
			(SELECT COUNT(*) FROM suppliers
			 WHERE tenant_id = $1)                      AS supplier_count,
			COALESCE((SELECT SUM(co2_equivalent_kg)
			 FROM supply_chain_emissions
			 WHERE tenant_id = $1
			   AND emission_type = 'upstream'), 0)      AS upstream_emissions_kg,
			COALESCE((SELECT SUM(co2_equivalent_kg)
			 FROM supply_chain_emissions
			 WHERE tenant_id = $1
			   AND emission_type = 'downstream'), 0)    AS downstream_emissions_kg,
			COALESCE((SELECT AVG(carbon_score)
			 FROM suppliers WHERE tenant_id = $1), 0)   AS average_carbon_score`

	if err := r.db.GetContext(ctx, &header, headerQuery, tenantID); err != nil {
		return nil, fmt.Errorf("supply chain dashboard: %w", err)
	}

	topQuery := `
		SELECT e.supplier_id,
		       s.supplier_name,
		       SUM(e.co2_equivalent_kg) AS total_emissions,
		       COUNT(*)                 AS record_count
		FROM supply_chain_emissions e
		JOIN suppliers s
		  ON s.id = e.supplier_id AND s.tenant_id = e.tenant_id
		WHERE e.tenant_id = $1
		GROUP BY e.supplier_id, s.supplier_name
		ORDER BY total_emissions DESC
		LIMIT 5`

	var topEmitters []TopEmitter
	if err := r.db.SelectContext(ctx, &topEmitters, topQuery, tenantID); err != nil {
		return nil, fmt.Errorf("supply chain top emitters: %w", err)
	}

	return &DashboardResponse{
		SupplierCount:         header.SupplierCount,
		UpstreamEmissionsKg:   header.UpstreamEmissionsKg,
		DownstreamEmissionsKg: header.DownstreamEmissionsKg,
		TotalEmissionsKg:      header.UpstreamEmissionsKg + header.DownstreamEmissionsKg,
		AverageCarbonScore:    header.AverageCarbonScore,
		TopEmitters:           topEmitters,
	}, nil
}
