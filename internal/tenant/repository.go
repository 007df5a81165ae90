// AngelaMos | 2026
// repository.go

package tenant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/climabill/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, tenant *Tenant) error
	GetByID(ctx context.Context, id string) (*Tenant, error)
	GetByDomain(ctx context.Context, domain string) (*Tenant, error)
	Update(ctx context.Context, tenant *Tenant) error
	GetPlan(ctx context.Context, id string) (string, error)
	Stats(ctx context.Context, id string) (*StatsResponse, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tenant *Tenant) error {
	query := `
		INSERT INTO tenants (
			id, name, domain, plan, industry, employee_count,
			annual_revenue, headquarters_location, compliance_standards,
			max_users
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING is_active, created_at, updated_at`

	err := r.db.GetContext(ctx, tenant, query,
		tenant.ID,
		tenant.Name,
		tenant.Domain,
		tenant.Plan,
		tenant.Industry,
		tenant.EmployeeCount,
		tenant.AnnualRevenue,
		tenant.Headquarters,
		tenant.Compliance,
		tenant.MaxUsers,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create tenant: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create tenant: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Tenant, error) {
	query := `
		SELECT id, name, domain, plan, industry, employee_count,
		       annual_revenue, headquarters_location, compliance_standards,
		       max_users, is_active, created_at, updated_at, deleted_at
		FROM tenants
		WHERE id = $1 AND deleted_at IS NULL`

	var tenant Tenant
	err := r.db.GetContext(ctx, &tenant, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get tenant: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}

	return &tenant, nil
}

func (r *repository) GetByDomain(
	ctx context.Context,
	domain string,
) (*Tenant, error) {
	query := `
		SELECT id, name, domain, plan, industry, employee_count,
		       annual_revenue, headquarters_location, compliance_standards,
		       max_users, is_active, created_at, updated_at, deleted_at
		FROM tenants
		WHERE domain = $1 AND deleted_at IS NULL`

	var tenant Tenant
	err := r.db.GetContext(ctx, &tenant, query, domain)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get tenant by domain: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant by domain: %w", err)
	}

	return &tenant, nil
}

func (r *repository) Update(ctx context.Context, tenant *Tenant) error {
	query := `
		UPDATE tenants
		SET name = $2, industry = $3, employee_count = $4,
		    annual_revenue = $5, headquarters_location = $6,
		    compliance_standards = $7, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &tenant.UpdatedAt, query,
		tenant.ID,
		tenant.Name,
		tenant.Industry,
		tenant.EmployeeCount,
		tenant.AnnualRevenue,
		tenant.Headquarters,
		tenant.Compliance,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update tenant: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}

	return nil
}

func (r *repository) GetPlan(ctx context.Context, id string) (string, error) {
	query := `SELECT plan FROM tenants WHERE id = $1 AND deleted_at IS NULL`

	var plan string
	err := r.db.GetContext(ctx, &plan, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("get tenant plan: %w", core.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get tenant plan: %w", err)
	}

	return plan, nil
}

func (r *repository) Stats(
	ctx context.Context,
	id string,
) (*StatsResponse, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users
			 WHERE tenant_id = $1 AND deleted_at IS NULL)   AS total_users,
			(SELECT COUNT(*) FROM emission_records
			 WHERE tenant_id = $1)                          AS total_emissions,
			(SELECT COUNT(*) FROM emission_sources
			 WHERE tenant_id = $1)                          AS total_sources,
			(SELECT COUNT(*) FROM suppliers
			 WHERE tenant_id = $1)                          AS total_suppliers,
			(SELECT COUNT(*) FROM carbon_targets
			 WHERE tenant_id = $1)                          AS total_targets,
			(SELECT COUNT(*) FROM initiatives
			 WHERE tenant_id = $1)                          AS total_initiatives,
			(SELECT COUNT(*) FROM certificates
			 WHERE tenant_id = $1)                          AS total_certificates`

	var stats struct {
		TotalUsers        int `db:"total_users"`
		TotalEmissions    int `db:"total_emissions"`
		TotalSources      int `db:"total_sources"`
		TotalSuppliers    int `db:"total_suppliers"`
		TotalTargets      int `db:"total_targets"`
		TotalInitiatives  int `db:"total_initiatives"`
		TotalCertificates int `db:"total_certificates"`
	}
	if err := r.db.GetContext(ctx, &stats, query, id); err != nil {
		return nil, fmt.Errorf("tenant stats: %w", err)
	}

	return &StatsResponse{
		TotalUsers:        stats.TotalUsers,
		TotalEmissions:    stats.TotalEmissions,
		TotalSources:      stats.TotalSources,
		TotalSuppliers:    stats.TotalSuppliers,
		TotalTargets:      stats.TotalTargets,
		TotalInitiatives:  stats.TotalInitiatives,
		TotalCertificates: stats.TotalCertificates,
	}, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
