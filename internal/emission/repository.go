// AngelaMos | 2026
// repository.go

package emission

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/climabill/backend/internal/core"
)

type Repository interface {
	CreateSource(ctx context.Context, source *Source) error
	GetSource(ctx context.Context, tenantID, id string) (*Source, error)
	ListSources(ctx context.Context, tenantID string) ([]Source, error)
	CreateRecord(ctx context.Context, record *Record) error
	ListRecords(ctx context.Context, tenantID string, limit, offset int) ([]Record, int, error)
	Summary(ctx context.Context, tenantID string, start, end time.Time) (*SummaryResponse, error)
	Trend(ctx context.Context, tenantID string, months int) ([]TrendPoint, error)
	TopSources(ctx context.Context, tenantID string, limit int) ([]TopSource, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSource(ctx context.Context, source *Source) error {
	query := `
		INSERT INTO emission_sources (
			id, tenant_id, source_name, source_type, scope, description
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &source.CreatedAt, query,
		source.ID,
		source.TenantID,
		source.Name,
		source.SourceType,
		source.Scope,
		source.Description,
	)
	if err != nil {
		return fmt.Errorf("create emission source: %w", err)
	}

	return nil
}

func (r *repository) GetSource(
	ctx context.Context,
	tenantID, id string,
) (*Source, error) {
	query := `
		SELECT id, tenant_id, source_name, source_type, scope, description,
		       created_at
		FROM emission_sources
		WHERE id = $1 AND tenant_id = $2`

	var source Source
	err := r.db.GetContext(ctx, &source, query, id, tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get emission source: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get emission source: %w", err)
	}

	return &source, nil
}

func (r *repository) ListSources(
	ctx context.Context,
	tenantID string,
) ([]Source, error) {
	query := `
		SELECT id, tenant_id, source_name, source_type, scope, description,
		       created_at
		FROM emission_sources
		WHERE tenant_id = $1
		ORDER BY created_at`

	var sources []Source
	if err := r.db.SelectContext(ctx, &sources, query, tenantID); err != nil {
		return nil, fmt.Errorf("list emission sources: %w", err)
	}

	return sources, nil
}

func (r *repository) CreateRecord(ctx context.Context, record *Record) error {
	query := `
		INSERT INTO emission_records (
			id, tenant_id, source_id, period_start, period_end,
			co2_equivalent_kg, activity_data, emission_factor, data_quality
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &record.CreatedAt, query,
		record.ID,
		record.TenantID,
		record.SourceID,
		record.PeriodStart,
		record.PeriodEnd,
		record.CO2EquivalentKg,
		record.Activity,
		record.EmissionFactor,
		record.DataQuality,
	)
	if err != nil {
		return fmt.Errorf("create emission record: %w", err)
	}

	return nil
}

func (r *repository) ListRecords(
	ctx context.Context,
	tenantID string,
	limit, offset int,
) ([]Record, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM emission_records WHERE tenant_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, tenantID); err != nil {
		return nil, 0, fmt.Errorf("count emission records: %w", err)
	}

	query := `
		SELECT id, tenant_id, source_id, period_start, period_end,
		       co2_equivalent_kg, activity_data, emission_factor,
		       data_quality, created_at
		FROM emission_records
		WHERE tenant_id = $1
		ORDER BY period_start DESC
		LIMIT $2 OFFSET $3`

	var records []Record
	err := r.db.SelectContext(ctx, &records, query, tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list emission records: %w", err)
	}

	return records, total, nil
}

func (r *repository) Summary(
	ctx context.Context,
	tenantID string,
	start, end time.Time,
) (*SummaryResponse, error) {
	query := `
		SELECT s.scope, s.source_type,
		       SUM(r.co2_equivalent_kg) AS total_emissions
		FROM emission_records r
		JOIN emission_sources s
		  ON s.id = r.source_id AND s.tenant_id = r.tenant_id
		WHERE r.tenant_id = $1
		  AND r.period_start >= $2
		  AND r.period_end <= $3
		GROUP BY s.scope, s.source_type`

	var rows []struct {
		Scope          string  `db:"scope"`
		SourceType     string  `db:"source_type"`
		TotalEmissions float64 `db:"total_emissions"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, tenantID, start, end); err != nil {
		return nil, fmt.Errorf("emissions summary: %w", err)
	}

	summary := &SummaryResponse{
		PeriodStart: start,
		PeriodEnd:   end,
		ScopeBreakdown: map[string]float64{
			ScopeOne:   0,
			ScopeTwo:   0,
			ScopeThree: 0,
		},
		SourceBreakdown: map[string]float64{},
	}

	for _, row := range rows {
		summary.ScopeBreakdown[row.Scope] += row.TotalEmissions
		summary.SourceBreakdown[row.SourceType] += row.TotalEmissions
		summary.TotalEmissionsKg += row.TotalEmissions
	}

	summary.EmissionsIntensity = summary.TotalEmissionsKg / 1000

	return summary, nil
}

func (r *repository) Trend(
	ctx context.Context,
	tenantID string,
	months int,
) ([]TrendPoint, error) {
	query := `
		SELECT EXTRACT(YEAR FROM period_start)::int  AS year,
		       EXTRACT(MONTH FROM period_start)::int AS month,
		       SUM(co2_equivalent_kg)                AS emissions_kg
		FROM emission_records
		WHERE tenant_id = $1
		  AND period_start >= NOW() - ($2 * INTERVAL '1 month')
		GROUP BY 1, 2
		ORDER BY 1, 2`

	var rows []struct {
		Year        int     `db:"year"`
		Month       int     `db:"month"`
		EmissionsKg float64 `db:"emissions_kg"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, tenantID, months); err != nil {
		return nil, fmt.Errorf("emissions trend: %w", err)
	}

	trend := make([]TrendPoint, 0, len(rows))
	for _, row := range rows {
		trend = append(trend, TrendPoint{
			Year:            row.Year,
			Month:           row.Month,
			EmissionsKg:     row.EmissionsKg,
			EmissionsTonnes: row.EmissionsKg / 1000,
		})
	}

	return trend, nil
}

func (r *repository) TopSources(
	ctx context.Context,
	tenantID string,
	limit int,
) ([]TopSource, error) {
	query := `
		SELECT r.source_id,
		       s.source_name,
		       s.source_type,
		       s.scope,
		       SUM(r.co2_equivalent_kg) AS total_emissions,
		       COUNT(*)                 AS record_count
		FROM emission_records r
		JOIN emission_sources s
		  ON s.id = r.source_id AND s.tenant_id = r.tenant_id
		WHERE r.tenant_id = $1
		GROUP BY r.source_id, s.source_name, s.source_type, s.scope
		ORDER BY total_emissions DESC
		LIMIT $2`

	var rows []TopSource
	if err := r.db.SelectContext(ctx, &rows, query, tenantID, limit); err != nil {
		return nil, fmt.Errorf("top emission sources: %w", err)
	}

	return rows, nil
}
