// AngelaMos | 2026
// service.go

package emission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/climabill/backend/internal/core"
	"github.com/climabill/backend/internal/tenant"
)

type Service struct {
	repo       Repository
	calculator *Calculator
}

func NewService(repo Repository, calculator *Calculator) *Service {
	return &Service{repo: repo, calculator: calculator}
}

var _ tenant.SourceSeeder = (*Service)(nil)

// SeedDefaults creates the industry-default emission sources for a new
// tenant inside the registration transaction.
func (s *Service) SeedDefaults(
	ctx context.Context,
	tx core.DBTX,
	tenantID, industry string,
) error {
	txRepo := NewRepository(tx)

	for _, seed := range defaultSourcesForIndustry(industry) {
		source := &Source{
			ID:         uuid.New().String(),
			TenantID:   tenantID,
			Name:       seed.name,
			SourceType: seed.sourceType,
			Scope:      seed.scope,
		}
		if err := txRepo.CreateSource(ctx, source); err != nil {
			return fmt.Errorf("seed default sources: %w", err)
		}
	}

	return nil
}

func (s *Service) CreateSource(
	ctx context.Context,
	tenantID string,
	req CreateSourceRequest,
) (*SourceResponse, error) {
	source := &Source{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        req.Name,
		SourceType:  req.SourceType,
		Scope:       req.Scope,
		Description: req.Description,
	}

	if err := s.repo.CreateSource(ctx, source); err != nil {
		return nil, err
	}

	resp := toSourceResponse(source)
	return &resp, nil
}

func (s *Service) ListSources(
	ctx context.Context,
	tenantID string,
) ([]SourceResponse, error) {
	sources, err := s.repo.ListSources(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]SourceResponse, 0, len(sources))
	for i := range sources {
		responses = append(responses, toSourceResponse(&sources[i]))
	}

	return responses, nil
}

// CreateRecord stores one emission entry. The referenced source must
// belong to the caller's tenant; when the request omits a measured value
// the calculator derives one from the typed activity.
func (s *Service) CreateRecord(
	ctx context.Context,
	tenantID string,
	req CreateRecordRequest,
) (*RecordResponse, error) {
	if err := req.Activity.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrInvalidInput, err)
	}

	if _, err := s.repo.GetSource(ctx, tenantID, req.SourceID); err != nil {
		return nil, err
	}

	co2 := req.CO2EquivalentKg
	factor := req.EmissionFactor
	quality := req.DataQuality
	if quality == "" {
		quality = QualityEstimated
	}

	if co2 == 0 && req.Activity.Type != ActivityOther {
		derivedCO2, derivedFactor, _ := s.calculator.ForActivity(req.Activity)
		co2 = derivedCO2
		factor = derivedFactor
		quality = QualityCalculated
	}

	record := &Record{
		ID:              uuid.New().String(),
		TenantID:        tenantID,
		SourceID:        req.SourceID,
		PeriodStart:     req.PeriodStart,
		PeriodEnd:       req.PeriodEnd,
		CO2EquivalentKg: co2,
		Activity:        req.Activity,
		EmissionFactor:  factor,
		DataQuality:     quality,
	}

	if err := s.repo.CreateRecord(ctx, record); err != nil {
		return nil, err
	}

	resp := toRecordResponse(record)
	return &resp, nil
}

func (s *Service) ListRecords(
	ctx context.Context,
	tenantID string,
	limit, offset int,
) (*RecordListResponse, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	records, total, err := s.repo.ListRecords(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]RecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toRecordResponse(&records[i]))
	}

	return &RecordListResponse{Records: responses, Total: total}, nil
}

func (s *Service) Summary(
	ctx context.Context,
	tenantID string,
	months int,
) (*SummaryResponse, error) {
	if months < 1 || months > 120 {
		months = 12
	}

	end := time.Now()
	start := end.AddDate(0, -months, 0)

	return s.repo.Summary(ctx, tenantID, start, end)
}

// YearSummary covers the current calendar year; target progress and
// financial impact both measure against it.
func (s *Service) YearSummary(
	ctx context.Context,
	tenantID string,
) (*SummaryResponse, error) {
	return s.SummaryForYear(ctx, tenantID, time.Now().Year())
}

// SummaryForYear covers one calendar year; compliance reports are
// generated per reporting year.
func (s *Service) SummaryForYear(
	ctx context.Context,
	tenantID string,
	year int,
) (*SummaryResponse, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 23, 59, 59, 0, time.UTC)

	return s.repo.Summary(ctx, tenantID, start, end)
}

func (s *Service) Trend(
	ctx context.Context,
	tenantID string,
	months int,
) ([]TrendPoint, error) {
	if months < 1 || months > 120 {
		months = 12
	}

	return s.repo.Trend(ctx, tenantID, months)
}

func (s *Service) TopSources(
	ctx context.Context,
	tenantID string,
	limit int,
) ([]TopSource, error) {
	if limit < 1 || limit > 50 {
		limit = 5
	}

	return s.repo.TopSources(ctx, tenantID, limit)
}

// CurrentYearEmissionsKg reports this year's total for consumers that
// only need the headline number.
func (s *Service) CurrentYearEmissionsKg(
	ctx context.Context,
	tenantID string,
) (float64, error) {
	summary, err := s.YearSummary(ctx, tenantID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return summary.TotalEmissionsKg, nil
}

func (s *Service) Calculator() *Calculator {
	return s.calculator
}
