// AngelaMos | 2026
// service.go

package initiative

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/climabill/backend/internal/core"
	"github.com/climabill/backend/internal/emission"
)

const maxPaybackYears = 999.0

// EmissionsReader supplies the current-year total the progress and
// financial calculations measure against.
type EmissionsReader interface {
	CurrentYearEmissionsKg(ctx context.Context, tenantID string) (float64, error)
}

type Service struct {
	repo       Repository
	emissions  EmissionsReader
	calculator *emission.Calculator
}

func NewService(
	repo Repository,
	emissions EmissionsReader,
	calculator *emission.Calculator,
) *Service {
	return &Service{
		repo:       repo,
		emissions:  emissions,
		calculator: calculator,
	}
}

func (s *Service) CreateTarget(
	ctx context.Context,
	tenantID string,
	req CreateTargetRequest,
) (*TargetResponse, error) {
	target := &Target{
		ID:                  uuid.New().String(),
		TenantID:            tenantID,
		Name:                req.Name,
		BaselineYear:        req.BaselineYear,
		TargetYear:          req.TargetYear,
		BaselineEmissionsKg: req.BaselineEmissionsKg,
		ReductionPercentage: req.ReductionPercentage,
		ScopeCoverage:       core.StringList(req.ScopeCoverage),
		Status:              TargetActive,
	}

	if err := s.repo.CreateTarget(ctx, target); err != nil {
		return nil, err
	}

	resp := toTargetResponse(target)
	return &resp, nil
}

func (s *Service) ListTargets(
	ctx context.Context,
	tenantID string,
) ([]TargetResponse, error) {
	targets, err := s.repo.ListTargets(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]TargetResponse, 0, len(targets))
	for i := range targets {
		responses = append(responses, toTargetResponse(&targets[i]))
	}

	return responses, nil
}

// TargetProgress measures each active target against the current year's
// emissions. Progress is the achieved share of the planned reduction,
// clamped to 0..100; on_track compares it with the linearly interpolated
// expectation for the current year.
func (s *Service) TargetProgress(
	ctx context.Context,
	tenantID string,
) ([]TargetProgress, error) {
	targets, err := s.repo.ListActiveTargets(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	currentEmissions, err := s.emissions.CurrentYearEmissionsKg(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	currentYear := time.Now().Year()

	progress := make([]TargetProgress, 0, len(targets))
	for _, target := range targets {
		targetEmissions := target.BaselineEmissionsKg *
			(1 - target.ReductionPercentage/100)

		pct := 0.0
		if target.BaselineEmissionsKg > targetEmissions {
			pct = (target.BaselineEmissionsKg - currentEmissions) /
				(target.BaselineEmissionsKg - targetEmissions) * 100
		}
		pct = clamp(pct, 0, 100)

		expected := 0.0
		if target.TargetYear > target.BaselineYear {
			expected = float64(currentYear-target.BaselineYear) /
				float64(target.TargetYear-target.BaselineYear) * 100
		}

		progress = append(progress, TargetProgress{
			TargetID:            target.ID,
			TargetName:          target.Name,
			BaselineEmissionsKg: target.BaselineEmissionsKg,
			TargetEmissionsKg:   targetEmissions,
			CurrentEmissionsKg:  currentEmissions,
			ProgressPercentage:  pct,
			TargetYear:          target.TargetYear,
			OnTrack:             pct >= expected,
		})
	}

	return progress, nil
}

func (s *Service) CreateInitiative(
	ctx context.Context,
	tenantID string,
	req CreateInitiativeRequest,
) (*InitiativeResponse, error) {
	status := req.Status
	if status == "" {
		status = StatusPlanned
	}

	roi := 0.0
	if req.ImplementationCost > 0 {
		roi = req.AnnualSavings / req.ImplementationCost * 100
	}

	initiative := &Initiative{
		ID:                 uuid.New().String(),
		TenantID:           tenantID,
		Name:               req.Name,
		Description:        req.Description,
		ImplementationCost: req.ImplementationCost,
		AnnualSavings:      req.AnnualSavings,
		AnnualCO2Reduction: req.AnnualCO2Reduction,
		ROIPercentage:      roi,
		ImplementationDate: req.ImplementationDate,
		Status:             status,
	}

	if err := s.repo.CreateInitiative(ctx, initiative); err != nil {
		return nil, err
	}

	resp := toInitiativeResponse(initiative)
	return &resp, nil
}

func (s *Service) ListInitiatives(
	ctx context.Context,
	tenantID string,
) ([]InitiativeResponse, error) {
	initiatives, err := s.repo.ListInitiatives(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]InitiativeResponse, 0, len(initiatives))
	for i := range initiatives {
		responses = append(responses, toInitiativeResponse(&initiatives[i]))
	}

	return responses, nil
}

// FinancialImpact aggregates initiative economics with the carbon cost
// of this year's emissions. Payback is capped rather than reported as
// infinite when there are no savings.
func (s *Service) FinancialImpact(
	ctx context.Context,
	tenantID string,
) (*FinancialImpact, error) {
	initiatives, err := s.repo.ListInitiatives(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var totalInvestment, totalSavings, totalReduction float64
	for _, init := range initiatives {
		totalInvestment += init.ImplementationCost
		totalSavings += init.AnnualSavings
		totalReduction += init.AnnualCO2Reduction
	}

	currentEmissions, err := s.emissions.CurrentYearEmissionsKg(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	carbonCost := s.calculator.CarbonCost(currentEmissions)

	roi := 0.0
	if totalInvestment > 0 {
		roi = totalSavings / totalInvestment * 100
	}

	payback := maxPaybackYears
	if totalSavings > 0 {
		payback = totalInvestment / totalSavings
		if payback > maxPaybackYears {
			payback = maxPaybackYears
		}
	}

	reductionValue := s.calculator.ReductionValue(totalReduction, 0)

	return &FinancialImpact{
		TotalCarbonInvestment:   totalInvestment,
		AnnualCostSavings:       totalSavings,
		AnnualCO2Reduction:      totalReduction,
		CurrentAnnualCarbonCost: carbonCost.TotalCarbonCost,
		AnnualROIPercentage:     roi,
		PaybackPeriodYears:      payback,
		CarbonReductionValue:    reductionValue.TotalFinancialValue,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
