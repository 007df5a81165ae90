// AngelaMos | 2026
// service_test.go

package initiative

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climabill/backend/internal/emission"
)

type fakeRepository struct {
	targets     []Target
	initiatives []Initiative
}

func (f *fakeRepository) CreateTarget(_ context.Context, target *Target) error {
	target.CreatedAt = time.Now()
	f.targets = append(f.targets, *target)
	return nil
}

func (f *fakeRepository) ListTargets(_ context.Context, tenantID string) ([]Target, error) {
	var out []Target
	for _, t := range f.targets {
		if t.TenantID == tenantID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListActiveTargets(_ context.Context, tenantID string) ([]Target, error) {
	var out []Target
	for _, t := range f.targets {
		if t.TenantID == tenantID && t.Status == TargetActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepository) CreateInitiative(_ context.Context, initiative *Initiative) error {
	initiative.CreatedAt = time.Now()
	f.initiatives = append(f.initiatives, *initiative)
	return nil
}

func (f *fakeRepository) ListInitiatives(_ context.Context, tenantID string) ([]Initiative, error) {
	var out []Initiative
	for _, i := range f.initiatives {
		if i.TenantID == tenantID {
			out = append(out, i)
		}
	}
	return out, nil
}

type fakeEmissions struct {
	currentKg float64
}

func (f *fakeEmissions) CurrentYearEmissionsKg(context.Context, string) (float64, error) {
	return f.currentKg, nil
}

func newTestService(repo *fakeRepository, currentKg float64) *Service {
	return NewService(repo, &fakeEmissions{currentKg: currentKg}, emission.NewCalculator(50))
}

func TestTargetProgress_AchievedShareOfPlannedReduction(t *testing.T) {
	repo := &fakeRepository{}
	currentYear := time.Now().Year()
	repo.targets = append(repo.targets, Target{
		ID:                  "t1",
		TenantID:            "acme",
		Name:                "Net 30 by decade end",
		BaselineYear:        currentYear - 2,
		TargetYear:          currentYear + 2,
		BaselineEmissionsKg: 100_000,
		ReductionPercentage: 30,
		Status:              TargetActive,
	})

	// Current emissions 85k against a 100k -> 70k plan: half done.
	svc := newTestService(repo, 85_000)

	progress, err := svc.TargetProgress(context.Background(), "acme")
	require.NoError(t, err)
	require.Len(t, progress, 1)

	p := progress[0]
	assert.InDelta(t, 70_000, p.TargetEmissionsKg, 1e-6)
	assert.InDelta(t, 50.0, p.ProgressPercentage, 1e-6)
	// Halfway through the window, 50% expected: exactly on track.
	assert.True(t, p.OnTrack)
}

func TestTargetProgress_ClampsToRange(t *testing.T) {
	currentYear := time.Now().Year()
	base := Target{
		TenantID:            "acme",
		BaselineYear:        currentYear - 1,
		TargetYear:          currentYear + 9,
		BaselineEmissionsKg: 100_000,
		ReductionPercentage: 20,
		Status:              TargetActive,
	}

	regressed := base
	regressed.ID = "worse"
	overachieved := base
	overachieved.ID = "better"

	repo := &fakeRepository{targets: []Target{regressed}}
	svc := newTestService(repo, 150_000)

	progress, err := svc.TargetProgress(context.Background(), "acme")
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Zero(t, progress[0].ProgressPercentage)
	assert.False(t, progress[0].OnTrack)

	repo = &fakeRepository{targets: []Target{overachieved}}
	svc = newTestService(repo, 10_000)

	progress, err = svc.TargetProgress(context.Background(), "acme")
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.InDelta(t, 100.0, progress[0].ProgressPercentage, 1e-6)
	assert.True(t, progress[0].OnTrack)
}

func TestTargetProgress_SkipsInactiveTargets(t *testing.T) {
	currentYear := time.Now().Year()
	repo := &fakeRepository{targets: []Target{
		{
			ID:                  "done",
			TenantID:            "acme",
			BaselineYear:        currentYear - 5,
			TargetYear:          currentYear - 1,
			BaselineEmissionsKg: 50_000,
			ReductionPercentage: 10,
			Status:              TargetAchieved,
		},
	}}
	svc := newTestService(repo, 40_000)

	progress, err := svc.TargetProgress(context.Background(), "acme")
	require.NoError(t, err)
	assert.Empty(t, progress)
}

func TestCreateInitiative_ComputesROI(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo, 0)

	resp, err := svc.CreateInitiative(context.Background(), "acme", CreateInitiativeRequest{
		Name:               "LED retrofit",
		ImplementationCost: 20_000,
		AnnualSavings:      5_000,
		AnnualCO2Reduction: 12_000,
		ImplementationDate: time.Now(),
	})
	require.NoError(t, err)

	assert.InDelta(t, 25.0, resp.ROIPercentage, 1e-6)
	assert.Equal(t, StatusPlanned, resp.Status)
}

func TestCreateInitiative_ZeroCostHasZeroROI(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo, 0)

	resp, err := svc.CreateInitiative(context.Background(), "acme", CreateInitiativeRequest{
		Name:               "Thermostat policy",
		AnnualSavings:      1_000,
		ImplementationDate: time.Now(),
	})
	require.NoError(t, err)
	assert.Zero(t, resp.ROIPercentage)
}

func TestFinancialImpact_AggregatesInitiatives(t *testing.T) {
	repo := &fakeRepository{initiatives: []Initiative{
		{TenantID: "acme", ImplementationCost: 30_000, AnnualSavings: 10_000, AnnualCO2Reduction: 8_000},
		{TenantID: "acme", ImplementationCost: 10_000, AnnualSavings: 10_000, AnnualCO2Reduction: 2_000},
		{TenantID: "other", ImplementationCost: 99_999, AnnualSavings: 1, AnnualCO2Reduction: 1},
	}}
	svc := newTestService(repo, 200_000)

	impact, err := svc.FinancialImpact(context.Background(), "acme")
	require.NoError(t, err)

	assert.InDelta(t, 40_000, impact.TotalCarbonInvestment, 1e-6)
	assert.InDelta(t, 20_000, impact.AnnualCostSavings, 1e-6)
	assert.InDelta(t, 10_000, impact.AnnualCO2Reduction, 1e-6)
	// 200 tonnes at $50.
	assert.InDelta(t, 10_000, impact.CurrentAnnualCarbonCost, 1e-6)
	assert.InDelta(t, 50.0, impact.AnnualROIPercentage, 1e-6)
	assert.InDelta(t, 2.0, impact.PaybackPeriodYears, 1e-6)
	// 10 tonnes reduced at $50.
	assert.InDelta(t, 500.0, impact.CarbonReductionValue, 1e-6)
}

func TestFinancialImpact_PaybackCappedWithoutSavings(t *testing.T) {
	repo := &fakeRepository{initiatives: []Initiative{
		{TenantID: "acme", ImplementationCost: 50_000},
	}}
	svc := newTestService(repo, 0)

	impact, err := svc.FinancialImpact(context.Background(), "acme")
	require.NoError(t, err)

	assert.InDelta(t, 999.0, impact.PaybackPeriodYears, 1e-6)
	assert.Zero(t, impact.AnnualROIPercentage)
}
