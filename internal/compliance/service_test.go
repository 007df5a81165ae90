// AngelaMos | 2026
// service_test.go

package compliance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climabill/backend/internal/core"
	"github.com/climabill/backend/internal/emission"
	"github.com/climabill/backend/internal/initiative"
	"github.com/climabill/backend/internal/tenant"
)

type fakeTenants struct {
	profile *tenant.ProfileResponse
}

func (f *fakeTenants) GetProfile(_ context.Context, _ string) (*tenant.ProfileResponse, error) {
	return f.profile, nil
}

type fakeEmissions struct {
	summary *emission.SummaryResponse
	sources []emission.SourceResponse
}

func (f *fakeEmissions) SummaryForYear(_ context.Context, _ string, year int) (*emission.SummaryResponse, error) {
	s := *f.summary
	s.PeriodStart = time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	s.PeriodEnd = time.Date(year, 12, 31, 23, 59, 59, 0, time.UTC)
	return &s, nil
}

func (f *fakeEmissions) ListSources(_ context.Context, _ string) ([]emission.SourceResponse, error) {
	return f.sources, nil
}

type fakePortfolio struct {
	targets     []initiative.TargetResponse
	initiatives []initiative.InitiativeResponse
}

func (f *fakePortfolio) ListTargets(_ context.Context, _ string) ([]initiative.TargetResponse, error) {
	return f.targets, nil
}

func (f *fakePortfolio) ListInitiatives(_ context.Context, _ string) ([]initiative.InitiativeResponse, error) {
	return f.initiatives, nil
}

func newTestService(totalKg float64, standards ...string) (*Service, *fakePortfolio) {
	portfolio := &fakePortfolio{}

	svc := NewService(
		&fakeTenants{profile: &tenant.ProfileResponse{
			ID:            "tenant-1",
			Name:          "Acme Climate",
			EmployeeCount: 50,
			AnnualRevenue: 2_000_000,
			Compliance:    standards,
		}},
		&fakeEmissions{
			summary: &emission.SummaryResponse{
				TotalEmissionsKg: totalKg,
				ScopeBreakdown: map[string]float64{
					emission.ScopeOne:   totalKg * 0.2,
					emission.ScopeTwo:   totalKg * 0.3,
					emission.ScopeThree: totalKg * 0.5,
				},
				SourceBreakdown: map[string]float64{},
			},
		},
		portfolio,
	)
	svc.now = func() time.Time {
		return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	}

	return svc, portfolio
}

func TestDashboard_BelowThresholdsIsCompliant(t *testing.T) {
	svc, _ := newTestService(20000, StandardEUCSRD, StandardGHGProtocol)

	resp, err := svc.Dashboard(context.Background(), "tenant-1")
	require.NoError(t, err)

	assert.Equal(t, StatusCompliant, resp.OverallStatus)
	assert.Equal(t, StatusCompliant, resp.StandardsDetail[StandardEUCSRD].Status)
	assert.Equal(t, StatusCompliant, resp.StandardsDetail[StandardGHGProtocol].Status)
	assert.InDelta(t, 20000, resp.TotalEmissionsKg, 0.001)
}

func TestDashboard_ExceededThresholdFlagsStandard(t *testing.T) {
	svc, _ := newTestService(45000, StandardEUCSRD, StandardSECClimate)

	resp, err := svc.Dashboard(context.Background(), "tenant-1")
	require.NoError(t, err)

	// 45000 exceeds the 40000 CSRD threshold but not SEC's 50000.
	assert.Equal(t, StatusAttentionNeeded, resp.StandardsDetail[StandardEUCSRD].Status)
	assert.Equal(t, StatusCompliant, resp.StandardsDetail[StandardSECClimate].Status)
	assert.Equal(t, StatusAttentionNeeded, resp.OverallStatus)
}

func TestDashboard_ZeroThresholdAlwaysCompliant(t *testing.T) {
	svc, _ := newTestService(9_999_999, StandardTCFD)

	resp, err := svc.Dashboard(context.Background(), "tenant-1")
	require.NoError(t, err)

	assert.Equal(t, StatusCompliant, resp.StandardsDetail[StandardTCFD].Status)
	assert.Equal(t, StatusCompliant, resp.OverallStatus)
}

func TestDashboard_PicksEarliestDeadline(t *testing.T) {
	svc, _ := newTestService(1000, StandardEUCSRD, StandardSECClimate, StandardGHGProtocol)

	resp, err := svc.Dashboard(context.Background(), "tenant-1")
	require.NoError(t, err)

	// GHG Protocol closes out the current year; the fixed-date
	// standards roll over to 2027.
	require.NotNil(t, resp.NextReportingDeadline)
	assert.Equal(t,
		time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		*resp.NextReportingDeadline,
	)
	assert.Equal(t,
		time.Date(2027, time.April, 30, 0, 0, 0, 0, time.UTC),
		resp.StandardsDetail[StandardEUCSRD].NextDeadline,
	)
}

func TestDashboard_UnknownStandardGetsPlaceholder(t *testing.T) {
	svc, _ := newTestService(1000, "iso_14064")

	resp, err := svc.Dashboard(context.Background(), "tenant-1")
	require.NoError(t, err)

	detail, ok := resp.StandardsDetail["iso_14064"]
	require.True(t, ok)
	assert.Equal(t, "ISO_14064", detail.Name)
	assert.Equal(t, StatusCompliant, detail.Status)
}

func TestReport_UnknownStandardRejected(t *testing.T) {
	svc, _ := newTestService(1000, StandardEUCSRD)

	_, err := svc.Report(context.Background(), "tenant-1", "iso_14064", 0)
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestReport_CSRDMaterialityAndRecommendations(t *testing.T) {
	svc, portfolio := newTestService(60000, StandardEUCSRD)
	portfolio.initiatives = []initiative.InitiativeResponse{
		{Name: "LED retrofit", ImplementationCost: 10000, AnnualCO2Reduction: 4000, Status: initiative.StatusCompleted},
		{Name: "Fleet electrification", ImplementationCost: 90000, AnnualCO2Reduction: 20000, Status: initiative.StatusInProgress},
	}

	out, err := svc.Report(context.Background(), "tenant-1", StandardEUCSRD, 2026)
	require.NoError(t, err)

	report, ok := out.(*CSRDReport)
	require.True(t, ok)

	assert.True(t, report.Materiality.IsMaterial)
	assert.False(t, report.Status.Compliant)
	assert.Contains(t, report.Status.Recommendations,
		"Consider implementing additional carbon reduction initiatives to stay below materiality threshold")

	assert.Equal(t, 2026, report.ReportingYear)
	assert.InDelta(t, 60000.0/50, report.Emissions.IntensityPerEmployee, 0.001)
	assert.Equal(t, "Third-party verified", report.Emissions.VerificationStatus)

	assert.Equal(t, 2, report.TransitionPlan.InitiativeCount)
	assert.InDelta(t, 100000, report.TransitionPlan.TotalInvestment, 0.001)
	assert.Equal(t, 1, report.TransitionPlan.Completed)
	assert.Equal(t, 1, report.TransitionPlan.InProgress)
}

func TestReport_CSRDSkipsExpiredTargets(t *testing.T) {
	svc, portfolio := newTestService(10000, StandardEUCSRD)
	portfolio.targets = []initiative.TargetResponse{
		{Name: "Old target", BaselineYear: 2015, TargetYear: 2020, BaselineEmissionsKg: 50000, ReductionPercentage: 30},
		{Name: "Net zero 2030", BaselineYear: 2024, TargetYear: 2030, BaselineEmissionsKg: 50000, ReductionPercentage: 50},
	}

	out, err := svc.Report(context.Background(), "tenant-1", StandardEUCSRD, 2026)
	require.NoError(t, err)

	report := out.(*CSRDReport)
	require.Len(t, report.ClimateTargets, 1)
	assert.Equal(t, "Net zero 2030", report.ClimateTargets[0].TargetName)
	assert.Equal(t, 4, report.ClimateTargets[0].YearsRemaining)
}

func TestReport_SECCombinesScopeOneAndTwo(t *testing.T) {
	svc, _ := newTestService(10000, StandardSECClimate)

	out, err := svc.Report(context.Background(), "tenant-1", StandardSECClimate, 2026)
	require.NoError(t, err)

	report, ok := out.(*SECReport)
	require.True(t, ok)

	assert.InDelta(t, 2000, report.Emissions.Scope1Kg, 0.001)
	assert.InDelta(t, 3000, report.Emissions.Scope2Kg, 0.001)
	assert.InDelta(t, 5000, report.Emissions.CombinedScope12Kg, 0.001)
	assert.False(t, report.Emissions.IsMaterial)
	assert.Len(t, report.ClimateRisks, 2)
}

func TestReport_GHGListsSourceMethodologies(t *testing.T) {
	svc, _ := newTestService(10000, StandardGHGProtocol)
	emissions := svc.emissions.(*fakeEmissions)
	emissions.sources = []emission.SourceResponse{
		{Name: "Office Electricity", Scope: emission.ScopeTwo},
		{Name: "Business Travel", Scope: emission.ScopeThree},
	}

	out, err := svc.Report(context.Background(), "tenant-1", StandardGHGProtocol, 2026)
	require.NoError(t, err)

	report, ok := out.(*GHGReport)
	require.True(t, ok)

	require.Len(t, report.Methodologies, 2)
	assert.Equal(t, "Office Electricity", report.Methodologies[0].SourceName)
	assert.Equal(t, emission.ScopeTwo, report.Methodologies[0].Scope)
	assert.Equal(t, "kg CO2 equivalent", report.Emissions.Units)
}

func TestReport_TCFDIntensityPerRevenue(t *testing.T) {
	svc, portfolio := newTestService(10000, StandardTCFD)
	portfolio.targets = []initiative.TargetResponse{
		{Name: "Net zero 2030", BaselineYear: 2024, TargetYear: 2030, ScopeCoverage: []string{emission.ScopeOne}},
	}

	out, err := svc.Report(context.Background(), "tenant-1", StandardTCFD, 2026)
	require.NoError(t, err)

	report, ok := out.(*TCFDReport)
	require.True(t, ok)

	assert.InDelta(t, 10000.0/2_000_000, report.Metrics.IntensityPerRevenue, 1e-9)
	require.Len(t, report.Metrics.ClimateTargets, 1)
	assert.Equal(t, "2024-2030", report.Metrics.ClimateTargets[0].Timeline)
}

func TestReport_YearZeroDefaultsToCurrentYear(t *testing.T) {
	svc, _ := newTestService(10000, StandardGHGProtocol)

	out, err := svc.Report(context.Background(), "tenant-1", StandardGHGProtocol, 0)
	require.NoError(t, err)

	report := out.(*GHGReport)
	assert.Equal(t, 2026, report.ReportingYear)
}

func TestStandards_CatalogOrder(t *testing.T) {
	standards := Standards()

	require.Len(t, standards, 4)
	assert.Equal(t, StandardEUCSRD, standards[0].Code)
	assert.Equal(t, StandardTCFD, standards[3].Code)
	for _, req := range standards {
		assert.NotEmpty(t, req.Name)
		assert.NotEmpty(t, req.Description)
		assert.NotEmpty(t, req.MandatoryDisclosures)
	}
}
