// AngelaMos | 2026
// service.go

package compliance

import (
	"context"
	"fmt"
	"time"

	"github.com/climabill/backend/internal/core"
	"github.com/climabill/backend/internal/emission"
	"github.com/climabill/backend/internal/initiative"
	"github.com/climabill/backend/internal/tenant"
)

// TenantReader supplies the company profile whose compliance_standards
// drive the dashboard.
type TenantReader interface {
	GetProfile(ctx context.Context, tenantID string) (*tenant.ProfileResponse, error)
}

// EmissionsReader supplies the reporting-year totals and the source
// inventory the methodology sections disclose.
type EmissionsReader interface {
	SummaryForYear(ctx context.Context, tenantID string, year int) (*emission.SummaryResponse, error)
	ListSources(ctx context.Context, tenantID string) ([]emission.SourceResponse, error)
}

// PortfolioReader supplies the targets and initiatives the transition
// sections disclose.
type PortfolioReader interface {
	ListTargets(ctx context.Context, tenantID string) ([]initiative.TargetResponse, error)
	ListInitiatives(ctx context.Context, tenantID string) ([]initiative.InitiativeResponse, error)
}

type Service struct {
	tenants   TenantReader
	emissions EmissionsReader
	portfolio PortfolioReader
	now       func() time.Time
}

func NewService(
	tenants TenantReader,
	emissions EmissionsReader,
	portfolio PortfolioReader,
) *Service {
	return &Service{
		tenants:   tenants,
		emissions: emissions,
		portfolio: portfolio,
		now:       time.Now,
	}
}

// Dashboard reports the company's standing against every standard it
// has declared, measured on the current calendar year's emissions.
func (s *Service) Dashboard(
	ctx context.Context,
	tenantID string,
) (*DashboardResponse, error) {
	profile, err := s.tenants.GetProfile(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := s.now()

	summary, err := s.emissions.SummaryForYear(ctx, tenantID, now.Year())
	if err != nil {
		return nil, err
	}
	total := summary.TotalEmissionsKg

	detail := make(map[string]StandardStatus, len(profile.Compliance))
	overall := StatusCompliant
	var earliest *time.Time

	for _, code := range profile.Compliance {
		req, _ := RequirementFor(code)

		status := StatusCompliant
		if req.MaterialityThresholdKg > 0 && total > req.MaterialityThresholdKg {
			status = StatusAttentionNeeded
			overall = StatusAttentionNeeded
		}

		deadline := nextDeadline(code, now)
		if earliest == nil || deadline.Before(*earliest) {
			d := deadline
			earliest = &d
		}

		detail[code] = StandardStatus{
			Name:                 req.Name,
			Status:               status,
			TotalEmissionsKg:     total,
			ThresholdKg:          req.MaterialityThresholdKg,
			ReportingDeadline:    req.ReportingDeadline,
			VerificationRequired: req.VerificationRequired,
			NextDeadline:         deadline,
		}
	}

	return &DashboardResponse{
		CompanyID:             profile.ID,
		CompanyName:           profile.Name,
		Standards:             profile.Compliance,
		OverallStatus:         overall,
		TotalEmissionsKg:      total,
		StandardsDetail:       detail,
		NextReportingDeadline: earliest,
		Recommendations: []string{
			"Set up automated monitoring for emission thresholds",
			"Schedule third-party verification for EU CSRD compliance",
			"Prepare climate risk assessment for SEC filing",
		},
	}, nil
}

// Report generates the disclosure document for one standard and
// reporting year. Year zero means the current year.
func (s *Service) Report(
	ctx context.Context,
	tenantID, standard string,
	year int,
) (any, error) {
	if _, ok := requirements[standard]; !ok {
		return nil, fmt.Errorf(
			"%w: unsupported compliance standard %q",
			core.ErrInvalidInput, standard,
		)
	}

	if year == 0 {
		year = s.now().Year()
	}

	profile, err := s.tenants.GetProfile(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	summary, err := s.emissions.SummaryForYear(ctx, tenantID, year)
	if err != nil {
		return nil, err
	}

	switch standard {
	case StandardEUCSRD:
		return s.csrdReport(ctx, profile, summary, year)
	case StandardSECClimate:
		return s.secReport(ctx, profile, summary, year)
	case StandardGHGProtocol:
		return s.ghgReport(ctx, profile, summary, year)
	default:
		return s.tcfdReport(ctx, profile, summary, year)
	}
}

func (s *Service) csrdReport(
	ctx context.Context,
	profile *tenant.ProfileResponse,
	summary *emission.SummaryResponse,
	year int,
) (*CSRDReport, error) {
	req := requirements[StandardEUCSRD]
	total := summary.TotalEmissionsKg
	isMaterial := total > req.MaterialityThresholdKg

	targets, err := s.portfolio.ListTargets(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	initiatives, err := s.portfolio.ListInitiatives(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	intensity := 0.0
	if profile.EmployeeCount > 0 {
		intensity = total / float64(profile.EmployeeCount)
	}

	verification := "Self-reported"
	if req.VerificationRequired {
		verification = "Third-party verified"
	}

	disclosures := make([]TargetDisclosure, 0, len(targets))
	for _, t := range targets {
		if t.TargetYear < year {
			continue
		}
		required := 0.0
		if t.TargetYear > t.BaselineYear {
			required = t.BaselineEmissionsKg *
				(t.ReductionPercentage / 100) /
				float64(t.TargetYear-t.BaselineYear)
		}
		onTrack := (t.BaselineEmissionsKg - total) >=
			required*float64(year-t.BaselineYear)

		disclosures = append(disclosures, TargetDisclosure{
			TargetName:          t.Name,
			BaselineEmissionsKg: t.BaselineEmissionsKg,
			CurrentEmissionsKg:  total,
			TargetYear:          t.TargetYear,
			ReductionPercentage: t.ReductionPercentage,
			OnTrack:             onTrack,
			YearsRemaining:      t.TargetYear - year,
		})
	}

	plan := TransitionPlan{InitiativeCount: len(initiatives)}
	for _, init := range initiatives {
		plan.TotalInvestment += init.ImplementationCost
		plan.AnnualReductionKg += init.AnnualCO2Reduction
		switch init.Status {
		case initiative.StatusCompleted:
			plan.Completed++
		case initiative.StatusInProgress:
			plan.InProgress++
		}
	}

	return &CSRDReport{
		ReportHeader: s.header("EU CSRD Compliance Report", profile.Name, year),
		Materiality: MaterialityAssessment{
			IsMaterial:       isMaterial,
			ThresholdKg:      req.MaterialityThresholdKg,
			TotalEmissionsKg: total,
		},
		Emissions: EmissionsDisclosure{
			Scope1Kg:             summary.ScopeBreakdown[emission.ScopeOne],
			Scope2Kg:             summary.ScopeBreakdown[emission.ScopeTwo],
			Scope3Kg:             summary.ScopeBreakdown[emission.ScopeThree],
			TotalKg:              total,
			IntensityPerEmployee: intensity,
			VerificationStatus:   verification,
		},
		ClimateTargets: disclosures,
		TransitionPlan: plan,
		Status: CSRDComplianceStatus{
			Compliant:       !isMaterial,
			Recommendations: recommendationsFor(StandardEUCSRD, total, req.MaterialityThresholdKg),
		},
	}, nil
}

func (s *Service) secReport(
	ctx context.Context,
	profile *tenant.ProfileResponse,
	summary *emission.SummaryResponse,
	year int,
) (*SECReport, error) {
	req := requirements[StandardSECClimate]
	total := summary.TotalEmissionsKg
	scope1 := summary.ScopeBreakdown[emission.ScopeOne]
	scope2 := summary.ScopeBreakdown[emission.ScopeTwo]

	targets, err := s.portfolio.ListTargets(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	initiatives, err := s.portfolio.ListInitiatives(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	secTargets := make([]SECTarget, 0, len(targets))
	for _, t := range targets {
		secTargets = append(secTargets, SECTarget{
			TargetName:          t.Name,
			TargetYear:          t.TargetYear,
			ScopeCoverage:       t.ScopeCoverage,
			ReductionPercentage: t.ReductionPercentage,
		})
	}

	activities := make([]TransitionActivity, 0, len(initiatives))
	for _, init := range initiatives {
		activities = append(activities, TransitionActivity{
			Activity:         init.Name,
			Investment:       init.ImplementationCost,
			ExpectedImpactKg: init.AnnualCO2Reduction,
			Status:           init.Status,
		})
	}

	return &SECReport{
		ReportHeader: s.header("SEC Climate Disclosure Report", profile.Name, year),
		ClimateRisks: []ClimateRisk{
			{
				RiskType:           "Physical Risk",
				Description:        "Extreme weather events affecting operations",
				Likelihood:         "Medium",
				FinancialImpact:    "Medium",
				MitigationStrategy: "Business continuity planning and climate resilience measures",
			},
			{
				RiskType:           "Transition Risk",
				Description:        "Carbon pricing and regulatory changes",
				Likelihood:         "High",
				FinancialImpact:    "Medium",
				MitigationStrategy: "Carbon reduction initiatives and renewable energy adoption",
			},
		},
		Emissions: SECEmissions{
			Scope1Kg:          scope1,
			Scope2Kg:          scope2,
			CombinedScope12Kg: scope1 + scope2,
			ThresholdKg:       req.MaterialityThresholdKg,
			IsMaterial:        total > req.MaterialityThresholdKg,
		},
		ClimateTargets:       secTargets,
		TransitionActivities: activities,
		Status: SECComplianceStatus{
			Compliant:            true,
			FilingDeadline:       req.ReportingDeadline,
			VerificationRequired: req.VerificationRequired,
		},
	}, nil
}

func (s *Service) ghgReport(
	ctx context.Context,
	profile *tenant.ProfileResponse,
	summary *emission.SummaryResponse,
	year int,
) (*GHGReport, error) {
	sources, err := s.emissions.ListSources(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	methodologies := make([]Methodology, 0, len(sources))
	for _, src := range sources {
		methodologies = append(methodologies, Methodology{
			SourceName:        src.Name,
			Scope:             src.Scope,
			CalculationMethod: "Emission factor based calculation",
			DataQuality:       "Good - based on measured activity data",
		})
	}

	return &GHGReport{
		ReportHeader: s.header("GHG Protocol Corporate Inventory Report", profile.Name, year),
		Boundary: OrganizationalBoundary{
			ConsolidationApproach: "Operational Control",
			FacilitiesIncluded:    "All facilities under operational control",
			SubsidiariesIncluded:  "100% of controlled subsidiaries",
		},
		Emissions: GHGEmissionsSummary{
			Scope1Kg: summary.ScopeBreakdown[emission.ScopeOne],
			Scope2Kg: summary.ScopeBreakdown[emission.ScopeTwo],
			Scope3Kg: summary.ScopeBreakdown[emission.ScopeThree],
			TotalKg:  summary.TotalEmissionsKg,
			BaseYear: year,
			Units:    "kg CO2 equivalent",
		},
		Methodologies: methodologies,
		DataQuality: GHGDataQuality{
			OverallRating:         "Good",
			UncertaintyAssessment: "±15%",
			VerificationStatus:    "Internal verification completed",
		},
		Status: GHGComplianceStatus{
			Compliant:       true,
			StandardVersion: "GHG Protocol Corporate Standard (2004)",
			ReportingPrinciples: []string{
				"Relevance", "Completeness", "Consistency",
				"Transparency", "Accuracy",
			},
		},
	}, nil
}

func (s *Service) tcfdReport(
	ctx context.Context,
	profile *tenant.ProfileResponse,
	summary *emission.SummaryResponse,
	year int,
) (*TCFDReport, error) {
	targets, err := s.portfolio.ListTargets(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	intensity := 0.0
	if profile.AnnualRevenue > 0 {
		intensity = summary.TotalEmissionsKg / profile.AnnualRevenue
	}

	tcfdTargets := make([]TCFDTarget, 0, len(targets))
	for _, t := range targets {
		tcfdTargets = append(tcfdTargets, TCFDTarget{
			Target:   t.Name,
			Timeline: fmt.Sprintf("%d-%d", t.BaselineYear, t.TargetYear),
			Scope:    t.ScopeCoverage,
			Progress: "On track",
		})
	}

	return &TCFDReport{
		ReportHeader: s.header("TCFD Climate-Related Financial Disclosures", profile.Name, year),
		Governance: TCFDGovernance{
			BoardOversight:           "Board-level climate committee established",
			ManagementResponsibility: "Chief Sustainability Officer appointed",
			ClimateExpertise:         "Climate expertise present at board level",
		},
		Strategy: TCFDStrategy{
			ClimateScenarios: []string{
				"1.5°C scenario",
				"2°C scenario",
				"Current policies scenario",
			},
			BusinessImplications: "Carbon pricing may increase operational costs by 5-15%",
			StrategicPlanning:    "Climate considerations integrated into 5-year strategic plan",
		},
		RiskManagement: TCFDRiskManagement{
			IdentificationProcess: "Annual climate risk assessment conducted",
			AssessmentProcess:     "Quantitative and qualitative risk analysis",
			Integration:           "Climate risks integrated into enterprise risk management",
		},
		Metrics: TCFDMetrics{
			Scope1Kg:            summary.ScopeBreakdown[emission.ScopeOne],
			Scope2Kg:            summary.ScopeBreakdown[emission.ScopeTwo],
			Scope3Kg:            summary.ScopeBreakdown[emission.ScopeThree],
			IntensityPerRevenue: intensity,
			ClimateTargets:      tcfdTargets,
		},
		Status: TCFDComplianceStatus{
			Compliant:          true,
			FrameworkAlignment: "Aligned with TCFD recommendations",
			DisclosureQuality:  "Comprehensive disclosure across all four pillars",
		},
	}, nil
}

func (s *Service) header(reportType, company string, year int) ReportHeader {
	return ReportHeader{
		ReportType:    reportType,
		CompanyName:   company,
		ReportingYear: year,
		GeneratedAt:   s.now(),
	}
}

func recommendationsFor(standard string, total, threshold float64) []string {
	var out []string

	if threshold > 0 && total > threshold {
		out = append(out, "Consider implementing additional carbon reduction initiatives to stay below materiality threshold")
	}

	switch standard {
	case StandardEUCSRD:
		out = append(out,
			"Ensure third-party verification of emission data",
			"Develop comprehensive transition plan with interim targets",
			"Assess and report on biodiversity impacts",
			"Implement double materiality assessment",
		)
	case StandardSECClimate:
		out = append(out,
			"Conduct scenario analysis for climate-related risks",
			"Quantify financial impact of climate risks",
			"Ensure Scope 3 emissions are assessed for materiality",
		)
	}

	return out
}

// nextDeadline computes the closest reporting date for a standard.
// Fixed-date standards roll over to next year; the rest close out the
// current calendar year.
func nextDeadline(standard string, now time.Time) time.Time {
	year := now.Year()

	switch standard {
	case StandardEUCSRD:
		return time.Date(year+1, time.April, 30, 0, 0, 0, 0, time.UTC)
	case StandardSECClimate:
		return time.Date(year+1, time.March, 31, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
}
