// AngelaMos | 2026
// dto.go

package compliance

import (
	"time"
)

type StandardInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

type StandardsResponse struct {
	Standards []StandardInfo `json:"standards"`
}

type StandardStatus struct {
	Name                 string    `json:"name"`
	Status               string    `json:"status"`
	TotalEmissionsKg     float64   `json:"total_emissions_kg"`
	ThresholdKg          float64   `json:"threshold_kg"`
	ReportingDeadline    string    `json:"reporting_deadline"`
	VerificationRequired bool      `json:"verification_required"`
	NextDeadline         time.Time `json:"next_deadline"`
}

type DashboardResponse struct {
	CompanyID             string                    `json:"company_id"`
	CompanyName           string                    `json:"company_name"`
	Standards             []string                  `json:"compliance_standards"`
	OverallStatus         string                    `json:"overall_status"`
	TotalEmissionsKg      float64                   `json:"total_emissions_kg"`
	StandardsDetail       map[string]StandardStatus `json:"standards_detail"`
	NextReportingDeadline *time.Time                `json:"next_reporting_deadline,omitempty"`
	Recommendations       []string                  `json:"recommendations"`
}

// ReportHeader opens every generated report regardless of standard.
type ReportHeader struct {
	ReportType    string    `json:"report_type"`
	CompanyName   string    `json:"company_name"`
	ReportingYear int       `json:"reporting_year"`
	GeneratedAt   time.Time `json:"generated_date"`
}

type MaterialityAssessment struct {
	IsMaterial       bool    `json:"is_material"`
	ThresholdKg      float64 `json:"threshold_kg"`
	TotalEmissionsKg float64 `json:"total_emissions_kg"`
}

type EmissionsDisclosure struct {
	Scope1Kg             float64 `json:"scope_1_emissions"`
	Scope2Kg             float64 `json:"scope_2_emissions"`
	Scope3Kg             float64 `json:"scope_3_emissions"`
	TotalKg              float64 `json:"total_emissions"`
	IntensityPerEmployee float64 `json:"emissions_intensity_per_employee"`
	VerificationStatus   string  `json:"verification_status"`
}

type TargetDisclosure struct {
	TargetName          string  `json:"target_name"`
	BaselineEmissionsKg float64 `json:"baseline_emissions"`
	CurrentEmissionsKg  float64 `json:"current_emissions"`
	TargetYear          int     `json:"target_year"`
	ReductionPercentage float64 `json:"reduction_percentage"`
	OnTrack             bool    `json:"on_track"`
	YearsRemaining      int     `json:"years_remaining"`
}

type TransitionPlan struct {
	InitiativeCount   int     `json:"decarbonization_initiatives"`
	TotalInvestment   float64 `json:"total_investment"`
	AnnualReductionKg float64 `json:"expected_annual_reduction"`
	Completed         int     `json:"initiatives_completed"`
	InProgress        int     `json:"initiatives_in_progress"`
}

type CSRDComplianceStatus struct {
	Compliant       bool     `json:"compliant"`
	Recommendations []string `json:"recommendations"`
}

type CSRDReport struct {
	ReportHeader
	Materiality    MaterialityAssessment `json:"materiality_assessment"`
	Emissions      EmissionsDisclosure   `json:"emissions_disclosure"`
	ClimateTargets []TargetDisclosure    `json:"climate_targets"`
	TransitionPlan TransitionPlan        `json:"transition_plan"`
	Status         CSRDComplianceStatus  `json:"compliance_status"`
}

type ClimateRisk struct {
	RiskType           string `json:"risk_type"`
	Description        string `json:"description"`
	Likelihood         string `json:"likelihood"`
	FinancialImpact    string `json:"financial_impact"`
	MitigationStrategy string `json:"mitigation_strategy"`
}

type SECEmissions struct {
	Scope1Kg          float64 `json:"scope_1_emissions"`
	Scope2Kg          float64 `json:"scope_2_emissions"`
	CombinedScope12Kg float64 `json:"total_scope_1_and_2"`
	ThresholdKg       float64 `json:"materiality_threshold"`
	IsMaterial        bool    `json:"is_material"`
}

type SECTarget struct {
	TargetName          string   `json:"target_name"`
	TargetYear          int      `json:"target_year"`
	ScopeCoverage       []string `json:"scope_coverage"`
	ReductionPercentage float64  `json:"reduction_percentage"`
}

type TransitionActivity struct {
	Activity         string  `json:"activity"`
	Investment       float64 `json:"investment"`
	ExpectedImpactKg float64 `json:"expected_impact"`
	Status           string  `json:"status"`
}

type SECComplianceStatus struct {
	Compliant            bool   `json:"compliant"`
	FilingDeadline       string `json:"filing_deadline"`
	VerificationRequired bool   `json:"verification_required"`
}

type SECReport struct {
	ReportHeader
	ClimateRisks         []ClimateRisk        `json:"climate_related_risks"`
	Emissions            SECEmissions         `json:"ghg_emissions"`
	ClimateTargets       []SECTarget          `json:"climate_targets"`
	TransitionActivities []TransitionActivity `json:"transition_activities"`
	Status               SECComplianceStatus  `json:"compliance_status"`
}

type Methodology struct {
	SourceName        string `json:"source_name"`
	Scope             string `json:"scope"`
	CalculationMethod string `json:"calculation_method"`
	DataQuality       string `json:"data_quality"`
}

type OrganizationalBoundary struct {
	ConsolidationApproach string `json:"consolidation_approach"`
	FacilitiesIncluded    string `json:"facilities_included"`
	SubsidiariesIncluded  string `json:"subsidiaries_included"`
}

type GHGEmissionsSummary struct {
	Scope1Kg float64 `json:"scope_1_emissions"`
	Scope2Kg float64 `json:"scope_2_emissions"`
	Scope3Kg float64 `json:"scope_3_emissions"`
	TotalKg  float64 `json:"total_emissions"`
	BaseYear int     `json:"base_year"`
	Units    string  `json:"units"`
}

type GHGDataQuality struct {
	OverallRating         string `json:"overall_rating"`
	UncertaintyAssessment string `json:"uncertainty_assessment"`
	VerificationStatus    string `json:"verification_status"`
}

type GHGComplianceStatus struct {
	Compliant           bool     `json:"compliant"`
	StandardVersion     string   `json:"standard_version"`
	ReportingPrinciples []string `json:"reporting_principles"`
}

type GHGReport struct {
	ReportHeader
	Boundary      OrganizationalBoundary `json:"organizational_boundary"`
	Emissions     GHGEmissionsSummary    `json:"emissions_summary"`
	Methodologies []Methodology          `json:"methodologies"`
	DataQuality   GHGDataQuality         `json:"data_quality"`
	Status        GHGComplianceStatus    `json:"compliance_status"`
}

type TCFDGovernance struct {
	BoardOversight           string `json:"board_oversight"`
	ManagementResponsibility string `json:"management_responsibility"`
	ClimateExpertise         string `json:"climate_expertise"`
}

type TCFDStrategy struct {
	ClimateScenarios     []string `json:"climate_scenarios"`
	BusinessImplications string   `json:"business_implications"`
	StrategicPlanning    string   `json:"strategic_planning"`
}

type TCFDRiskManagement struct {
	IdentificationProcess string `json:"identification_process"`
	AssessmentProcess     string `json:"assessment_process"`
	Integration           string `json:"integration"`
}

type TCFDTarget struct {
	Target   string   `json:"target"`
	Timeline string   `json:"timeline"`
	Scope    []string `json:"scope"`
	Progress string   `json:"progress"`
}

type TCFDMetrics struct {
	Scope1Kg            float64      `json:"scope_1"`
	Scope2Kg            float64      `json:"scope_2"`
	Scope3Kg            float64      `json:"scope_3"`
	IntensityPerRevenue float64      `json:"intensity_metric"`
	ClimateTargets      []TCFDTarget `json:"climate_targets"`
}

type TCFDComplianceStatus struct {
	Compliant          bool   `json:"compliant"`
	FrameworkAlignment string `json:"framework_alignment"`
	DisclosureQuality  string `json:"disclosure_quality"`
}

type TCFDReport struct {
	ReportHeader
	Governance     TCFDGovernance       `json:"governance"`
	Strategy       TCFDStrategy         `json:"strategy"`
	RiskManagement TCFDRiskManagement   `json:"risk_management"`
	Metrics        TCFDMetrics          `json:"metrics_and_targets"`
	Status         TCFDComplianceStatus `json:"compliance_status"`
}
