// AngelaMos | 2026
// entity.go

package compliance

import (
	"strings"
)

const (
	StandardEUCSRD      = "eu_csrd"
	StandardSECClimate  = "sec_climate"
	StandardGHGProtocol = "ghg_protocol"
	StandardTCFD        = "tcfd"
)

const (
	StatusCompliant       = "compliant"
	StatusAttentionNeeded = "attention_needed"
)

// Requirement describes what one reporting standard demands of a
// company. MaterialityThresholdKg of zero means the standard applies
// regardless of emission volume.
type Requirement struct {
	Code                   string
	Name                   string
	Description            string
	MandatoryDisclosures   []string
	ReportingDeadline      string
	MaterialityThresholdKg float64
	VerificationRequired   bool
}

var requirements = map[string]Requirement{
	StandardEUCSRD: {
		Code:        StandardEUCSRD,
		Name:        "EU Corporate Sustainability Reporting Directive",
		Description: "Mandatory sustainability reporting for large EU companies",
		MandatoryDisclosures: []string{
			"Scope 1, 2, 3 emissions",
			"Carbon reduction targets",
			"Climate risk assessment",
			"Transition plan",
			"Biodiversity impact",
		},
		ReportingDeadline:      "Annual by April 30",
		MaterialityThresholdKg: 40000,
		VerificationRequired:   true,
	},
	StandardSECClimate: {
		Code:        StandardSECClimate,
		Name:        "SEC Climate Disclosure Rules",
		Description: "Climate-related financial risk disclosures for US public companies",
		MandatoryDisclosures: []string{
			"Climate-related risks",
			"Scope 1 and 2 emissions",
			"Climate targets and goals",
			"Transition activities",
		},
		ReportingDeadline:      "Annual with 10-K filing",
		MaterialityThresholdKg: 50000,
		VerificationRequired:   false,
	},
	StandardGHGProtocol: {
		Code:        StandardGHGProtocol,
		Name:        "GHG Protocol Corporate Standard",
		Description: "Global standard for corporate greenhouse gas accounting",
		MandatoryDisclosures: []string{
			"Scope 1 emissions",
			"Scope 2 emissions",
			"Emission factors used",
			"Methodologies applied",
		},
		ReportingDeadline:      "Annual",
		MaterialityThresholdKg: 25000,
		VerificationRequired:   false,
	},
	StandardTCFD: {
		Code:        StandardTCFD,
		Name:        "Task Force on Climate-related Financial Disclosures",
		Description: "Framework for climate-related financial risk disclosure",
		MandatoryDisclosures: []string{
			"Climate governance",
			"Climate strategy",
			"Climate risk management",
			"Metrics and targets",
		},
		ReportingDeadline:      "Annual",
		MaterialityThresholdKg: 0,
		VerificationRequired:   false,
	},
}

// standardOrder keeps catalog listings stable; map iteration is not.
var standardOrder = []string{
	StandardEUCSRD,
	StandardSECClimate,
	StandardGHGProtocol,
	StandardTCFD,
}

// RequirementFor resolves a standard code. Unknown codes get a bare
// placeholder so tenants carrying a standard the catalog does not know
// still see it on their dashboard.
func RequirementFor(code string) (Requirement, bool) {
	req, ok := requirements[code]
	if !ok {
		return Requirement{
			Code:              code,
			Name:              strings.ToUpper(code),
			ReportingDeadline: "Annual",
		}, false
	}
	return req, true
}

// Standards lists the supported reporting standards in catalog order.
func Standards() []Requirement {
	out := make([]Requirement, 0, len(standardOrder))
	for _, code := range standardOrder {
		out = append(out, requirements[code])
	}
	return out
}
