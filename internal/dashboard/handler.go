// AngelaMos | 2026
// handler.go

package dashboard

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/climabill/backend/internal/core"
	"github.com/climabill/backend/internal/emission"
	"github.com/climabill/backend/internal/initiative"
	"github.com/climabill/backend/internal/middleware"
	"github.com/climabill/backend/internal/tenant"
)

// Emissions above this annual total flag compliance standards for
// attention.
const complianceThresholdKg = 100_000.0

type Response struct {
	PeriodStart     time.Time                   `json:"period_start"`
	PeriodEnd       time.Time                   `json:"period_end"`
	Summary         *emission.SummaryResponse   `json:"summary"`
	Trend           []emission.TrendPoint       `json:"emissions_trend"`
	TopSources      []emission.TopSource        `json:"top_emission_sources"`
	TargetProgress  []initiative.TargetProgress `json:"target_progress"`
	FinancialImpact *initiative.FinancialImpact `json:"financial_impact"`
	Compliance      map[string]string           `json:"compliance_status"`
}

type Handler struct {
	emissions   *emission.Service
	initiatives *initiative.Service
	tenants     *tenant.Service
}

func NewHandler(
	emissions *emission.Service,
	initiatives *initiative.Service,
	tenants *tenant.Service,
) *Handler {
	return &Handler{
		emissions:   emissions,
		initiatives: initiatives,
		tenants:     tenants,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.Get)
}

// Get assembles the company dashboard: period summary, monthly trend,
// top sources, target progress, financial impact and a per-standard
// compliance heuristic.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.GetTenantID(ctx)

	months, _ := strconv.Atoi(r.URL.Query().Get("months"))
	if months < 1 || months > 120 {
		months = 12
	}

	summary, err := h.emissions.Summary(ctx, tenantID, months)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	trend, err := h.emissions.Trend(ctx, tenantID, months)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	topSources, err := h.emissions.TopSources(ctx, tenantID, 5)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	progress, err := h.initiatives.TargetProgress(ctx, tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	impact, err := h.initiatives.FinancialImpact(ctx, tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	profile, err := h.tenants.GetProfile(ctx, tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	compliance := make(map[string]string, len(profile.Compliance))
	for _, standard := range profile.Compliance {
		if summary.TotalEmissionsKg < complianceThresholdKg {
			compliance[standard] = "compliant"
		} else {
			compliance[standard] = "attention_needed"
		}
	}

	core.OK(w, Response{
		PeriodStart:     summary.PeriodStart,
		PeriodEnd:       summary.PeriodEnd,
		Summary:         summary,
		Trend:           trend,
		TopSources:      topSources,
		TargetProgress:  progress,
		FinancialImpact: impact,
		Compliance:      compliance,
	})
}
