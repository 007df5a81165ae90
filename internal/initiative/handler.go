// AngelaMos | 2026
// handler.go

package initiative

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/climabill/backend/internal/core"
	"github.com/climabill/backend/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/targets", func(r chi.Router) {
		r.Get("/", h.ListTargets)
		r.With(middleware.RequireWriter).Post("/", h.CreateTarget)
		r.Get("/progress", h.TargetProgress)
	})

	r.Route("/initiatives", func(r chi.Router) {
		r.Get("/", h.ListInitiatives)
		r.With(middleware.RequireWriter).Post("/", h.CreateInitiative)
	})

	r.Get("/financial-impact", h.FinancialImpact)
}

func (h *Handler) CreateTarget(w http.ResponseWriter, r *http.Request) {
	var req CreateTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	tenantID := middleware.GetTenantID(r.Context())

	resp, err := h.service.CreateTarget(r.Context(), tenantID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) ListTargets(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	targets, err := h.service.ListTargets(r.Context(), tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, targets)
}

func (h *Handler) TargetProgress(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	progress, err := h.service.TargetProgress(r.Context(), tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, progress)
}

func (h *Handler) CreateInitiative(w http.ResponseWriter, r *http.Request) {
	var req CreateInitiativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	tenantID := middleware.GetTenantID(r.Context())

	resp, err := h.service.CreateInitiative(r.Context(), tenantID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) ListInitiatives(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	initiatives, err := h.service.ListInitiatives(r.Context(), tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, initiatives)
}

func (h *Handler) FinancialImpact(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	impact, err := h.service.FinancialImpact(r.Context(), tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, impact)
}
