// AngelaMos | 2026
// handler.go

package supplier

import (
	"encoding/json"
	"errors"
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
	r.Route("/suppliers", func(r chi.Router) {
		r.Get("/", h.ListSuppliers)
		r.With(middleware.RequireWriter).Post("/", h.CreateSupplier)
	})

	r.Route("/supply-chain-emissions", func(r chi.Router) {
		r.Get("/", h.ListChainEmissions)
		r.With(middleware.RequireWriter).Post("/", h.CreateChainEmission)
	})

	r.Route("/supply-chain", func(r chi.Router) {
		r.Get("/dashboard", h.Dashboard)
		r.Get("/targets", h.ListChainTargets)
		r.With(middleware.RequireWriter).Post("/targets", h.CreateChainTarget)
	})
}

func (h *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	tenantID := middleware.GetTenantID(r.Context())

	resp, err := h.service.CreateSupplier(r.Context(), tenantID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	suppliers, err := h.service.ListSuppliers(r.Context(), tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, suppliers)
}

func (h *Handler) CreateChainEmission(w http.ResponseWriter, r *http.Request) {
	var req CreateChainEmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	tenantID := middleware.GetTenantID(r.Context())

	resp, err := h.service.CreateChainEmission(r.Context(), tenantID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "supplier")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) ListChainEmissions(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	emissions, err := h.service.ListChainEmissions(r.Context(), tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, emissions)
}

func (h *Handler) CreateChainTarget(w http.ResponseWriter, r *http.Request) {
	var req CreateChainTargetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	tenantID := middleware.GetTenantID(r.Context())

	resp, err := h.service.CreateChainTarget(r.Context(), tenantID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "supplier")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) ListChainTargets(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	targets, err := h.service.ListChainTargets(r.Context(), tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, targets)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	dashboard, err := h.service.Dashboard(r.Context(), tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, dashboard)
}
