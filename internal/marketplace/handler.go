// AngelaMos | 2026
// handler.go

package marketplace

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

// RegisterRoutes mounts the marketplace endpoints. The catalog is global;
// purchase and retire act on the tenant taken from the credential, never
// from the request body.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/marketplace", func(r chi.Router) {
		r.Get("/projects", h.ListProjects)
		r.Post("/purchase", h.Purchase)
		r.Post("/retire", h.Retire)
		r.Get("/verify/{certificateID}", h.Verify)
	})
}

// RegisterCertificateRoutes mounts the tenant-scoped certificate listing
// on an already guarded router.
func (h *Handler) RegisterCertificateRoutes(r chi.Router) {
	r.Get("/certificates", h.ListCertificates)
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	filters := ProjectFilters{
		ProjectType: r.URL.Query().Get("project_type"),
	}
	if maxPrice, err := strconv.ParseFloat(
		r.URL.Query().Get("max_price"), 64); err == nil {
		filters.MaxPrice = maxPrice
	}
	if minRating, err := strconv.ParseFloat(
		r.URL.Query().Get("min_rating"), 64); err == nil {
		filters.MinRating = minRating
	}

	projects, err := h.service.ListProjects(r.Context(), filters)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, projects)
}

func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	tenantID := middleware.GetTenantID(r.Context())

	cert, err := h.service.Purchase(r.Context(), tenantID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "offset project")
			return
		}
		if errors.Is(err, ErrInsufficientCredits) {
			core.BadRequest(w, "insufficient credits available")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, cert)
}

func (h *Handler) Retire(w http.ResponseWriter, r *http.Request) {
	var req RetireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	tenantID := middleware.GetTenantID(r.Context())

	cert, err := h.service.Retire(r.Context(), tenantID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "certificate")
			return
		}
		if errors.Is(err, ErrAlreadyRetired) {
			core.JSONError(w, core.NewAppError(
				err,
				"certificate already retired",
				http.StatusConflict,
				core.CodeConflict,
			))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, cert)
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	serial := chi.URLParam(r, "certificateID")
	if serial == "" {
		core.BadRequest(w, "certificate ID required")
		return
	}

	result, err := h.service.Verify(r.Context(), serial)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "certificate")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, result)
}

func (h *Handler) ListCertificates(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	certs, err := h.service.ListCertificates(r.Context(), tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, certs)
}
