// AngelaMos | 2026
// handler.go

package compliance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/climabill/backend/internal/core"
	"github.com/climabill/backend/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the tenant-scoped compliance endpoints on an
// already guarded router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/compliance", func(r chi.Router) {
		r.Get("/dashboard", h.Dashboard)
		r.Get("/report/{standard}", h.Report)
	})
}

// RegisterStandardsRoute mounts the standards catalog; it needs a
// credential but no company binding.
func (h *Handler) RegisterStandardsRoute(r chi.Router) {
	r.Get("/compliance/standards", h.Standards)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	resp, err := h.service.Dashboard(r.Context(), tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())
	standard := chi.URLParam(r, "standard")

	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	report, err := h.service.Report(r.Context(), tenantID, standard, year)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, err.Error())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, report)
}

func (h *Handler) Standards(w http.ResponseWriter, _ *http.Request) {
	standards := Standards()

	infos := make([]StandardInfo, 0, len(standards))
	for _, req := range standards {
		infos = append(infos, StandardInfo{
			Code:        req.Code,
			Name:        req.Name,
			Description: req.Description,
			Deadline:    req.ReportingDeadline,
		})
	}

	core.OK(w, StandardsResponse{Standards: infos})
}
