// AngelaMos | 2026
// handler.go

package emission

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

// RegisterRoutes mounts the tenant-scoped emission endpoints on an
// already guarded router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/emissions", func(r chi.Router) {
		r.Get("/", h.ListRecords)
		r.With(middleware.RequireWriter).Post("/", h.CreateRecord)
		r.Get("/summary", h.Summary)
		r.Get("/trend", h.Trend)
		r.Get("/sources", h.ListSources)
		r.With(middleware.RequireWriter).Post("/sources", h.CreateSource)
		r.Get("/sources/top", h.TopSources)
	})
}

// RegisterCalculatorRoutes mounts the stateless calculator and benchmark
// endpoints; these need a credential but no tenant path.
func (h *Handler) RegisterCalculatorRoutes(r chi.Router) {
	r.Route("/calculate", func(r chi.Router) {
		r.Post("/electricity", h.CalculateElectricity)
		r.Post("/fuel", h.CalculateFuel)
		r.Post("/travel", h.CalculateTravel)
		r.Post("/office", h.CalculateOffice)
	})
	r.Get("/benchmarks/{industry}", h.Benchmark)
}

func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	tenantID := middleware.GetTenantID(r.Context())

	resp, err := h.service.CreateRecord(r.Context(), tenantID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "emission source")
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, err.Error())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	resp, err := h.service.ListRecords(r.Context(), tenantID, limit, offset)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))

	summary, err := h.service.Summary(r.Context(), tenantID, months)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, summary)
}

func (h *Handler) Trend(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))

	trend, err := h.service.Trend(r.Context(), tenantID, months)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, trend)
}

func (h *Handler) ListSources(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	sources, err := h.service.ListSources(r.Context(), tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, sources)
}

func (h *Handler) CreateSource(w http.ResponseWriter, r *http.Request) {
	var req CreateSourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	tenantID := middleware.GetTenantID(r.Context())

	resp, err := h.service.CreateSource(r.Context(), tenantID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) TopSources(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	top, err := h.service.TopSources(r.Context(), tenantID, limit)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, top)
}

func (h *Handler) CalculateElectricity(w http.ResponseWriter, r *http.Request) {
	var req CalculateElectricityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	region := req.Region
	if region == "" {
		region = "us_average"
	}

	result := h.service.Calculator().Electricity(
		req.KWhConsumed,
		region,
		req.RenewablePercentage,
	)
	core.OK(w, result)
}

func (h *Handler) CalculateFuel(w http.ResponseWriter, r *http.Request) {
	var req CalculateFuelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result := h.service.Calculator().Fuel(req.FuelType, req.Quantity, req.Unit)
	core.OK(w, result)
}

func (h *Handler) CalculateTravel(w http.ResponseWriter, r *http.Request) {
	var req CalculateTravelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result := h.service.Calculator().Travel(req.Trips)
	core.OK(w, result)
}

func (h *Handler) CalculateOffice(w http.ResponseWriter, r *http.Request) {
	var req OfficeInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result := h.service.Calculator().Office(req)
	core.OK(w, result)
}

func (h *Handler) Benchmark(w http.ResponseWriter, r *http.Request) {
	industry := chi.URLParam(r, "industry")

	employeeCount, err := strconv.Atoi(r.URL.Query().Get("employee_count"))
	if err != nil || employeeCount < 1 {
		core.BadRequest(w, "employee_count must be a positive integer")
		return
	}

	result := h.service.Calculator().Benchmark(industry, employeeCount)
	core.OK(w, result)
}
