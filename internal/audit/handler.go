// AngelaMos | 2026
// handler.go

package audit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/climabill/backend/internal/core"
	"github.com/climabill/backend/internal/middleware"
)

type EventResponse struct {
	ID         string         `json:"id"`
	UserID     *string        `json:"user_id,omitempty"`
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	ResourceID string         `json:"resource_id,omitempty"`
	Detail     map[string]any `json:"detail,omitempty"`
	IPAddress  string         `json:"ip_address,omitempty"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}

func toEventResponse(event *Event) EventResponse {
	resp := EventResponse{
		ID:         event.ID,
		UserID:     event.UserID,
		Action:     event.Action,
		Resource:   event.Resource,
		ResourceID: event.ResourceID,
		IPAddress:  event.IPAddress,
		Status:     event.Status,
		CreatedAt:  event.CreatedAt,
	}

	if len(event.DetailJSON) > 0 {
		// Stored detail is JSON we wrote ourselves; a decode failure
		// just leaves the field empty.
		_ = json.Unmarshal(event.DetailJSON, &resp.Detail) //nolint:errcheck
	}

	return resp
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the tenant audit trail on an already guarded
// router. History is for tenant admins only.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireAdmin).Get("/audit", h.List)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := h.service.ListForTenant(r.Context(), tenantID, limit)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, EventListResponse{Events: events, Total: len(events)})
}
