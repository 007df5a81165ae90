// AngelaMos | 2026
// audit.go

package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/climabill/backend/internal/core"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusDenied  = "denied"
)

// Event is one append-only audit trail entry. TenantID is empty for
// failures that happen before a tenant is resolved (unknown login email).
type Event struct {
	ID         string         `db:"id"`
	TenantID   *string        `db:"tenant_id"`
	UserID     *string        `db:"user_id"`
	Action     string         `db:"action"`
	Resource   string         `db:"resource"`
	ResourceID string         `db:"resource_id"`
	Detail     map[string]any `db:"-"`
	DetailJSON []byte         `db:"detail"`
	IPAddress  string         `db:"ip_address"`
	UserAgent  string         `db:"user_agent"`
	Status     string         `db:"status"`
	CreatedAt  time.Time      `db:"created_at"`
}

type Recorder interface {
	Record(ctx context.Context, event Event)
}

type Repository interface {
	Insert(ctx context.Context, event *Event) error
	ListForTenant(ctx context.Context, tenantID string, limit int) ([]Event, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, event *Event) error {
	query := `
		INSERT INTO audit_events
			(id, tenant_id, user_id, action, resource, resource_id,
			 detail, ip_address, user_agent, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.TenantID,
		event.UserID,
		event.Action,
		event.Resource,
		event.ResourceID,
		event.DetailJSON,
		event.IPAddress,
		event.UserAgent,
		event.Status,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}

	return nil
}

func (r *repository) ListForTenant(
	ctx context.Context,
	tenantID string,
	limit int,
) ([]Event, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT id, tenant_id, user_id, action, resource, resource_id,
		       detail, ip_address, user_agent, status, created_at
		FROM audit_events
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var events []Event
	if err := r.db.SelectContext(ctx, &events, query, tenantID, limit); err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}

	return events, nil
}

// Service writes events best-effort: the audit trail never fails a
// request, it only logs when it cannot keep up.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Record(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	if event.Detail != nil {
		data, err := json.Marshal(event.Detail)
		if err != nil {
			s.logger.Warn("audit detail marshal failed", "error", err)
		} else {
			event.DetailJSON = data
		}
	}
	if event.DetailJSON == nil {
		event.DetailJSON = []byte("{}")
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		s.logger.Warn("audit event dropped",
			"action", event.Action,
			"error", err,
		)
	}
}

// ListForTenant returns the tenant's most recent trail entries, newest
// first, with the stored detail decoded.
func (s *Service) ListForTenant(
	ctx context.Context,
	tenantID string,
	limit int,
) ([]EventResponse, error) {
	events, err := s.repo.ListForTenant(ctx, tenantID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, toEventResponse(&events[i]))
	}

	return responses, nil
}

// RecordDenial adapts the cross-tenant denial hook from the request
// authorizer onto the audit trail.
func (s *Service) RecordDenial(
	ctx context.Context,
	userID, tenantID, attemptedID, path string,
) {
	tenant := tenantID
	user := userID

	s.Record(ctx, Event{
		TenantID: &tenant,
		UserID:   &user,
		Action:   "cross_tenant_denied",
		Resource: path,
		Detail: map[string]any{
			"attempted_company_id": attemptedID,
		},
		Status: StatusDenied,
	})
}

var _ Recorder = (*Service)(nil)
