// AngelaMos | 2026
// service.go

package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/climabill/backend/internal/auth"
	"github.com/climabill/backend/internal/core"
)

// AdminCreator persists the first user of a new tenant inside the
// registration transaction. A duplicate email surfaces as
// auth.ErrEmailExists.
type AdminCreator interface {
	CreateAdminInTx(ctx context.Context, tx core.DBTX, user *auth.UserInfo) error
}

// SourceSeeder inserts the industry-default emission sources for a new
// tenant inside the registration transaction.
type SourceSeeder interface {
	SeedDefaults(ctx context.Context, tx core.DBTX, tenantID, industry string) error
}

type Service struct {
	db      *sqlx.DB
	repo    Repository
	users   AdminCreator
	sources SourceSeeder
}

func NewService(
	db *sqlx.DB,
	repo Repository,
	users AdminCreator,
	sources SourceSeeder,
) *Service {
	return &Service{
		db:      db,
		repo:    repo,
		users:   users,
		sources: sources,
	}
}

var (
	_ auth.TenantProvider = (*Service)(nil)
	_ auth.Registrar      = (*Service)(nil)
)

// CreateTenantWithAdmin creates the tenant row, its admin user and the
// industry-default emission sources in a single transaction. Any failure
// rolls back all three.
func (s *Service) CreateTenantWithAdmin(
	ctx context.Context,
	info *auth.TenantInfo,
	user *auth.UserInfo,
) error {
	tenant := &Tenant{
		ID:            info.ID,
		Name:          info.Name,
		Domain:        info.Domain,
		Plan:          info.Plan,
		Industry:      info.Industry,
		EmployeeCount: info.EmployeeCount,
		AnnualRevenue: info.AnnualRevenue,
		Headquarters:  info.Headquarters,
		Compliance:    core.StringList(info.Compliance),
		MaxUsers:      MaxUsersForPlan(info.Plan),
	}

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		txRepo := NewRepository(tx)
		if err := txRepo.Create(ctx, tenant); err != nil {
			if errors.Is(err, core.ErrDuplicateKey) {
				return auth.ErrDomainExists
			}
			return err
		}

		if err := s.users.CreateAdminInTx(ctx, tx, user); err != nil {
			return err
		}

		return s.sources.SeedDefaults(ctx, tx, tenant.ID, tenant.Industry)
	})
	if err != nil {
		if errors.Is(err, auth.ErrDomainExists) ||
			errors.Is(err, auth.ErrEmailExists) {
			return err
		}
		return fmt.Errorf("register tenant: %w", err)
	}

	info.CreatedAt = tenant.CreatedAt
	user.CreatedAt = tenant.CreatedAt

	return nil
}

// GetByID satisfies auth.TenantProvider.
func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.TenantInfo, error) {
	tenant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &auth.TenantInfo{
		ID:            tenant.ID,
		Name:          tenant.Name,
		Domain:        tenant.Domain,
		Plan:          tenant.Plan,
		Industry:      tenant.Industry,
		EmployeeCount: tenant.EmployeeCount,
		AnnualRevenue: tenant.AnnualRevenue,
		Headquarters:  tenant.Headquarters,
		Compliance:    tenant.Compliance,
		CreatedAt:     tenant.CreatedAt,
	}, nil
}

// PlanForTenant satisfies the rate limiter's plan lookup.
func (s *Service) PlanForTenant(
	ctx context.Context,
	tenantID string,
) (string, error) {
	return s.repo.GetPlan(ctx, tenantID)
}

// MaxSeats reports the seat limit bound to the tenant's plan.
func (s *Service) MaxSeats(
	ctx context.Context,
	tenantID string,
) (int, error) {
	tenant, err := s.repo.GetByID(ctx, tenantID)
	if err != nil {
		return 0, err
	}
	return tenant.MaxUsers, nil
}

func (s *Service) GetProfile(
	ctx context.Context,
	tenantID string,
) (*ProfileResponse, error) {
	tenant, err := s.repo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	resp := toProfileResponse(tenant)
	return &resp, nil
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	tenantID string,
	req UpdateProfileRequest,
) (*ProfileResponse, error) {
	tenant, err := s.repo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Industry != nil {
		tenant.Industry = *req.Industry
	}
	if req.EmployeeCount != nil {
		tenant.EmployeeCount = *req.EmployeeCount
	}
	if req.AnnualRevenue != nil {
		tenant.AnnualRevenue = *req.AnnualRevenue
	}
	if req.Headquarters != nil {
		tenant.Headquarters = *req.Headquarters
	}
	if req.Compliance != nil {
		tenant.Compliance = core.StringList(req.Compliance)
	}

	if err := s.repo.Update(ctx, tenant); err != nil {
		return nil, err
	}

	resp := toProfileResponse(tenant)
	return &resp, nil
}

func (s *Service) Stats(
	ctx context.Context,
	tenantID string,
) (*StatsResponse, error) {
	return s.repo.Stats(ctx, tenantID)
}
