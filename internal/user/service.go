// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/climabill/backend/internal/auth"
	"github.com/climabill/backend/internal/core"
	"github.com/climabill/backend/internal/tenant"
)

var ErrMaxUsersReached = errors.New("tenant seat limit reached")

// SeatPolicy exposes the tenant's plan-dependent seat limit.
type SeatPolicy interface {
	MaxSeats(ctx context.Context, tenantID string) (int, error)
}

type Service struct {
	repo  Repository
	seats SeatPolicy
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// BindSeatPolicy attaches the seat limit source after construction. The
// tenant service consumes this service for registration while this
// service consults the tenant's plan for seat checks, so one side of
// the pair is bound late.
func (s *Service) BindSeatPolicy(seats SeatPolicy) {
	s.seats = seats
}

var (
	_ auth.UserProvider   = (*Service)(nil)
	_ tenant.AdminCreator = (*Service)(nil)
)

// GetByEmail satisfies auth.UserProvider for login.
func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

// GetByID satisfies auth.UserProvider; lookups stay inside the caller's
// tenant.
func (s *Service) GetByID(
	ctx context.Context,
	tenantID, id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func (s *Service) TouchLastLogin(ctx context.Context, userID string) error {
	return s.repo.TouchLastLogin(ctx, userID)
}

// CreateAdminInTx inserts the first user of a freshly registered tenant
// using the registration transaction's connection.
func (s *Service) CreateAdminInTx(
	ctx context.Context,
	tx core.DBTX,
	info *auth.UserInfo,
) error {
	user := &User{
		ID:           info.ID,
		TenantID:     info.TenantID,
		Email:        info.Email,
		PasswordHash: info.PasswordHash,
		FirstName:    info.FirstName,
		LastName:     info.LastName,
		Role:         RoleAdmin,
	}

	if err := NewRepository(tx).Create(ctx, user); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return auth.ErrEmailExists
		}
		return err
	}

	info.CreatedAt = user.CreatedAt
	return nil
}

func (s *Service) List(
	ctx context.Context,
	tenantID string,
	params ListUsersParams,
) (*UserListResponse, error) {
	users, total, err := s.repo.List(ctx, tenantID, params)
	if err != nil {
		return nil, err
	}

	return &UserListResponse{
		Users: ToUserResponseList(users),
		Total: total,
	}, nil
}

// Create adds a team member to an existing tenant, enforcing the plan's
// seat limit.
func (s *Service) Create(
	ctx context.Context,
	tenantID string,
	req CreateUserRequest,
) (*UserResponse, error) {
	maxSeats, err := s.seats.MaxSeats(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("seat limit: %w", err)
	}

	active, err := s.repo.CountActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if active >= maxSeats {
		return nil, ErrMaxUsersReached
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Email:        strings.ToLower(req.Email),
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *Service) UpdateRole(
	ctx context.Context,
	tenantID, userID, role string,
) error {
	return s.repo.UpdateRole(ctx, tenantID, userID, role)
}

func (s *Service) Delete(ctx context.Context, tenantID, userID string) error {
	return s.repo.SoftDelete(ctx, tenantID, userID)
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		TenantID:     u.TenantID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}
