// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/climabill/backend/internal/audit"
	"github.com/climabill/backend/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrDomainExists       = errors.New("company domain already exists")
)

type UserInfo struct {
	ID           string
	TenantID     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type TenantInfo struct {
	ID            string
	Name          string
	Domain        string
	Plan          string
	Industry      string
	EmployeeCount int
	AnnualRevenue float64
	Headquarters  string
	Compliance    []string
	CreatedAt     time.Time
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, tenantID, id string) (*UserInfo, error)
	TouchLastLogin(ctx context.Context, userID string) error
}

type TenantProvider interface {
	GetByID(ctx context.Context, id string) (*TenantInfo, error)
}

// Registrar creates a tenant together with its first (admin) user and the
// tenant's default emission sources in one transaction; on any failure
// nothing is persisted. Duplicate email or domain surface as ErrEmailExists
// or ErrDomainExists.
type Registrar interface {
	CreateTenantWithAdmin(
		ctx context.Context,
		tenant *TenantInfo,
		user *UserInfo,
	) error
}

type Service struct {
	users     UserProvider
	tenants   TenantProvider
	registrar Registrar
	jwt       *JWTManager
	audit     audit.Recorder
}

func NewService(
	users UserProvider,
	tenants TenantProvider,
	registrar Registrar,
	jwt *JWTManager,
	auditor audit.Recorder,
) *Service {
	return &Service{
		users:     users,
		tenants:   tenants,
		registrar: registrar,
		jwt:       jwt,
		audit:     auditor,
	}
}

// Login authenticates by email and password. "No such email" and "wrong
// password" are indistinguishable: both take a full hash comparison and
// both return ErrInvalidCredentials.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
	userAgent, ipAddress string,
) (*AuthResponse, error) {
	email := strings.ToLower(req.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing equalization; result is discarded
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			s.recordAuth(ctx, nil, nil, "login", audit.StatusFailed,
				map[string]any{"email": email}, ipAddress, userAgent)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, &user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		s.recordAuth(ctx, &user.TenantID, &user.ID, "login", audit.StatusFailed,
			nil, ipAddress, userAgent)
		return nil, ErrInvalidCredentials
	}

	tenant, err := s.tenants.GetByID(ctx, user.TenantID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}

	//nolint:errcheck // best-effort last-login bookkeeping
	_ = s.users.TouchLastLogin(ctx, user.ID)

	s.recordAuth(ctx, &user.TenantID, &user.ID, "login", audit.StatusSuccess,
		nil, ipAddress, userAgent)

	return s.createAuthResponse(user, tenant, false)
}

// Register creates a new company and its first user atomically, then
// issues a credential for the pair. The first user is always the tenant
// admin.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
	userAgent, ipAddress string,
) (*AuthResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	plan := req.Plan
	if plan == "" {
		plan = "professional"
	}

	compliance := req.Compliance
	if compliance == nil {
		compliance = []string{}
	}

	tenant := &TenantInfo{
		ID:            uuid.New().String(),
		Name:          req.CompanyName,
		Domain:        strings.ToLower(req.CompanyDomain),
		Plan:          plan,
		Industry:      req.Industry,
		EmployeeCount: req.EmployeeCount,
		AnnualRevenue: req.AnnualRevenue,
		Headquarters:  req.Headquarters,
		Compliance:    compliance,
	}

	user := &UserInfo{
		ID:           uuid.New().String(),
		TenantID:     tenant.ID,
		Email:        strings.ToLower(req.Email),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: passwordHash,
		Role:         "admin",
	}

	if err := s.registrar.CreateTenantWithAdmin(ctx, tenant, user); err != nil {
		if errors.Is(err, ErrEmailExists) || errors.Is(err, ErrDomainExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create tenant: %w", err)
	}

	s.recordAuth(ctx, &tenant.ID, &user.ID, "register", audit.StatusSuccess,
		map[string]any{"company": tenant.Name}, ipAddress, userAgent)

	return s.createAuthResponse(user, tenant, true)
}

func (s *Service) GetMe(
	ctx context.Context,
	tenantID, userID string,
) (*MeResponse, error) {
	user, err := s.users.GetByID(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &MeResponse{
		User:   toUserResponse(user),
		Tenant: toTenantResponse(tenant),
	}, nil
}

func (s *Service) createAuthResponse(
	user *UserInfo,
	tenant *TenantInfo,
	includeCompany bool,
) (*AuthResponse, error) {
	accessToken, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		UserID:   user.ID,
		TenantID: tenant.ID,
		Role:     user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	resp := &AuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().Add(s.jwt.config.AccessTokenExpire),
		User:        toUserResponse(user),
		Tenant:      toTenantResponse(tenant),
	}

	if includeCompany {
		company := resp.Tenant
		resp.Company = &company
	}

	return resp, nil
}

func (s *Service) recordAuth(
	ctx context.Context,
	tenantID, userID *string,
	action, status string,
	detail map[string]any,
	ipAddress, userAgent string,
) {
	if s.audit == nil {
		return
	}

	s.audit.Record(ctx, audit.Event{
		TenantID:  tenantID,
		UserID:    userID,
		Action:    action,
		Resource:  "auth",
		Detail:    detail,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Status:    status,
	})
}

func toUserResponse(u *UserInfo) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func toTenantResponse(t *TenantInfo) TenantResponse {
	return TenantResponse{
		ID:            t.ID,
		Name:          t.Name,
		Domain:        t.Domain,
		Plan:          t.Plan,
		Industry:      t.Industry,
		EmployeeCount: t.EmployeeCount,
		Compliance:    t.Compliance,
		CreatedAt:     t.CreatedAt,
	}
}
