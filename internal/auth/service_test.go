// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climabill/backend/internal/audit"
	"github.com/climabill/backend/internal/core"
)

type fakeUserProvider struct {
	byEmail    map[string]*UserInfo
	lastLogins []string
}

func (f *fakeUserProvider) GetByEmail(_ context.Context, email string) (*UserInfo, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserProvider) GetByID(_ context.Context, tenantID, id string) (*UserInfo, error) {
	for _, user := range f.byEmail {
		if user.ID == id && user.TenantID == tenantID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUserProvider) TouchLastLogin(_ context.Context, userID string) error {
	f.lastLogins = append(f.lastLogins, userID)
	return nil
}

type fakeTenantProvider struct {
	byID map[string]*TenantInfo
}

func (f *fakeTenantProvider) GetByID(_ context.Context, id string) (*TenantInfo, error) {
	tenant, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *tenant
	return &copied, nil
}

type fakeRegistrar struct {
	err     error
	tenants []*TenantInfo
	users   []*UserInfo
}

func (f *fakeRegistrar) CreateTenantWithAdmin(
	_ context.Context,
	tenant *TenantInfo,
	user *UserInfo,
) error {
	if f.err != nil {
		return f.err
	}
	tenant.CreatedAt = time.Now()
	user.CreatedAt = time.Now()
	f.tenants = append(f.tenants, tenant)
	f.users = append(f.users, user)
	return nil
}

type recordedEvent struct {
	action string
	status string
}

type fakeAuditor struct {
	events []recordedEvent
}

func (f *fakeAuditor) Record(_ context.Context, event audit.Event) {
	f.events = append(f.events, recordedEvent{
		action: event.Action,
		status: event.Status,
	})
}

type serviceFixture struct {
	svc     *Service
	users   *fakeUserProvider
	tenants *fakeTenantProvider
	reg     *fakeRegistrar
	audit   *fakeAuditor
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	rawKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	key, err := jwk.Import(rawKey)
	require.NoError(t, err)
	manager, err := NewJWTManagerFromKey(key, testJWTConfig())
	require.NoError(t, err)

	users := &fakeUserProvider{byEmail: map[string]*UserInfo{}}
	tenants := &fakeTenantProvider{byID: map[string]*TenantInfo{}}
	reg := &fakeRegistrar{}
	auditor := &fakeAuditor{}

	return &serviceFixture{
		svc:     NewService(users, tenants, reg, manager, auditor),
		users:   users,
		tenants: tenants,
		reg:     reg,
		audit:   auditor,
	}
}

func (f *serviceFixture) seedUser(t *testing.T, email, password, tenantID string) *UserInfo {
	t.Helper()

	hash, err := core.HashPassword(password)
	require.NoError(t, err)

	user := &UserInfo{
		ID:           "user-" + email,
		TenantID:     tenantID,
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    time.Now(),
	}
	f.users.byEmail[email] = user

	if _, ok := f.tenants.byID[tenantID]; !ok {
		f.tenants.byID[tenantID] = &TenantInfo{
			ID:       tenantID,
			Name:     "Tenant " + tenantID,
			Domain:   tenantID + ".example.com",
			Plan:     "professional",
			Industry: "saas",
		}
	}

	return user
}

func TestLogin_Success(t *testing.T) {
	f := newServiceFixture(t)
	user := f.seedUser(t, "alice@alpha.example", "correct-horse-battery", "alpha")

	resp, err := f.svc.Login(context.Background(), LoginRequest{
		Email:    "Alice@Alpha.example",
		Password: "correct-horse-battery",
	}, "test-agent", "203.0.113.9")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, "alpha", resp.Tenant.ID)
	assert.Nil(t, resp.Company)
	assert.Contains(t, f.users.lastLogins, user.ID)
	require.Len(t, f.audit.events, 1)
	assert.Equal(t, audit.StatusSuccess, f.audit.events[0].status)
}

func TestLogin_TokenBoundToUsersTenant(t *testing.T) {
	f := newServiceFixture(t)
	f.seedUser(t, "alice@alpha.example", "correct-horse-battery", "alpha")
	f.seedUser(t, "bob@beta.example", "another-password-42", "beta")

	resp, err := f.svc.Login(context.Background(), LoginRequest{
		Email:    "bob@beta.example",
		Password: "another-password-42",
	}, "", "")
	require.NoError(t, err)

	claims, err := f.svc.jwt.VerifyAccessToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "beta", claims.TenantID)
	assert.NotEqual(t, "alpha", claims.TenantID)
}

func TestLogin_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	f := newServiceFixture(t)
	f.seedUser(t, "alice@alpha.example", "correct-horse-battery", "alpha")

	_, unknownErr := f.svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@alpha.example",
		Password: "whatever-password",
	}, "", "")
	require.Error(t, unknownErr)

	_, wrongErr := f.svc.Login(context.Background(), LoginRequest{
		Email:    "alice@alpha.example",
		Password: "wrong-password-123",
	}, "", "")
	require.Error(t, wrongErr)

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())

	require.Len(t, f.audit.events, 2)
	for _, event := range f.audit.events {
		assert.Equal(t, audit.StatusFailed, event.status)
	}
}

func TestRegister_CreatesTenantAndAdminAtomically(t *testing.T) {
	f := newServiceFixture(t)

	resp, err := f.svc.Register(context.Background(), RegisterRequest{
		Email:         "Founder@NewCo.example",
		Password:      "a-strong-password",
		FirstName:     "Fern",
		LastName:      "Founder",
		CompanyName:   "NewCo",
		CompanyDomain: "newco.example",
		Industry:      "saas",
		EmployeeCount: 25,
	}, "", "")
	require.NoError(t, err)

	require.Len(t, f.reg.tenants, 1)
	require.Len(t, f.reg.users, 1)

	tenant := f.reg.tenants[0]
	user := f.reg.users[0]

	assert.Equal(t, tenant.ID, user.TenantID)
	assert.Equal(t, "admin", user.Role)
	assert.Equal(t, "founder@newco.example", user.Email)
	assert.Equal(t, "professional", tenant.Plan)
	assert.NotEqual(t, "a-strong-password", user.PasswordHash)

	require.NotNil(t, resp.Company)
	assert.Equal(t, tenant.ID, resp.Company.ID)

	claims, err := f.svc.jwt.VerifyAccessToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, claims.TenantID)
	assert.Equal(t, "admin", claims.Role)
}

func TestRegister_DuplicatePassesThroughSentinels(t *testing.T) {
	req := RegisterRequest{
		Email:         "founder@dupe.example",
		Password:      "a-strong-password",
		FirstName:     "Fern",
		LastName:      "Founder",
		CompanyName:   "Dupe",
		CompanyDomain: "dupe.example",
		Industry:      "saas",
		EmployeeCount: 5,
	}

	f := newServiceFixture(t)
	f.reg.err = ErrEmailExists
	_, err := f.svc.Register(context.Background(), req, "", "")
	assert.ErrorIs(t, err, ErrEmailExists)

	f = newServiceFixture(t)
	f.reg.err = ErrDomainExists
	_, err = f.svc.Register(context.Background(), req, "", "")
	assert.ErrorIs(t, err, ErrDomainExists)

	// Nothing persisted, nothing audited as success.
	assert.Empty(t, f.reg.tenants)
	assert.Empty(t, f.audit.events)
}

func TestGetMe_ScopedToTenant(t *testing.T) {
	f := newServiceFixture(t)
	alice := f.seedUser(t, "alice@alpha.example", "correct-horse-battery", "alpha")
	f.seedUser(t, "bob@beta.example", "another-password-42", "beta")

	me, err := f.svc.GetMe(context.Background(), "alpha", alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, me.User.ID)
	assert.Equal(t, "alpha", me.Tenant.ID)

	// The same user id under another tenant resolves nothing.
	_, err = f.svc.GetMe(context.Background(), "beta", alice.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
