// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	claims *AccessTokenClaims
	err    error
}

func (f *fakeVerifier) VerifyAccessToken(
	context.Context,
	string,
) (*AccessTokenClaims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

type fakeDenials struct {
	userIDs      []string
	attemptedIDs []string
}

func (f *fakeDenials) RecordDenial(
	_ context.Context,
	userID, _, attemptedID, _ string,
) {
	f.userIDs = append(f.userIDs, userID)
	f.attemptedIDs = append(f.attemptedIDs, attemptedID)
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticator_MissingToken(t *testing.T) {
	verifier := &fakeVerifier{}
	called := false

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	Authenticator(verifier)(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticator_InvalidToken(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("bad signature")}
	called := false

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-valid")
	rec := httptest.NewRecorder()

	Authenticator(verifier)(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.False(t, called)
}

func TestAuthenticator_PopulatesContext(t *testing.T) {
	verifier := &fakeVerifier{claims: &AccessTokenClaims{
		UserID:   "user-1",
		TenantID: "tenant-1",
		Role:     "manager",
	}}

	var gotUser, gotTenant, gotRole string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = GetUserID(r.Context())
		gotTenant = GetTenantID(r.Context())
		gotRole = GetUserRole(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()

	Authenticator(verifier)(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", gotUser)
	assert.Equal(t, "tenant-1", gotTenant)
	assert.Equal(t, "manager", gotRole)
}

func newCompanyRouter(denials DenialRecorder, called *bool) chi.Router {
	router := chi.NewRouter()
	router.Route("/companies/{companyID}", func(r chi.Router) {
		r.Use(RequireCompany(denials))
		r.Get("/emissions", func(w http.ResponseWriter, _ *http.Request) {
			*called = true
			w.WriteHeader(http.StatusOK)
		})
	})
	return router
}

func authedContext(req *http.Request, userID, tenantID, role string) *http.Request {
	ctx := req.Context()
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, TenantIDKey, tenantID)
	ctx = context.WithValue(ctx, UserRoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireCompany_MatchingTenantPasses(t *testing.T) {
	called := false
	router := newCompanyRouter(nil, &called)

	req := httptest.NewRequest(http.MethodGet, "/companies/alpha/emissions", nil)
	req = authedContext(req, "user-1", "alpha", "admin")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireCompany_MismatchDeniedAndRecorded(t *testing.T) {
	denials := &fakeDenials{}
	called := false
	router := newCompanyRouter(denials, &called)

	req := httptest.NewRequest(http.MethodGet, "/companies/beta/emissions", nil)
	req = authedContext(req, "user-1", "alpha", "admin")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called, "downstream handler must not run on mismatch")
	require.Len(t, denials.attemptedIDs, 1)
	assert.Equal(t, "beta", denials.attemptedIDs[0])
	assert.Equal(t, "user-1", denials.userIDs[0])
}

func TestRequireCompany_UnauthenticatedRejected(t *testing.T) {
	called := false
	router := newCompanyRouter(nil, &called)

	req := httptest.NewRequest(http.MethodGet, "/companies/alpha/emissions", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireRole_AllowsListedRolesOnly(t *testing.T) {
	cases := []struct {
		role     string
		wantCode int
	}{
		{"admin", http.StatusOK},
		{"manager", http.StatusOK},
		{"analyst", http.StatusOK},
		{"viewer", http.StatusForbidden},
	}

	for _, tc := range cases {
		called := false

		req := httptest.NewRequest(http.MethodPost, "/write", nil)
		req = authedContext(req, "user-1", "alpha", tc.role)
		rec := httptest.NewRecorder()

		RequireWriter(okHandler(&called)).ServeHTTP(rec, req)

		assert.Equal(t, tc.wantCode, rec.Code, "role %s", tc.role)
		assert.Equal(t, tc.wantCode == http.StatusOK, called, "role %s", tc.role)
	}
}

func TestRequireAdmin_RejectsManager(t *testing.T) {
	called := false

	req := httptest.NewRequest(http.MethodDelete, "/users/u2", nil)
	req = authedContext(req, "user-1", "alpha", "manager")
	rec := httptest.NewRecorder()

	RequireAdmin(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestExtractToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, ExtractToken(req))

	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", ExtractToken(req))

	req.Header.Set("Authorization", "bearer lower-scheme")
	assert.Equal(t, "lower-scheme", ExtractToken(req))

	req.Header.Set("Authorization", "Basic dXNlcg==")
	assert.Empty(t, ExtractToken(req))
}
