// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climabill/backend/internal/core"
)

type fakeRepository struct {
	users map[string]*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: map[string]*User{}}
}

func (f *fakeRepository) Create(_ context.Context, user *User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return core.ErrDuplicateKey
		}
	}
	user.IsActive = true
	user.CreatedAt = time.Now()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, tenantID, id string) (*User, error) {
	user, ok := f.users[id]
	if !ok || user.TenantID != tenantID {
		return nil, core.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) UpdateRole(_ context.Context, tenantID, id, role string) error {
	user, ok := f.users[id]
	if !ok || user.TenantID != tenantID {
		return core.ErrNotFound
	}
	user.Role = role
	return nil
}

func (f *fakeRepository) TouchLastLogin(_ context.Context, id string) error {
	user, ok := f.users[id]
	if !ok {
		return core.ErrNotFound
	}
	now := time.Now()
	user.LastLoginAt = &now
	return nil
}

func (f *fakeRepository) SoftDelete(_ context.Context, tenantID, id string) error {
	user, ok := f.users[id]
	if !ok || user.TenantID != tenantID {
		return core.ErrNotFound
	}
	user.IsActive = false
	delete(f.users, id)
	return nil
}

func (f *fakeRepository) List(
	_ context.Context,
	tenantID string,
	_ ListUsersParams,
) ([]User, int, error) {
	var out []User
	for _, user := range f.users {
		if user.TenantID == tenantID {
			out = append(out, *user)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepository) CountActive(_ context.Context, tenantID string) (int, error) {
	count := 0
	for _, user := range f.users {
		if user.TenantID == tenantID && user.IsActive {
			count++
		}
	}
	return count, nil
}

type fixedSeats struct {
	max int
}

func (f *fixedSeats) MaxSeats(context.Context, string) (int, error) {
	return f.max, nil
}

func newSeatLimitedService(repo *fakeRepository, max int) *Service {
	svc := NewService(repo)
	svc.BindSeatPolicy(&fixedSeats{max: max})
	return svc
}

func memberRequest(email string) CreateUserRequest {
	return CreateUserRequest{
		Email:     email,
		Password:  "a-strong-password",
		FirstName: "Team",
		LastName:  "Member",
		Role:      RoleAnalyst,
	}
}

func TestCreate_WithinSeatLimit(t *testing.T) {
	repo := newFakeRepository()
	svc := newSeatLimitedService(repo, 5)

	resp, err := svc.Create(context.Background(), "alpha", memberRequest("New@Alpha.example"))
	require.NoError(t, err)

	assert.Equal(t, "new@alpha.example", resp.Email)
	assert.Equal(t, RoleAnalyst, resp.Role)

	stored, err := repo.GetByID(context.Background(), "alpha", resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "a-strong-password", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$argon2id$"))
}

func TestCreate_SeatLimitReached(t *testing.T) {
	repo := newFakeRepository()
	svc := newSeatLimitedService(repo, 2)

	_, err := svc.Create(context.Background(), "alpha", memberRequest("one@alpha.example"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "alpha", memberRequest("two@alpha.example"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "alpha", memberRequest("three@alpha.example"))
	assert.ErrorIs(t, err, ErrMaxUsersReached)
}

func TestCreate_SeatsCountedPerTenant(t *testing.T) {
	repo := newFakeRepository()
	svc := newSeatLimitedService(repo, 1)

	_, err := svc.Create(context.Background(), "alpha", memberRequest("one@alpha.example"))
	require.NoError(t, err)

	// Another tenant's headcount does not consume alpha's seats.
	_, err = svc.Create(context.Background(), "beta", memberRequest("one@beta.example"))
	require.NoError(t, err)
}

func TestGetByID_TenantScoped(t *testing.T) {
	repo := newFakeRepository()
	svc := newSeatLimitedService(repo, 10)

	resp, err := svc.Create(context.Background(), "alpha", memberRequest("user@alpha.example"))
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), "alpha", resp.ID)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), "beta", resp.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
