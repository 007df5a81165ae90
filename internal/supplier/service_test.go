// AngelaMos | 2026
// service_test.go

package supplier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climabill/backend/internal/core"
)

type fakeRepository struct {
	suppliers map[string]*Supplier
	emissions []ChainEmission
	targets   []ChainTarget
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{suppliers: map[string]*Supplier{}}
}

func (f *fakeRepository) CreateSupplier(_ context.Context, supplier *Supplier) error {
	supplier.CreatedAt = time.Now()
	copied := *supplier
	f.suppliers[supplier.ID] = &copied
	return nil
}

func (f *fakeRepository) GetSupplier(_ context.Context, tenantID, id string) (*Supplier, error) {
	supplier, ok := f.suppliers[id]
	if !ok || supplier.TenantID != tenantID {
		return nil, core.ErrNotFound
	}
	copied := *supplier
	return &copied, nil
}

func (f *fakeRepository) ListSuppliers(_ context.Context, tenantID string) ([]Supplier, error) {
	var out []Supplier
	for _, supplier := range f.suppliers {
		if supplier.TenantID == tenantID {
			out = append(out, *supplier)
		}
	}
	return out, nil
}

func (f *fakeRepository) CreateChainEmission(_ context.Context, emission *ChainEmission) error {
	emission.CreatedAt = time.Now()
	f.emissions = append(f.emissions, *emission)
	return nil
}

func (f *fakeRepository) ListChainEmissions(_ context.Context, tenantID string) ([]ChainEmission, error) {
	var out []ChainEmission
	for _, emission := range f.emissions {
		if emission.TenantID == tenantID {
			out = append(out, emission)
		}
	}
	return out, nil
}

func (f *fakeRepository) CreateChainTarget(_ context.Context, target *ChainTarget) error {
	target.CreatedAt = time.Now()
	f.targets = append(f.targets, *target)
	return nil
}

func (f *fakeRepository) ListChainTargets(_ context.Context, tenantID string) ([]ChainTarget, error) {
	var out []ChainTarget
	for _, target := range f.targets {
		if target.TenantID == tenantID {
			out = append(out, target)
		}
	}
	return out, nil
}

func (f *fakeRepository) Dashboard(context.Context, string) (*DashboardResponse, error) {
	return &DashboardResponse{}, nil
}

func seedSupplier(repo *fakeRepository, id, tenantID string) {
	repo.suppliers[id] = &Supplier{
		ID:                 id,
		TenantID:           tenantID,
		Name:               "Supplier " + id,
		Industry:           "logistics",
		VerificationStatus: VerificationPending,
		PartnershipLevel:   PartnershipBasic,
	}
}

func chainEmissionRequest(supplierID string) CreateChainEmissionRequest {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return CreateChainEmissionRequest{
		SupplierID:      supplierID,
		EmissionType:    "upstream",
		Scope:           "scope_3",
		CO2EquivalentKg: 1500,
		Description:     "inbound freight",
		PeriodStart:     start,
		PeriodEnd:       start.AddDate(0, 3, 0),
	}
}

func TestCreateSupplier_Defaults(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	resp, err := svc.CreateSupplier(context.Background(), "alpha", CreateSupplierRequest{
		Name:         "Nordic Freight",
		Industry:     "Logistics",
		ContactEmail: "Ops@NordicFreight.example",
		CarbonScore:  72,
	})
	require.NoError(t, err)

	assert.Equal(t, VerificationPending, resp.VerificationStatus)
	assert.Equal(t, PartnershipBasic, resp.PartnershipLevel)
	assert.Equal(t, "logistics", resp.Industry)
	assert.Equal(t, "ops@nordicfreight.example", resp.ContactEmail)
}

func TestCreateChainEmission_RequiresOwnSupplier(t *testing.T) {
	repo := newFakeRepository()
	seedSupplier(repo, "sup-1", "alpha")
	svc := NewService(repo)

	resp, err := svc.CreateChainEmission(
		context.Background(), "alpha", chainEmissionRequest("sup-1"))
	require.NoError(t, err)
	assert.Equal(t, "estimated", resp.DataQuality)
	assert.Equal(t, "supplier_reported", resp.VerificationLevel)

	// A supplier belonging to another tenant is invisible.
	_, err = svc.CreateChainEmission(
		context.Background(), "beta", chainEmissionRequest("sup-1"))
	assert.ErrorIs(t, err, core.ErrNotFound)

	emissions, err := svc.ListChainEmissions(context.Background(), "beta")
	require.NoError(t, err)
	assert.Empty(t, emissions)
}

func TestCreateChainTarget_ValidatesParticipants(t *testing.T) {
	repo := newFakeRepository()
	seedSupplier(repo, "sup-1", "alpha")
	seedSupplier(repo, "sup-2", "beta")
	svc := NewService(repo)

	_, err := svc.CreateChainTarget(context.Background(), "alpha", CreateChainTargetRequest{
		Name:                   "Cut inbound freight",
		BaselineYear:           2025,
		TargetYear:             2030,
		ReductionPercentage:    25,
		ScopeCoverage:          []string{"scope_3"},
		ParticipatingSuppliers: []string{"sup-1", "sup-2"},
	})
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Empty(t, repo.targets)

	resp, err := svc.CreateChainTarget(context.Background(), "alpha", CreateChainTargetRequest{
		Name:                   "Cut inbound freight",
		BaselineYear:           2025,
		TargetYear:             2030,
		ReductionPercentage:    25,
		ScopeCoverage:          []string{"scope_3"},
		ParticipatingSuppliers: []string{"sup-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "supply_chain_reduction", resp.TargetType)
	assert.Equal(t, "active", resp.Status)
}

func TestListSuppliers_TenantScoped(t *testing.T) {
	repo := newFakeRepository()
	seedSupplier(repo, "sup-1", "alpha")
	seedSupplier(repo, "sup-2", "alpha")
	seedSupplier(repo, "sup-3", "beta")
	svc := NewService(repo)

	suppliers, err := svc.ListSuppliers(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Len(t, suppliers, 2)
}
