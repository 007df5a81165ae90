// AngelaMos | 2026
// service_test.go

package emission

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climabill/backend/internal/core"
)

type fakeRepository struct {
	sources map[string]*Source
	records []Record

	lastLimit  int
	lastOffset int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{sources: map[string]*Source{}}
}

func (f *fakeRepository) CreateSource(_ context.Context, source *Source) error {
	source.CreatedAt = time.Now()
	copied := *source
	f.sources[source.ID] = &copied
	return nil
}

func (f *fakeRepository) GetSource(_ context.Context, tenantID, id string) (*Source, error) {
	source, ok := f.sources[id]
	if !ok || source.TenantID != tenantID {
		return nil, core.ErrNotFound
	}
	copied := *source
	return &copied, nil
}

func (f *fakeRepository) ListSources(_ context.Context, tenantID string) ([]Source, error) {
	var out []Source
	for _, source := range f.sources {
		if source.TenantID == tenantID {
			out = append(out, *source)
		}
	}
	return out, nil
}

func (f *fakeRepository) CreateRecord(_ context.Context, record *Record) error {
	record.CreatedAt = time.Now()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeRepository) ListRecords(
	_ context.Context,
	tenantID string,
	limit, offset int,
) ([]Record, int, error) {
	f.lastLimit = limit
	f.lastOffset = offset

	var out []Record
	for _, record := range f.records {
		if record.TenantID == tenantID {
			out = append(out, record)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepository) Summary(
	_ context.Context,
	tenantID string,
	_, _ time.Time,
) (*SummaryResponse, error) {
	total := 0.0
	for _, record := range f.records {
		if record.TenantID == tenantID {
			total += record.CO2EquivalentKg
		}
	}
	return &SummaryResponse{TotalEmissionsKg: total}, nil
}

func (f *fakeRepository) Trend(context.Context, string, int) ([]TrendPoint, error) {
	return nil, nil
}

func (f *fakeRepository) TopSources(context.Context, string, int) ([]TopSource, error) {
	return nil, nil
}

func seedSource(repo *fakeRepository, id, tenantID string) {
	repo.sources[id] = &Source{
		ID:         id,
		TenantID:   tenantID,
		Name:       "Office Electricity",
		SourceType: "electricity",
		Scope:      ScopeTwo,
	}
}

func recordRequest(sourceID string, activity Activity) CreateRecordRequest {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return CreateRecordRequest{
		SourceID:    sourceID,
		PeriodStart: start,
		PeriodEnd:   start.AddDate(0, 1, 0),
		Activity:    activity,
	}
}

func TestCreateRecord_DerivesEmissionsFromActivity(t *testing.T) {
	repo := newFakeRepository()
	seedSource(repo, "src-1", "alpha")
	svc := NewService(repo, NewCalculator(50))

	resp, err := svc.CreateRecord(context.Background(), "alpha", recordRequest("src-1", Activity{
		Type:        ActivityElectricity,
		Electricity: &ElectricityActivity{KWhConsumed: 1000, Region: "us_average"},
	}))
	require.NoError(t, err)

	assert.InDelta(t, 385.0, resp.CO2EquivalentKg, 1e-9)
	assert.InDelta(t, 0.385, resp.EmissionFactor, 1e-9)
	assert.Equal(t, QualityCalculated, resp.DataQuality)
}

func TestCreateRecord_KeepsMeasuredValue(t *testing.T) {
	repo := newFakeRepository()
	seedSource(repo, "src-1", "alpha")
	svc := NewService(repo, NewCalculator(50))

	req := recordRequest("src-1", Activity{
		Type:        ActivityElectricity,
		Electricity: &ElectricityActivity{KWhConsumed: 1000, Region: "us_average"},
	})
	req.CO2EquivalentKg = 512
	req.DataQuality = QualityMeasured

	resp, err := svc.CreateRecord(context.Background(), "alpha", req)
	require.NoError(t, err)

	assert.InDelta(t, 512.0, resp.CO2EquivalentKg, 1e-9)
	assert.Equal(t, QualityMeasured, resp.DataQuality)
}

func TestCreateRecord_OtherActivityKeepsZero(t *testing.T) {
	repo := newFakeRepository()
	seedSource(repo, "src-1", "alpha")
	svc := NewService(repo, NewCalculator(50))

	resp, err := svc.CreateRecord(context.Background(), "alpha", recordRequest("src-1", Activity{
		Type:  ActivityOther,
		Other: &OtherActivity{Description: "unmetered generator use"},
	}))
	require.NoError(t, err)

	assert.Zero(t, resp.CO2EquivalentKg)
	assert.Equal(t, QualityEstimated, resp.DataQuality)
}

func TestCreateRecord_RejectsInvalidActivity(t *testing.T) {
	repo := newFakeRepository()
	seedSource(repo, "src-1", "alpha")
	svc := NewService(repo, NewCalculator(50))

	_, err := svc.CreateRecord(context.Background(), "alpha", recordRequest("src-1", Activity{
		Type: "biomass",
	}))

	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Empty(t, repo.records)
}

func TestCreateRecord_SourceMustBelongToTenant(t *testing.T) {
	repo := newFakeRepository()
	seedSource(repo, "src-1", "alpha")
	svc := NewService(repo, NewCalculator(50))

	_, err := svc.CreateRecord(context.Background(), "beta", recordRequest("src-1", Activity{
		Type:        ActivityElectricity,
		Electricity: &ElectricityActivity{KWhConsumed: 10},
	}))

	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Empty(t, repo.records)
}

func TestListRecords_ClampsPaging(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, NewCalculator(50))

	_, err := svc.ListRecords(context.Background(), "alpha", 0, -5)
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)
	assert.Zero(t, repo.lastOffset)

	_, err = svc.ListRecords(context.Background(), "alpha", 1000, 20)
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)
	assert.Equal(t, 20, repo.lastOffset)

	_, err = svc.ListRecords(context.Background(), "alpha", 200, 0)
	require.NoError(t, err)
	assert.Equal(t, 200, repo.lastLimit)
}

func TestCurrentYearEmissionsKg_SumsTenantRecords(t *testing.T) {
	repo := newFakeRepository()
	repo.records = []Record{
		{TenantID: "alpha", CO2EquivalentKg: 1200},
		{TenantID: "alpha", CO2EquivalentKg: 800},
		{TenantID: "beta", CO2EquivalentKg: 99_999},
	}
	svc := NewService(repo, NewCalculator(50))

	total, err := svc.CurrentYearEmissionsKg(context.Background(), "alpha")
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, total, 1e-9)
}
