// AngelaMos | 2026
// service.go

package supplier

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/climabill/backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateSupplier(
	ctx context.Context,
	tenantID string,
	req CreateSupplierRequest,
) (*SupplierResponse, error) {
	partnership := req.PartnershipLevel
	if partnership == "" {
		partnership = PartnershipBasic
	}

	supplier := &Supplier{
		ID:                 uuid.New().String(),
		TenantID:           tenantID,
		Name:               req.Name,
		Industry:           strings.ToLower(req.Industry),
		Location:           req.Location,
		ContactEmail:       strings.ToLower(req.ContactEmail),
		AnnualRevenue:      req.AnnualRevenue,
		EmployeeCount:      req.EmployeeCount,
		CarbonScore:        req.CarbonScore,
		VerificationStatus: VerificationPending,
		PartnershipLevel:   partnership,
	}

	if err := s.repo.CreateSupplier(ctx, supplier); err != nil {
		return nil, err
	}

	resp := toSupplierResponse(supplier)
	return &resp, nil
}

func (s *Service) ListSuppliers(
	ctx context.Context,
	tenantID string,
) ([]SupplierResponse, error) {
	suppliers, err := s.repo.ListSuppliers(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, toSupplierResponse(&suppliers[i]))
	}

	return responses, nil
}

// CreateChainEmission records an upstream or downstream emission. The
// referenced supplier must belong to the caller's tenant.
func (s *Service) CreateChainEmission(
	ctx context.Context,
	tenantID string,
	req CreateChainEmissionRequest,
) (*ChainEmissionResponse, error) {
	if _, err := s.repo.GetSupplier(ctx, tenantID, req.SupplierID); err != nil {
		return nil, err
	}

	quality := req.DataQuality
	if quality == "" {
		quality = "estimated"
	}

	emission := &ChainEmission{
		ID:                uuid.New().String(),
		TenantID:          tenantID,
		SupplierID:        req.SupplierID,
		EmissionType:      req.EmissionType,
		Scope:             req.Scope,
		CO2EquivalentKg:   req.CO2EquivalentKg,
		Description:       req.Description,
		PeriodStart:       req.PeriodStart,
		PeriodEnd:         req.PeriodEnd,
		DataQuality:       quality,
		VerificationLevel: "supplier_reported",
	}

	if err := s.repo.CreateChainEmission(ctx, emission); err != nil {
		return nil, err
	}

	resp := toChainEmissionResponse(emission)
	return &resp, nil
}

func (s *Service) ListChainEmissions(
	ctx context.Context,
	tenantID string,
) ([]ChainEmissionResponse, error) {
	emissions, err := s.repo.ListChainEmissions(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]ChainEmissionResponse, 0, len(emissions))
	for i := range emissions {
		responses = append(responses, toChainEmissionResponse(&emissions[i]))
	}

	return responses, nil
}

// CreateChainTarget stores a supply-chain reduction target. Listed
// participating suppliers are checked against the tenant first.
func (s *Service) CreateChainTarget(
	ctx context.Context,
	tenantID string,
	req CreateChainTargetRequest,
) (*ChainTargetResponse, error) {
	for _, supplierID := range req.ParticipatingSuppliers {
		if _, err := s.repo.GetSupplier(ctx, tenantID, supplierID); err != nil {
			return nil, err
		}
	}

	target := &ChainTarget{
		ID:                     uuid.New().String(),
		TenantID:               tenantID,
		Name:                   req.Name,
		TargetType:             "supply_chain_reduction",
		BaselineYear:           req.BaselineYear,
		TargetYear:             req.TargetYear,
		ReductionPercentage:    req.ReductionPercentage,
		ScopeCoverage:          core.StringList(req.ScopeCoverage),
		ParticipatingSuppliers: core.StringList(req.ParticipatingSuppliers),
		Status:                 "active",
	}

	if err := s.repo.CreateChainTarget(ctx, target); err != nil {
		return nil, err
	}

	resp := toChainTargetResponse(target)
	return &resp, nil
}

func (s *Service) ListChainTargets(
	ctx context.Context,
	tenantID string,
) ([]ChainTargetResponse, error) {
	targets, err := s.repo.ListChainTargets(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]ChainTargetResponse, 0, len(targets))
	for i := range targets {
		responses = append(responses, toChainTargetResponse(&targets[i]))
	}

	return responses, nil
}

func (s *Service) Dashboard(
	ctx context.Context,
	tenantID string,
) (*DashboardResponse, error) {
	return s.repo.Dashboard(ctx, tenantID)
}
