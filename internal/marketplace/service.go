// AngelaMos | 2026
// service.go

package marketplace

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/climabill/backend/internal/core"
)

var (
	ErrInsufficientCredits = errors.New("insufficient credits available")
	ErrAlreadyRetired      = errors.New("certificate already retired")
)

type Service struct {
	db   *sqlx.DB
	repo Repository
}

func NewService(db *sqlx.DB, repo Repository) *Service {
	return &Service{db: db, repo: repo}
}

func (s *Service) ListProjects(
	ctx context.Context,
	filters ProjectFilters,
) ([]ProjectResponse, error) {
	projects, err := s.repo.ListProjects(ctx, filters)
	if err != nil {
		return nil, err
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, toProjectResponse(&projects[i]))
	}

	return responses, nil
}

// Purchase decrements the project's available credits and mints a
// certificate for the buying tenant in one transaction. The project row
// is locked for the duration so concurrent buyers cannot oversell.
func (s *Service) Purchase(
	ctx context.Context,
	tenantID string,
	req PurchaseRequest,
) (*CertificateResponse, error) {
	serial, err := core.GenerateSerial()
	if err != nil {
		return nil, fmt.Errorf("certificate serial: %w", err)
	}

	txHash, err := mockTransactionHash()
	if err != nil {
		return nil, fmt.Errorf("transaction hash: %w", err)
	}

	cert := &Certificate{
		ID:                 uuid.New().String(),
		Serial:             serial,
		TenantID:           tenantID,
		ProjectID:          req.ProjectID,
		CreditsAmount:      req.CreditsAmount,
		PurchaseDate:       time.Now(),
		BlockchainAddress:  "0x" + uuid.New().String()[:8],
		TransactionHash:    txHash,
		VerificationStatus: "verified",
		RetirementStatus:   RetirementActive,
	}

	err = core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		txRepo := NewRepository(tx)

		project, err := txRepo.GetProjectForUpdate(ctx, req.ProjectID)
		if err != nil {
			return err
		}

		if project.AvailableCredits < req.CreditsAmount {
			return ErrInsufficientCredits
		}

		cert.PurchasePrice = req.CreditsAmount * project.PricePerCredit

		if err := txRepo.DecrementCredits(ctx, project.ID, req.CreditsAmount); err != nil {
			return err
		}

		return txRepo.InsertCertificate(ctx, cert)
	})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) ||
			errors.Is(err, ErrInsufficientCredits) {
			return nil, err
		}
		return nil, fmt.Errorf("purchase credits: %w", err)
	}

	resp := toCertificateResponse(cert)
	return &resp, nil
}

func (s *Service) Retire(
	ctx context.Context,
	tenantID string,
	req RetireRequest,
) (*CertificateResponse, error) {
	cert, err := s.repo.GetCertificate(ctx, tenantID, req.CertificateID)
	if err != nil {
		return nil, err
	}

	if cert.RetirementStatus == RetirementRetired {
		return nil, ErrAlreadyRetired
	}

	retired, err := s.repo.RetireCertificate(
		ctx,
		tenantID,
		req.CertificateID,
		req.RetirementReason,
	)
	if err != nil {
		return nil, err
	}

	resp := toCertificateResponse(retired)
	return &resp, nil
}

// Verify answers whether a serial names a real certificate and whether
// it has been retired. It is not tenant-scoped; serials are public.
func (s *Service) Verify(
	ctx context.Context,
	serial string,
) (*VerifyResponse, error) {
	cert, err := s.repo.GetCertificateBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}

	return &VerifyResponse{
		Serial:           cert.Serial,
		IsAuthentic:      true,
		RetirementStatus: cert.RetirementStatus,
		RetirementDate:   cert.RetirementDate,
		CreditsAmount:    cert.CreditsAmount,
		ProjectID:        cert.ProjectID,
		VerifiedAt:       time.Now(),
	}, nil
}

func (s *Service) ListCertificates(
	ctx context.Context,
	tenantID string,
) ([]CertificateResponse, error) {
	certs, err := s.repo.ListCertificates(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]CertificateResponse, 0, len(certs))
	for i := range certs {
		responses = append(responses, toCertificateResponse(&certs[i]))
	}

	return responses, nil
}

func mockTransactionHash() (string, error) {
	token, err := core.GenerateSecureToken(32)
	if err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString([]byte(token))[:64], nil
}
