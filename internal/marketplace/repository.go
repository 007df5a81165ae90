// AngelaMos | 2026
// repository.go

package marketplace

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/climabill/backend/internal/core"
)

type Repository interface {
	ListProjects(ctx context.Context, filters ProjectFilters) ([]Project, error)
	GetProjectForUpdate(ctx context.Context, id string) (*Project, error)
	DecrementCredits(ctx context.Context, projectID string, amount float64) error
	InsertCertificate(ctx context.Context, cert *Certificate) error
	GetCertificate(ctx context.Context, tenantID, id string) (*Certificate, error)
	GetCertificateBySerial(ctx context.Context, serial string) (*Certificate, error)
	ListCertificates(ctx context.Context, tenantID string) ([]Certificate, error)
	RetireCertificate(ctx context.Context, tenantID, id, reason string) (*Certificate, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const projectColumns = `
	id, project_name, project_type, location, developer, description,
	verification_standard, methodology, vintage_year, total_credits,
	available_credits, price_per_credit, rating, additional_benefits,
	created_at`

func (r *repository) ListProjects(
	ctx context.Context,
	filters ProjectFilters,
) ([]Project, error) {
	conditions := []string{"available_credits > 0"}
	var args []any
	argIdx := 1

	if filters.ProjectType != "" {
		conditions = append(conditions,
			fmt.Sprintf("project_type = $%d", argIdx))
		args = append(args, filters.ProjectType)
		argIdx++
	}

	if filters.MaxPrice > 0 {
		conditions = append(conditions,
			fmt.Sprintf("price_per_credit <= $%d", argIdx))
		args = append(args, filters.MaxPrice)
		argIdx++
	}

	if filters.MinRating > 0 {
		conditions = append(conditions,
			fmt.Sprintf("rating >= $%d", argIdx))
		args = append(args, filters.MinRating)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM offset_projects
		WHERE %s
		ORDER BY rating DESC, price_per_credit`,
		projectColumns, strings.Join(conditions, " AND "))

	var projects []Project
	if err := r.db.SelectContext(ctx, &projects, query, args...); err != nil {
		return nil, fmt.Errorf("list offset projects: %w", err)
	}

	return projects, nil
}

// GetProjectForUpdate row-locks the project so concurrent purchases
// cannot oversell its credits.
func (r *repository) GetProjectForUpdate(
	ctx context.Context,
	id string,
) (*Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM offset_projects
		WHERE id = $1
		FOR UPDATE`, projectColumns)

	var project Project
	err := r.db.GetContext(ctx, &project, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get offset project: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get offset project: %w", err)
	}

	return &project, nil
}

func (r *repository) DecrementCredits(
	ctx context.Context,
	projectID string,
	amount float64,
) error {
	query := `
		UPDATE offset_projects
		SET available_credits = available_credits - $2
		WHERE id = $1 AND available_credits >= $2`

	result, err := r.db.ExecContext(ctx, query, projectID, amount)
	if err != nil {
		return fmt.Errorf("decrement credits: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("decrement credits: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("decrement credits: %w", ErrInsufficientCredits)
	}

	return nil
}

func (r *repository) InsertCertificate(
	ctx context.Context,
	cert *Certificate,
) error {
	query := `
		INSERT INTO certificates (
			id, serial, tenant_id, project_id, credits_amount,
			purchase_price, purchase_date, blockchain_address,
			transaction_hash, verification_status, retirement_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &cert.CreatedAt, query,
		cert.ID,
		cert.Serial,
		cert.TenantID,
		cert.ProjectID,
		cert.CreditsAmount,
		cert.PurchasePrice,
		cert.PurchaseDate,
		cert.BlockchainAddress,
		cert.TransactionHash,
		cert.VerificationStatus,
		cert.RetirementStatus,
	)
	if err != nil {
		return fmt.Errorf("insert certificate: %w", err)
	}

	return nil
}

const certificateColumns = `
	id, serial, tenant_id, project_id, credits_amount, purchase_price,
	purchase_date, blockchain_address, transaction_hash,
	verification_status, retirement_status, retirement_date,
	retirement_reason, created_at`

func (r *repository) GetCertificate(
	ctx context.Context,
	tenantID, id string,
) (*Certificate, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM certificates
		WHERE id = $1 AND tenant_id = $2`, certificateColumns)

	var cert Certificate
	err := r.db.GetContext(ctx, &cert, query, id, tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get certificate: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get certificate: %w", err)
	}

	return &cert, nil
}

// GetCertificateBySerial is deliberately unscoped: verification is a
// public attestation keyed by the printed serial.
func (r *repository) GetCertificateBySerial(
	ctx context.Context,
	serial string,
) (*Certificate, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM certificates
		WHERE serial = $1`, certificateColumns)

	var cert Certificate
	err := r.db.GetContext(ctx, &cert, query, serial)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get certificate by serial: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get certificate by serial: %w", err)
	}

	return &cert, nil
}

func (r *repository) ListCertificates(
	ctx context.Context,
	tenantID string,
) ([]Certificate, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM certificates
		WHERE tenant_id = $1
		ORDER BY purchase_date DESC`, certificateColumns)

	var certs []Certificate
	if err := r.db.SelectContext(ctx, &certs, query, tenantID); err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}

	return certs, nil
}

func (r *repository) RetireCertificate(
	ctx context.Context,
	tenantID, id, reason string,
) (*Certificate, error) {
	query := fmt.Sprintf(`
		UPDATE certificates
		SET retirement_status = 'retired',
		    retirement_date = NOW(),
		    retirement_reason = $3
		WHERE id = $1 AND tenant_id = $2 AND retirement_status = 'active'
		RETURNING %s`, certificateColumns)

	var cert Certificate
	err := r.db.GetContext(ctx, &cert, query, id, tenantID, reason)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("retire certificate: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("retire certificate: %w", err)
	}

	return &cert, nil
}
