// AngelaMos | 2026
// entity.go

package marketplace

import (
	"time"

	"github.com/climabill/backend/internal/core"
)

// Project is a global catalog entry; projects are not tenant-owned.
type Project struct {
	ID                   string          `db:"id"`
	Name                 string          `db:"project_name"`
	ProjectType          string          `db:"project_type"`
	Location             string          `db:"location"`
	Developer            string          `db:"developer"`
	Description          string          `db:"description"`
	VerificationStandard string          `db:"verification_standard"`
	Methodology          string          `db:"methodology"`
	VintageYear          int             `db:"vintage_year"`
	TotalCredits         float64         `db:"total_credits"`
	AvailableCredits     float64         `db:"available_credits"`
	PricePerCredit       float64         `db:"price_per_credit"`
	Rating               float64         `db:"rating"`
	AdditionalBenefits   core.StringList `db:"additional_benefits"`
	CreatedAt            time.Time       `db:"created_at"`
}

const (
	RetirementActive  = "active"
	RetirementRetired = "retired"
)

type Certificate struct {
	ID                 string     `db:"id"`
	Serial             string     `db:"serial"`
	TenantID           string     `db:"tenant_id"`
	ProjectID          string     `db:"project_id"`
	CreditsAmount      float64    `db:"credits_amount"`
	PurchasePrice      float64    `db:"purchase_price"`
	PurchaseDate       time.Time  `db:"purchase_date"`
	BlockchainAddress  string     `db:"blockchain_address"`
	TransactionHash    string     `db:"transaction_hash"`
	VerificationStatus string     `db:"verification_status"`
	RetirementStatus   string     `db:"retirement_status"`
	RetirementDate     *time.Time `db:"retirement_date"`
	RetirementReason   *string    `db:"retirement_reason"`
	CreatedAt          time.Time  `db:"created_at"`
}
