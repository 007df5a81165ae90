// AngelaMos | 2026
// dto.go

package marketplace

import (
	"time"
)

type ProjectFilters struct {
	ProjectType string
	MaxPrice    float64
	MinRating   float64
}

type ProjectResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"project_name"`
	ProjectType          string    `json:"project_type"`
	Location             string    `json:"location"`
	Developer            string    `json:"developer"`
	Description          string    `json:"description"`
	VerificationStandard string    `json:"verification_standard"`
	Methodology          string    `json:"methodology"`
	VintageYear          int       `json:"vintage_year"`
	TotalCredits         float64   `json:"total_credits"`
	AvailableCredits     float64   `json:"available_credits"`
	PricePerCredit       float64   `json:"price_per_credit"`
	Rating               float64   `json:"rating"`
	AdditionalBenefits   []string  `json:"additional_benefits"`
	CreatedAt            time.Time `json:"created_at"`
}

type PurchaseRequest struct {
	ProjectID     string  `json:"project_id"     validate:"required,uuid"`
	CreditsAmount float64 `json:"credits_amount" validate:"required,gt=0"`
}

type RetireRequest struct {
	CertificateID    string `json:"certificate_id"    validate:"required,uuid"`
	RetirementReason string `json:"retirement_reason" validate:"required,max=500"`
}

type CertificateResponse struct {
	ID                 string     `json:"id"`
	Serial             string     `json:"serial"`
	ProjectID          string     `json:"project_id"`
	CreditsAmount      float64    `json:"credits_amount"`
	PurchasePrice      float64    `json:"purchase_price"`
	PurchaseDate       time.Time  `json:"purchase_date"`
	BlockchainAddress  string     `json:"blockchain_address"`
	TransactionHash    string     `json:"transaction_hash"`
	VerificationStatus string     `json:"verification_status"`
	RetirementStatus   string     `json:"retirement_status"`
	RetirementDate     *time.Time `json:"retirement_date,omitempty"`
	RetirementReason   *string    `json:"retirement_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type VerifyResponse struct {
	Serial           string     `json:"serial"`
	IsAuthentic      bool       `json:"is_authentic"`
	RetirementStatus string     `json:"retirement_status"`
	RetirementDate   *time.Time `json:"retirement_date,omitempty"`
	CreditsAmount    float64    `json:"credits_amount"`
	ProjectID        string     `json:"project_id"`
	VerifiedAt       time.Time  `json:"verified_at"`
}

func toProjectResponse(p *Project) ProjectResponse {
	return ProjectResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		ProjectType:          p.ProjectType,
		Location:             p.Location,
		Developer:            p.Developer,
		Description:          p.Description,
		VerificationStandard: p.VerificationStandard,
		Methodology:          p.Methodology,
		VintageYear:          p.VintageYear,
		TotalCredits:         p.TotalCredits,
		AvailableCredits:     p.AvailableCredits,
		PricePerCredit:       p.PricePerCredit,
		Rating:               p.Rating,
		AdditionalBenefits:   p.AdditionalBenefits,
		CreatedAt:            p.CreatedAt,
	}
}

func toCertificateResponse(c *Certificate) CertificateResponse {
	return CertificateResponse{
		ID:                 c.ID,
		Serial:             c.Serial,
		ProjectID:          c.ProjectID,
		CreditsAmount:      c.CreditsAmount,
		PurchasePrice:      c.PurchasePrice,
		PurchaseDate:       c.PurchaseDate,
		BlockchainAddress:  c.BlockchainAddress,
		TransactionHash:    c.TransactionHash,
		VerificationStatus: c.VerificationStatus,
		RetirementStatus:   c.RetirementStatus,
		RetirementDate:     c.RetirementDate,
		RetirementReason:   c.RetirementReason,
		CreatedAt:          c.CreatedAt,
	}
}
