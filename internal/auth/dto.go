// AngelaMos | 2026
// dto.go

package auth

import (
	"time"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type RegisterRequest struct {
	Email     string `json:"email"      validate:"required,email,max=255"`
	Password  string `json:"password"   validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name"  validate:"required,min=1,max=100"`

	CompanyName   string   `json:"company_name"   validate:"required,min=1,max=200"`
	CompanyDomain string   `json:"company_domain" validate:"required,min=2,max=100,lowercase"`
	Industry      string   `json:"industry"       validate:"required,oneof=saas fintech ecommerce manufacturing healthcare consulting"`
	EmployeeCount int      `json:"employee_count" validate:"required,gt=0"`
	AnnualRevenue float64  `json:"annual_revenue" validate:"gte=0"`
	Headquarters  string   `json:"headquarters_location" validate:"max=200"`
	Plan          string   `json:"plan"           validate:"omitempty,oneof=starter professional enterprise"`
	Compliance    []string `json:"compliance_standards" validate:"dive,oneof=eu_csrd sec_climate ghg_protocol tcfd"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type TenantResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Domain        string    `json:"domain"`
	Plan          string    `json:"plan"`
	Industry      string    `json:"industry"`
	EmployeeCount int       `json:"employee_count"`
	Compliance    []string  `json:"compliance_standards"`
	CreatedAt     time.Time `json:"created_at"`
}

// AuthResponse is the login/registration payload the client caches.
// Company mirrors Tenant on registration responses; the two names exist
// because the UI treats "company" as the onboarding concept and "tenant"
// as the session concept.
type AuthResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresAt   time.Time       `json:"expires_at"`
	User        UserResponse    `json:"user"`
	Tenant      TenantResponse  `json:"tenant"`
	Company     *TenantResponse `json:"company,omitempty"`
}

type MeResponse struct {
	User   UserResponse   `json:"user"`
	Tenant TenantResponse `json:"tenant"`
}
